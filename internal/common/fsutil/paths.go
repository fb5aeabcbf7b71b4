// fsutil/paths.go
package fsutil

import (
	"path/filepath"
	"strings"
)

// SplitNameExt splits a path's base name into a stem and an extension.
// The split happens at the first dot of the base name so that stacked
// extensions travel together: "dir/source.txt.gz" yields ("source",
// ".txt.gz"). A name without a dot, or one whose only dot is the leading
// character (".bashrc"), has an empty extension.
func SplitNameExt(path string) (stem, ext string) {
	name := filepath.Base(path)
	if len(name) > 1 {
		// Skip position 0 so a leading dot is part of the stem, not an
		// empty-stem extension.
		if idx := strings.Index(name[1:], "."); idx >= 0 {
			return name[:idx+1], name[idx+1:]
		}
	}
	return name, ""
}
