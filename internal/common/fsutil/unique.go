// fsutil/unique.go
package fsutil

import (
	"fmt"
	"path/filepath"
)

// UniquePath returns a path in the same directory as desired that does not
// refer to an existing filesystem entry. If desired itself is free it is
// returned unchanged. Otherwise a numeric disambiguator is inserted before
// the extension: "name.gz" becomes "name_1.gz", then "name_2.gz", and so
// on until a free name is found. The counter restarts at 1 on every call;
// only current filesystem state is consulted.
//
// The check is best effort. Nothing is created or reserved, so a concurrent
// writer can still claim the returned name before the caller does.
func UniquePath(desired string) (string, error) {
	exists, err := PathExists(desired)
	if err != nil {
		return "", fmt.Errorf("checking %s: %w", desired, err)
	}
	if !exists {
		return desired, nil
	}

	dir := filepath.Dir(desired)
	stem, ext := SplitNameExt(desired)

	for n := 1; ; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, n, ext))
		exists, err := PathExists(candidate)
		if err != nil {
			return "", fmt.Errorf("checking %s: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
	}
}
