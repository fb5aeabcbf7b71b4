// fsutil/files.go
package fsutil

import (
	"errors"
	"io/fs"
	"os"
)

// PathExists reports whether any filesystem entry exists at path, file or
// directory alike. Stat failures other than not-exist are returned so
// callers can tell an unreadable location apart from a free name.
func PathExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
