package compression

import (
	"errors"
	"fmt"
)

// ErrSourceNotFound reports that the transcode source does not exist or is
// not a regular file. It is raised before any stream is opened.
var ErrSourceNotFound = errors.New("source file not found")

// CodecError reports malformed or truncated gzip data encountered while
// decompressing. The underlying codec error is available via Unwrap.
type CodecError struct {
	Path string
	Err  error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("malformed gzip data in %s: %v", e.Path, e.Err)
}

func (e *CodecError) Unwrap() error { return e.Err }

// IsCodecError reports whether err is (or wraps) a CodecError.
func IsCodecError(err error) bool {
	var ce *CodecError
	return errors.As(err, &ce)
}
