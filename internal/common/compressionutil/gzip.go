package compression

import (
	"errors"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
)

// gzipCodec adapts the gzip stream codec to the encoder/decoder pair the
// transcoder pipes data through.
type gzipCodec struct{}

// NewEncoder wraps dst in a gzip compressor. The returned WriteCloser must
// be closed to flush the gzip trailer.
func (gzipCodec) NewEncoder(dst io.Writer) io.WriteCloser {
	return gzip.NewWriter(dst)
}

// NewDecoder wraps src in a gzip decompressor. A missing or corrupt gzip
// header surfaces here rather than on first read.
func (gzipCodec) NewDecoder(src io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(src)
}

// isCorrupt reports whether a decompression error indicates malformed or
// truncated gzip input rather than an I/O failure. Truncation shows up as
// an unexpected EOF (or a bare EOF when the header itself is cut short).
func isCorrupt(err error) bool {
	if errors.Is(err, gzip.ErrHeader) || errors.Is(err, gzip.ErrChecksum) {
		return true
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return true
	}
	var fe flate.CorruptInputError
	return errors.As(err, &fe)
}
