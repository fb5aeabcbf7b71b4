package compression

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/deploymenttheory/go-gzip-packer/internal/common/fsutil"
)

// Mode selects the direction of a transcode.
type Mode int

const (
	ModeCompress Mode = iota
	ModeDecompress
)

func (m Mode) String() string {
	switch m {
	case ModeCompress:
		return "compress"
	case ModeDecompress:
		return "decompress"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Transcode streams src through the gzip codec in the requested direction
// and writes the result to dst, after disambiguating dst through
// fsutil.UniquePath so no existing file is overwritten. It returns the path
// actually written.
//
// The source is stat'ed before any stream is opened so that a missing
// source fails with ErrSourceNotFound instead of a generic mid-pipeline
// read error. On a mid-stream failure the partially written destination
// file is left on disk.
func Transcode(src, dst string, mode Mode) (string, error) {
	info, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrSourceNotFound, src)
		}
		return "", fmt.Errorf("checking source %s: %w", src, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrSourceNotFound, src)
	}

	final, err := fsutil.UniquePath(dst)
	if err != nil {
		return "", fmt.Errorf("resolving destination for %s: %w", dst, err)
	}

	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("opening source %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(final)
	if err != nil {
		return "", fmt.Errorf("creating destination %s: %w", final, err)
	}

	switch mode {
	case ModeCompress:
		err = compressStream(in, out)
	case ModeDecompress:
		err = decompressStream(in, out, src)
	default:
		err = fmt.Errorf("unsupported transcode mode %v", mode)
	}

	if cerr := out.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("closing destination %s: %w", final, cerr)
	}
	if err != nil {
		return "", err
	}

	return final, nil
}

func compressStream(in io.Reader, out io.Writer) error {
	enc := gzipCodec{}.NewEncoder(out)
	if _, err := io.Copy(enc, in); err != nil {
		enc.Close()
		return fmt.Errorf("failed to compress file: %w", err)
	}
	// Close flushes the deflate stream and the gzip trailer; a failure here
	// is a write failure, not a clean finish.
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush gzip stream: %w", err)
	}
	return nil
}

func decompressStream(in io.Reader, out io.Writer, srcPath string) error {
	dec, err := gzipCodec{}.NewDecoder(in)
	if err != nil {
		if isCorrupt(err) {
			return &CodecError{Path: srcPath, Err: err}
		}
		return fmt.Errorf("failed to read gzip header: %w", err)
	}
	if _, err := io.Copy(out, dec); err != nil {
		dec.Close()
		if isCorrupt(err) {
			return &CodecError{Path: srcPath, Err: err}
		}
		return fmt.Errorf("failed to decompress file: %w", err)
	}
	if err := dec.Close(); err != nil {
		if isCorrupt(err) {
			return &CodecError{Path: srcPath, Err: err}
		}
		return fmt.Errorf("failed to close gzip reader: %w", err)
	}
	return nil
}
