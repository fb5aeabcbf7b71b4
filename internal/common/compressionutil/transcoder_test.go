package compression

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return data
}

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestTranscodeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	content := []byte("This is the original content of the file")
	src := filepath.Join(dir, "source.txt")
	writeFile(t, src, content)

	artifact, err := Transcode(src, src+".gz", ModeCompress)
	if err != nil {
		t.Fatalf("compress failed: %v", err)
	}
	if artifact != src+".gz" {
		t.Errorf("expected default artifact name %q, got %q", src+".gz", artifact)
	}

	// The artifact must be standard gzip framing, readable by any decoder.
	zr, err := gzip.NewReader(bytes.NewReader(readFile(t, artifact)))
	if err != nil {
		t.Fatalf("artifact is not valid gzip: %v", err)
	}
	zr.Close()

	dst := filepath.Join(dir, "source_decompressed.txt")
	restored, err := Transcode(artifact, dst, ModeDecompress)
	if err != nil {
		t.Fatalf("decompress failed: %v", err)
	}
	if restored != dst {
		t.Errorf("expected destination %q, got %q", dst, restored)
	}
	if got := readFile(t, restored); !bytes.Equal(got, content) {
		t.Errorf("round trip mismatch: got %q, want %q", got, content)
	}
}

func TestTranscodeRoundTripLargePayload(t *testing.T) {
	dir := t.TempDir()
	// Large enough to span several flate blocks and internal copy buffers.
	content := bytes.Repeat([]byte("0123456789abcdef"), 64*1024)
	src := filepath.Join(dir, "payload.bin")
	writeFile(t, src, content)

	artifact, err := Transcode(src, src+".gz", ModeCompress)
	if err != nil {
		t.Fatalf("compress failed: %v", err)
	}
	restored, err := Transcode(artifact, filepath.Join(dir, "payload_restored.bin"), ModeDecompress)
	if err != nil {
		t.Fatalf("decompress failed: %v", err)
	}
	if got := readFile(t, restored); !bytes.Equal(got, content) {
		t.Errorf("round trip mismatch for %d-byte payload", len(content))
	}
}

func TestTranscodeCompressAvoidsClobber(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "source.txt")
	writeFile(t, src, []byte("fresh content"))

	preexisting := src + ".gz"
	unrelated := []byte("unrelated pre-existing bytes")
	writeFile(t, preexisting, unrelated)

	artifact, err := Transcode(src, src+".gz", ModeCompress)
	if err != nil {
		t.Fatalf("compress failed: %v", err)
	}
	if want := filepath.Join(dir, "source_1.txt.gz"); artifact != want {
		t.Errorf("expected disambiguated artifact %q, got %q", want, artifact)
	}
	if got := readFile(t, preexisting); !bytes.Equal(got, unrelated) {
		t.Errorf("pre-existing artifact was modified")
	}

	// With both names taken the next run lands on _2.
	artifact, err = Transcode(src, src+".gz", ModeCompress)
	if err != nil {
		t.Fatalf("compress failed: %v", err)
	}
	if want := filepath.Join(dir, "source_2.txt.gz"); artifact != want {
		t.Errorf("expected %q on second collision, got %q", want, artifact)
	}
}

func TestTranscodeDecompressDestinationCollision(t *testing.T) {
	dir := t.TempDir()
	content := []byte("collision test content")
	artifact := filepath.Join(dir, "data.gz")
	writeFile(t, artifact, gzipBytes(t, content))

	dst := filepath.Join(dir, "data.txt")
	occupied := []byte("already here")
	writeFile(t, dst, occupied)

	restored, err := Transcode(artifact, dst, ModeDecompress)
	if err != nil {
		t.Fatalf("decompress failed: %v", err)
	}
	if want := filepath.Join(dir, "data_1.txt"); restored != want {
		t.Errorf("expected disambiguated destination %q, got %q", want, restored)
	}
	if got := readFile(t, dst); !bytes.Equal(got, occupied) {
		t.Errorf("occupied destination was modified")
	}
	if got := readFile(t, restored); !bytes.Equal(got, content) {
		t.Errorf("restored content mismatch")
	}
}

func TestTranscodeMissingSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "does-not-exist.txt")

	for _, mode := range []Mode{ModeCompress, ModeDecompress} {
		_, err := Transcode(src, filepath.Join(dir, "out"), mode)
		if !errors.Is(err, ErrSourceNotFound) {
			t.Errorf("%v: expected ErrSourceNotFound, got %v", mode, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("missing source must not produce writes, directory has %d entries", len(entries))
	}
}

func TestTranscodeDirectorySource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "subdir")
	if err := os.Mkdir(src, 0755); err != nil {
		t.Fatal(err)
	}

	_, err := Transcode(src, filepath.Join(dir, "out.gz"), ModeCompress)
	if !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("expected ErrSourceNotFound for directory source, got %v", err)
	}
}

func TestTranscodeMalformedGzip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "garbage.gz")
	writeFile(t, src, []byte("this is definitely not gzip data"))

	_, err := Transcode(src, filepath.Join(dir, "out.txt"), ModeDecompress)
	if err == nil {
		t.Fatal("expected error for malformed gzip input")
	}
	if !IsCodecError(err) {
		t.Errorf("expected codec error, got %v", err)
	}
}

func TestTranscodeTruncatedGzip(t *testing.T) {
	dir := t.TempDir()
	full := gzipBytes(t, bytes.Repeat([]byte("truncation test payload "), 1024))

	// Keep the header and a slice of the deflate stream, drop the rest.
	src := filepath.Join(dir, "truncated.gz")
	writeFile(t, src, full[:len(full)/2])

	_, err := Transcode(src, filepath.Join(dir, "out.txt"), ModeDecompress)
	if err == nil {
		t.Fatal("expected error for truncated gzip input, silent truncated output is not success")
	}
	if !IsCodecError(err) {
		t.Errorf("expected codec error, got %v", err)
	}
}

func TestModeString(t *testing.T) {
	if ModeCompress.String() != "compress" || ModeDecompress.String() != "decompress" {
		t.Errorf("unexpected mode names: %v, %v", ModeCompress, ModeDecompress)
	}
}
