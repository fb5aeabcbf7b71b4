// Package packer wires the unique-path resolver and the streaming
// transcoder into the user-facing compress/decompress operations.
package packer

import (
	compression "github.com/deploymenttheory/go-gzip-packer/internal/common/compressionutil"
	"github.com/deploymenttheory/go-gzip-packer/internal/config"
	"github.com/deploymenttheory/go-gzip-packer/internal/logger"
)

// GzipExtension is appended to a source path to derive the default
// compression artifact name.
const GzipExtension = ".gz"

// CompressFile compresses src into src+".gz", disambiguated if that name is
// already taken, and returns the path actually written.
func CompressFile(src string) (string, error) {
	artifact, err := compression.Transcode(src, src+GzipExtension, compression.ModeCompress)
	if err != nil {
		logger.LogError("Compression failed", err, map[string]interface{}{
			"source": src,
		})
		return "", err
	}

	logger.LogInfo("Compressed file", map[string]interface{}{
		"source":   src,
		"artifact": artifact,
	})
	return artifact, nil
}

// DecompressFile decompresses src into dst, disambiguated if dst is already
// taken, and returns the path actually written.
func DecompressFile(src, dst string) (string, error) {
	restored, err := compression.Transcode(src, dst, compression.ModeDecompress)
	if err != nil {
		logger.LogError("Decompression failed", err, map[string]interface{}{
			"source":      src,
			"destination": dst,
		})
		return "", err
	}

	logger.LogInfo("Decompressed file", map[string]interface{}{
		"source":      src,
		"destination": restored,
	})
	return restored, nil
}

// RunRoundTrip compresses the configured default source and immediately
// decompresses the produced artifact into the configured destination, as a
// smoke test of the whole pipeline.
func RunRoundTrip() error {
	src := config.Instance.RoundTrip.Source
	if src == "" {
		src = config.DefaultRoundTripSource
	}
	dst := config.Instance.RoundTrip.Destination
	if dst == "" {
		dst = config.DefaultRoundTripDestination
	}

	artifact, err := CompressFile(src)
	if err != nil {
		return err
	}

	restored, err := DecompressFile(artifact, dst)
	if err != nil {
		return err
	}

	logger.LogInfo("Round trip complete", map[string]interface{}{
		"source":   src,
		"artifact": artifact,
		"restored": restored,
	})
	return nil
}
