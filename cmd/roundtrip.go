package cmd

import (
	"github.com/deploymenttheory/go-gzip-packer/internal/packer"
	"github.com/spf13/cobra"
)

// roundtripCmd compresses the configured default source and decompresses
// the artifact straight back, as an end-to-end smoke test
var roundtripCmd = &cobra.Command{
	Use:          "roundtrip",
	Short:        "Compress the default source and decompress it back",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return packer.RunRoundTrip()
	},
}

func init() {
	rootCmd.AddCommand(roundtripCmd)
}
