package cmd

import (
	"fmt"

	"github.com/deploymenttheory/go-gzip-packer/internal/packer"
	"github.com/spf13/cobra"
)

// compressCmd compresses a single file into a gzip artifact
var compressCmd = &cobra.Command{
	Use:   "compress <file>",
	Short: "Compress a file into a gzip artifact",
	Long: `Compress a file into <file>.gz. If that name is already taken a
numeric suffix is inserted before the extension (file_1.gz, file_2.gz, ...)
so no existing file is overwritten. Prints the path actually written.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		artifact, err := packer.CompressFile(args[0])
		if err != nil {
			return err
		}
		fmt.Println(artifact)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compressCmd)
}
