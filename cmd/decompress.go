package cmd

import (
	"fmt"

	"github.com/deploymenttheory/go-gzip-packer/internal/packer"
	"github.com/spf13/cobra"
)

// decompressCmd restores a gzip artifact into a destination file
var decompressCmd = &cobra.Command{
	Use:   "decompress <source> <destination>",
	Short: "Decompress a gzip artifact into a file",
	Long: `Decompress a gzip artifact into the given destination. If the
destination name is already taken a numeric suffix is inserted before the
extension so no existing file is overwritten. Prints the path actually
written.`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		restored, err := packer.DecompressFile(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Println(restored)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decompressCmd)
}
