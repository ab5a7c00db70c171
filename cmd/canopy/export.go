package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/inkwellhq/canopy/internal/cli"
)

var exportCmd = &cobra.Command{
	Use:   "export <src> <dest>",
	Short: "Re-stamp a snapshot and write it to a new file",
	Long: `Reads a snapshot or bare tree and writes a freshly stamped snapshot.
The codec follows the file extension on each side, so this also converts
between JSON and YAML.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.RunExport(args[0], args[1], nil); err != nil {
			cmd.PrintErrln(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
