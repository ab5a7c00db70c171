package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/inkwellhq/canopy/internal/cli"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a document snapshot for structural violations",
	Long:  `Reads a snapshot (JSON or YAML) and reports illegal child placements and missing required attributes.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.RunValidate(args[0], os.Stdout); err != nil {
			if err != cli.ErrInvalidDocument {
				cmd.PrintErrln(err)
			}
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
