package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/inkwellhq/canopy/internal/cli"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Print the block outline of a document snapshot",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.RunInspect(args[0], os.Stdout); err != nil {
			cmd.PrintErrln(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
