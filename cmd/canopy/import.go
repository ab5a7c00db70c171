package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/inkwellhq/canopy/internal/cli"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Validate a snapshot and save it into the local document store",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		storeDir, _ := cmd.Flags().GetString("store-dir")
		if err := cli.RunImport(cmd.Context(), args[0], storeDir, os.Stdout); err != nil {
			if err != cli.ErrInvalidDocument {
				cmd.PrintErrln(err)
			}
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
