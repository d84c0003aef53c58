package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazescape"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of escape",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "escape version %s\n", mazescape.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
