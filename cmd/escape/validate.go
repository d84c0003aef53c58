package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazescape/maze"
)

var errUnsolvable = errors.New("one or more mazes cannot be escaped")

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Check mazes without searching them",
	Long: `Parses each maze, reports its start and exit, and checks that the exit lies
in the same connected region as the start.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	parseOpts, err := parseOptions(cmd)
	if err != nil {
		return err
	}
	mazes, err := loadMazes(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, m := range mazes {
		g, err := maze.Parse(m.Rows, parseOpts...)
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s: invalid: %v\n", m.Name, err)
			logger.Warn("maze rejected", "maze", m.Name, "error", err)
			continue
		}
		status := "ok"
		if !g.Connected(g.Start(), g.Exit().Point) {
			failed++
			status = "unreachable exit"
		}
		fmt.Fprintf(out, "%s: %dx%d start=%v exit=%v regions=%d %s\n",
			m.Name, g.Width(), g.Height(), g.Start(), g.Exit().Point, len(g.Regions()), status)
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errUnsolvable, failed, len(mazes))
	}
	return nil
}
