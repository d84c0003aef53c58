package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazescape/escape"
	"github.com/katalvlaran/mazescape/maze"
	"github.com/katalvlaran/mazescape/render"
)

var solveCmd = &cobra.Command{
	Use:   "solve [files...]",
	Short: "Find the escape path of each maze",
	Long: `Solves every maze in the given files (.txt/.maze: blank-line separated,
.yaml/.yml: {mazes: [{name, rows}]}) or the built-in samples, and prints each path.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSolve(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().String("gif-dir", "", "Write escape_<i>.gif for each maze into this directory")
	solveCmd.Flags().Int("scale", render.DefaultScale, "GIF pixels per maze cell")
	solveCmd.Flags().Int("delay", 0, "GIF delay between frames, in 100ths of a second")
	solveCmd.Flags().Int("max-expansions", 0, "Abort a search after this many expansions (0 = unlimited)")
	solveCmd.Flags().Bool("check", false, "Validate each path before printing it")
	solveCmd.Flags().Bool("show", false, "Print each maze with its path drawn in")
}

func runSolve(cmd *cobra.Command, args []string) error {
	parseOpts, err := parseOptions(cmd)
	if err != nil {
		return err
	}
	mazes, err := loadMazes(args)
	if err != nil {
		return err
	}
	gifDir, _ := cmd.Flags().GetString("gif-dir")
	scale, _ := cmd.Flags().GetInt("scale")
	delay, _ := cmd.Flags().GetInt("delay")
	limit, _ := cmd.Flags().GetInt("max-expansions")
	check, _ := cmd.Flags().GetBool("check")
	show, _ := cmd.Flags().GetBool("show")

	rows := make([][]string, len(mazes))
	for i, m := range mazes {
		rows[i] = m.Rows
	}
	sols, err := escape.SolveAll(rows, parseOpts,
		escape.WithMaxExpansions(limit),
		escape.WithOnExpand(func(p maze.Point, frontier int) {
			logger.Debug("expand", "cell", p, "frontier", frontier)
		}),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, sol := range sols {
		name := mazes[i].Name
		res := sol.Result
		logger.Info("maze solved",
			"maze", name,
			"exit", sol.Grid.Exit().Point,
			"steps", res.Len(),
			"expanded", res.Expanded,
			"visited", res.Visited)

		if check {
			if err := escape.Validate(sol.Grid, res.Path); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
		fmt.Fprintf(out, "%s: %v\n", name, res.Path)
		if show {
			fmt.Fprintln(out, indent(overlay(mazes[i].Rows, res.Path, '*')))
		}
		if gifDir != "" {
			path := filepath.Join(gifDir, fmt.Sprintf("escape_%d.gif", i))
			if err := writeGIF(path, sol, render.WithScale(scale), render.WithDelay(delay)); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			logger.Info("escape gif written", "maze", name, "path", path)
		}
	}
	return nil
}

func writeGIF(path string, sol escape.Solution, opts ...render.Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return render.Write(f, sol.Grid, sol.Result.Path, opts...)
}
