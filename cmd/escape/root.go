package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazescape/internal/logging"
	"github.com/katalvlaran/mazescape/maze"
)

// logger is replaced in PersistentPreRunE once --log-level is known.
var logger = logging.NewNop()

var rootCmd = &cobra.Command{
	Use:   "escape",
	Short: "Escape finds the way out of text mazes",
	Long: `Escape reads rectangular text mazes ('+' start, '#' wall by default),
finds a path from the start to the single boundary exit and can animate it as a GIF.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetString("log-level")
		level, err := logging.ParseLevel(raw)
		if err != nil {
			return err
		}
		logger = logging.New(level)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("escape failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", slog.LevelInfo.String(), "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("wall", string(maze.DefaultWall), "Rune marking a wall")
	rootCmd.PersistentFlags().String("start", string(maze.DefaultStart), "Rune marking the start")
}

// parseOptions turns the --wall and --start flags into maze options.
func parseOptions(cmd *cobra.Command) ([]maze.Option, error) {
	wall, err := singleRune(cmd, "wall")
	if err != nil {
		return nil, err
	}
	start, err := singleRune(cmd, "start")
	if err != nil {
		return nil, err
	}
	return []maze.Option{maze.WithWall(wall), maze.WithStart(start)}, nil
}

func singleRune(cmd *cobra.Command, name string) (rune, error) {
	s, _ := cmd.Flags().GetString(name)
	r := []rune(s)
	if len(r) != 1 {
		return 0, fmt.Errorf("--%s must be a single character, got %q", name, s)
	}
	return r[0], nil
}
