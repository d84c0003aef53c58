package main

import (
	"strings"

	"github.com/katalvlaran/mazescape/internal/mazefile"
	"github.com/katalvlaran/mazescape/internal/samples"
	"github.com/katalvlaran/mazescape/maze"
)

// loadMazes reads every file in paths, in order, or returns the built-in
// samples when paths is empty.
func loadMazes(paths []string) ([]mazefile.Maze, error) {
	if len(paths) == 0 {
		logger.Debug("no maze files given, using built-in samples")
		return samples.All(), nil
	}
	var out []mazefile.Maze
	for _, p := range paths {
		mazes, err := mazefile.Load(p)
		if err != nil {
			return nil, err
		}
		logger.Debug("maze file loaded", "path", p, "mazes", len(mazes))
		out = append(out, mazes...)
	}
	return out, nil
}

// overlay draws path onto rows, marking every step after the start with mark.
func overlay(rows []string, path []maze.Point, mark rune) []string {
	grid := make([][]rune, len(rows))
	for y, row := range rows {
		grid[y] = []rune(row)
	}
	for i, p := range path {
		if i == 0 {
			continue
		}
		grid[p.Y][p.X] = mark
	}
	out := make([]string, len(grid))
	for y, r := range grid {
		out[y] = string(r)
	}
	return out
}

func indent(rows []string) string {
	return "  " + strings.Join(rows, "\n  ")
}
