package escape

import (
	"fmt"

	"github.com/katalvlaran/mazescape/maze"
)

// Solution pairs a parsed grid with its search result.
type Solution struct {
	Grid   *maze.Grid
	Result *Result
}

// SolveAll parses and escapes each maze in order. mazes[i] holds the rows of
// the i-th maze. The first failure stops the run and is returned wrapped with
// the maze index; no partial results are returned.
func SolveAll(mazes [][]string, parseOpts []maze.Option, opts ...Option) ([]Solution, error) {
	out := make([]Solution, 0, len(mazes))
	for i, rows := range mazes {
		g, err := maze.Parse(rows, parseOpts...)
		if err != nil {
			return nil, fmt.Errorf("escape: maze %d: %w", i, err)
		}
		res, err := Escape(g, opts...)
		if err != nil {
			return nil, fmt.Errorf("escape: maze %d: %w", i, err)
		}
		out = append(out, Solution{Grid: g, Result: res})
	}
	return out, nil
}
