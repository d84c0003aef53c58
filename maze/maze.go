package maze

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// neighborOffsets lists the 4-neighborhood in search order: x+1, x-1, y+1, y-1.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Parse builds a Grid from rows of equal rune length.
// Every rune equal to the wall marker becomes an unreachable cell; all other
// runes, including the start marker, are reachable.
// Parse also locates the start (see FindStart) and the exit (see FindExit),
// so it returns ErrStartNotFound or ErrNoExit as well as ErrMalformedMaze.
// Complexity: O(W×H) time and memory.
func Parse(rows []string, opts ...Option) (*Grid, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedMaze)
	}
	w, h := utf8.RuneCountInString(rows[0]), len(rows)
	if w == 0 {
		return nil, fmt.Errorf("%w: row 0 is empty", ErrMalformedMaze)
	}
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrMalformedMaze, y, n, w)
		}
	}

	start, err := FindStart(rows, opts...)
	if err != nil {
		return nil, err
	}

	g := &Grid{
		width:  w,
		height: h,
		cells:  make([]Cell, 0, w*h),
		start:  start,
		opts:   o,
	}
	for y, row := range rows {
		x := 0
		for _, r := range row {
			g.cells = append(g.cells, Cell{Point: Point{X: x, Y: y}, Reachable: r != o.Wall})
			x++
		}
	}

	if g.exit, err = FindExit(g); err != nil {
		return nil, err
	}

	return g, nil
}

// FindStart returns the coordinates of the start marker. Rows are scanned top
// to bottom and the first row containing the marker wins; X is the rune index
// of the marker's first occurrence in that row.
func FindStart(rows []string, opts ...Option) (Point, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Point{}, err
	}
	for y, row := range rows {
		if i := strings.IndexRune(row, o.Start); i >= 0 {
			return Point{X: utf8.RuneCountInString(row[:i]), Y: y}, nil
		}
	}
	return Point{}, fmt.Errorf("%w: %q", ErrStartNotFound, o.Start)
}

// FindExit returns the exit cell of g, scanning rows top to bottom:
//  1. on the top or bottom row, the first reachable cell from the left;
//  2. otherwise the row's leftmost cell, if reachable;
//  3. otherwise the row's rightmost cell, if reachable.
//
// The first row that yields a cell decides. Returns ErrNoExit if none does.
func FindExit(g *Grid) (Cell, error) {
	for y := 0; y < g.height; y++ {
		if y == 0 || y == g.height-1 {
			for x := 0; x < g.width; x++ {
				if c := g.cell(x, y); c.Reachable {
					return c, nil
				}
			}
		}
		if c := g.cell(0, y); c.Reachable {
			return c, nil
		}
		if c := g.cell(g.width-1, y); c.Reachable {
			return c, nil
		}
	}
	return Cell{}, ErrNoExit
}

// cell returns the cell at (x,y); the caller guarantees bounds.
func (g *Grid) cell(x, y int) Cell {
	return g.cells[y*g.width+x]
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the starting coordinates.
func (g *Grid) Start() Point { return g.start }

// Exit returns the exit cell.
func (g *Grid) Exit() Cell { return g.exit }

// Options returns the marker options g was parsed with.
func (g *Grid) Options() Options { return g.opts }

// InBounds reports whether p lies within [0,Width) × [0,Height).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the cell at p and whether p is in bounds.
func (g *Grid) At(p Point) (Cell, bool) {
	if !g.InBounds(p) {
		return Cell{}, false
	}
	return g.cell(p.X, p.Y), true
}

// Reachable reports whether p is in bounds and not a wall.
func (g *Grid) Reachable(p Point) bool {
	c, ok := g.At(p)
	return ok && c.Reachable
}

// OnBoundary reports whether p lies on the outermost ring of the grid.
func (g *Grid) OnBoundary(p Point) bool {
	return g.InBounds(p) && (p.X == 0 || p.Y == 0 || p.X == g.width-1 || p.Y == g.height-1)
}

// Neighbors returns the reachable in-bounds 4-neighbors of p in the fixed
// order x+1, x-1, y+1, y-1.
// Complexity: O(1).
func (g *Grid) Neighbors(p Point) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		if c, ok := g.At(Point{X: p.X + d[0], Y: p.Y + d[1]}); ok && c.Reachable {
			out = append(out, c)
		}
	}
	return out
}
