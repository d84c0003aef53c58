package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze parsing.
var (
	// ErrMalformedMaze indicates empty input or rows of differing lengths.
	ErrMalformedMaze = errors.New("maze: rows must be non-empty and of equal length")
	// ErrStartNotFound indicates that no row contains the start marker.
	ErrStartNotFound = errors.New("maze: start marker not found")
	// ErrNoExit indicates that no reachable boundary cell exists.
	ErrNoExit = errors.New("maze: no exit found")
	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("maze: invalid option supplied")
)

const (
	// DefaultWall is the rune marking an impassable cell.
	DefaultWall = '#'
	// DefaultStart is the rune marking the starting position.
	DefaultStart = '+'
)

// Point is a grid coordinate. It is the identity of a cell: two cells are
// the same cell iff their Points are equal.
type Point struct {
	X, Y int
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Manhattan returns |p.X-q.X| + |p.Y-q.Y|.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Adjacent reports whether p and q differ by one unit along exactly one axis.
func (p Point) Adjacent(q Point) bool {
	return p.Manhattan(q) == 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Cell is one grid position with its reachability flag.
type Cell struct {
	Point
	Reachable bool // false for wall runes
}

// Is reports whether c and other denote the same position. The reachability
// flag is not part of a cell's identity.
func (c Cell) Is(other Cell) bool {
	return c.Point == other.Point
}

// Option configures Parse and FindStart via functional arguments.
type Option func(*Options)

// Options holds the marker runes used to interpret maze text.
type Options struct {
	// Wall marks an impassable cell.
	Wall rune
	// Start marks the starting position; it is open floor.
	Start rune

	err error
}

// DefaultOptions returns Options with Wall='#' and Start='+'.
func DefaultOptions() Options {
	return Options{Wall: DefaultWall, Start: DefaultStart}
}

// WithWall sets the wall marker.
func WithWall(r rune) Option {
	return func(o *Options) { o.Wall = r }
}

// WithStart sets the start marker.
func WithStart(r rune) Option {
	return func(o *Options) { o.Start = r }
}

// buildOptions applies opts over the defaults and validates the result.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Wall == o.Start {
		o.err = fmt.Errorf("%w: wall and start markers are both %q", ErrOptionViolation, o.Wall)
	}
	return o, o.err
}

// Grid is an immutable rectangular maze. cells is stored row-major:
// cells[y*width+x] holds the cell at (x,y).
type Grid struct {
	width, height int
	cells         []Cell
	start         Point
	exit          Cell
	opts          Options
}
