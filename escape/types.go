package escape

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazescape/maze"
)

// Sentinel errors for the search.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("escape: grid is nil")

	// ErrNoPath is returned when the frontier empties without reaching the exit.
	ErrNoPath = errors.New("escape: frontier exhausted, no escape found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("escape: invalid option supplied")

	// ErrExpansionLimit is returned when MaxExpansions is reached.
	ErrExpansionLimit = errors.New("escape: expansion limit reached")

	// ErrInvalidPath is returned by Validate for a path that breaks the
	// start, exit, adjacency or reachability rules.
	ErrInvalidPath = errors.New("escape: invalid path")
)

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds hooks and limits for Escape.
type Options struct {
	// OnExpand is called when a cell is popped from the frontier, with the
	// number of entries left behind it.
	OnExpand func(p maze.Point, frontier int)

	// OnDiscover is called each time a neighbor is linked to a parent,
	// including re-links of cells already waiting in the frontier.
	OnDiscover func(p, parent maze.Point)

	// MaxExpansions, if > 0, aborts the search with ErrExpansionLimit once
	// that many cells have been expanded. 0 means no limit.
	MaxExpansions int

	err error
}

// DefaultOptions returns Options with no-op hooks and no expansion limit.
func DefaultOptions() Options {
	return Options{
		OnExpand:   func(maze.Point, int) {},
		OnDiscover: func(_, _ maze.Point) {},
	}
}

// WithOnExpand registers a callback run on every expansion.
func WithOnExpand(fn func(p maze.Point, frontier int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnDiscover registers a callback run on every parent link.
func WithOnDiscover(fn func(p, parent maze.Point)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithMaxExpansions caps the number of expansions.
//
//	n > 0: at most n expansions
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// Result holds the outcome of a successful search:
//   - Path: points from start to exit, inclusive.
//   - Expanded: number of frontier pops, duplicates included.
//   - Visited: number of distinct cells marked visited.
type Result struct {
	Path     []maze.Point
	Expanded int
	Visited  int
}

// Len returns the number of steps in the path (points minus one).
func (r *Result) Len() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}
