package escape

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/mazescape/maze"
)

// searcher encapsulates the mutable state of one Escape call.
type searcher struct {
	grid     *maze.Grid
	opts     Options
	start    maze.Point
	exit     maze.Point
	frontier []maze.Point
	visited  map[maze.Point]bool
	parent   map[maze.Point]maze.Point
	expanded int
}

// Escape searches g from its start to its exit and returns the path.
//
// Behavior:
//  1. frontier = [start], visited = {}.
//  2. Stable-sort the frontier by Manhattan distance to the exit and pop the
//     front cell. Popped cells are expanded even if already visited.
//  3. Every reachable neighbor not yet visited is linked to the popped cell,
//     overwriting any earlier link. If it is the exit the path is returned;
//     otherwise it is appended to the frontier, duplicates allowed.
//  4. The popped cell is marked visited.
//
// A start that is itself the exit yields the one-point path [start].
// Returns ErrGridNil, ErrOptionViolation, ErrExpansionLimit or ErrNoPath.
func Escape(g *maze.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start, exit := g.Start(), g.Exit().Point
	if start == exit {
		return &Result{Path: []maze.Point{start}}, nil
	}

	n := g.Width() * g.Height()
	s := &searcher{
		grid:     g,
		opts:     o,
		start:    start,
		exit:     exit,
		frontier: make([]maze.Point, 0, n),
		visited:  make(map[maze.Point]bool, n),
		parent:   make(map[maze.Point]maze.Point, n),
	}
	s.frontier = append(s.frontier, start)

	return s.loop()
}

// loop expands cells until the exit is discovered or the frontier is empty.
func (s *searcher) loop() (*Result, error) {
	for len(s.frontier) > 0 {
		if s.opts.MaxExpansions > 0 && s.expanded >= s.opts.MaxExpansions {
			return nil, fmt.Errorf("%w: %d expansions", ErrExpansionLimit, s.expanded)
		}
		current := s.pop()
		for _, nbr := range s.grid.Neighbors(current) {
			if s.visited[nbr.Point] {
				continue
			}
			s.parent[nbr.Point] = current
			s.opts.OnDiscover(nbr.Point, current)

			if nbr.Point == s.exit {
				return s.result(current)
			}
			s.frontier = append(s.frontier, nbr.Point)
		}
		s.visited[current] = true
	}
	return nil, ErrNoPath
}

// pop re-sorts the frontier, removes its closest cell and reports it to OnExpand.
func (s *searcher) pop() maze.Point {
	slices.SortStableFunc(s.frontier, func(a, b maze.Point) int {
		return cmp.Compare(a.Manhattan(s.exit), b.Manhattan(s.exit))
	})
	p := s.frontier[0]
	s.frontier = s.frontier[1:]
	s.expanded++
	s.opts.OnExpand(p, len(s.frontier))
	return p
}

// result rebuilds the path exit ← last ← ... ← start and reverses it.
func (s *searcher) result(last maze.Point) (*Result, error) {
	path := []maze.Point{s.exit}
	for cur := last; cur != s.start; {
		path = append(path, cur)
		prev, ok := s.parent[cur]
		if !ok {
			return nil, fmt.Errorf("%w: parent chain broken at %v", ErrNoPath, cur)
		}
		cur = prev
	}
	path = append(path, s.start)
	slices.Reverse(path)

	return &Result{
		Path:     path,
		Expanded: s.expanded,
		Visited:  len(s.visited),
	}, nil
}

// Validate reports whether path is a valid escape from g: it starts at the
// start, ends at the exit, and every step moves to an adjacent reachable cell.
// Returns ErrInvalidPath wrapped with the offending index.
func Validate(g *maze.Grid, path []maze.Point) error {
	if g == nil {
		return ErrGridNil
	}
	if len(path) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if path[0] != g.Start() {
		return fmt.Errorf("%w: starts at %v, want %v", ErrInvalidPath, path[0], g.Start())
	}
	if last := path[len(path)-1]; last != g.Exit().Point {
		return fmt.Errorf("%w: ends at %v, want %v", ErrInvalidPath, last, g.Exit().Point)
	}
	for i, p := range path {
		if !g.Reachable(p) {
			return fmt.Errorf("%w: step %d at %v is not reachable", ErrInvalidPath, i, p)
		}
		if i > 0 && !path[i-1].Adjacent(p) {
			return fmt.Errorf("%w: step %d jumps from %v to %v", ErrInvalidPath, i, path[i-1], p)
		}
	}
	return nil
}
