// Package maze turns a rectangular text maze into an immutable grid of cells
// that a search can walk.
//
// What:
//
//   - Parse converts rows of runes into a *Grid: walls are blocked, every other
//     rune (the start marker included) is open floor.
//   - FindStart locates the first start marker, scanning rows top to bottom.
//   - FindExit picks the single exit cell on the outer boundary.
//   - Grid.Neighbors returns reachable 4-neighbors in a fixed order
//     (x+1, x-1, y+1, y-1) so that downstream tie-breaks are deterministic.
//   - Grid.Regions and Grid.Connected group reachable cells into
//     4-connected regions.
//
// Coordinates:
//
//	(0,0) is the top-left rune of the first row; X grows to the right,
//	Y grows downwards. Widths are measured in runes, not bytes.
//
// Options:
//
//   - WithWall: rune marking an impassable cell (default '#').
//   - WithStart: rune marking the starting position (default '+').
//
// Errors:
//
//   - ErrMalformedMaze: no rows, zero-width rows, or rows of differing length.
//   - ErrStartNotFound: no row contains the start marker.
//   - ErrNoExit: no reachable cell qualifies as the boundary exit.
//   - ErrOptionViolation: wall and start markers are the same rune.
//
// A Grid never changes after Parse returns. It carries no search state, so
// it can be shared between goroutines and searched any number of times.
package maze
