// Package escape finds a way out of a maze.Grid.
//
// The search is a greedy best-first walk: before every expansion the whole
// frontier is stably re-sorted by Manhattan distance to the exit, the closest
// cell is popped, and its reachable unvisited neighbors are linked to it and
// queued. The walk stops the moment the exit is discovered as a neighbor;
// the path is then rebuilt from the parent links.
//
// Guarantees:
//
//   - The path starts at Grid.Start and ends at Grid.Exit.
//   - Consecutive points are 4-adjacent and both reachable.
//   - The path is NOT guaranteed to be shortest.
//
// Parent links and the visited set live inside a single Escape call, so a
// Grid can be searched repeatedly (and concurrently) with identical results.
//
// Complexity: each cell is marked visited at most once, so expansions are
// bounded by W×H plus duplicate frontier entries; every expansion sorts the
// frontier, O(F log F).
//
// Errors:
//
//   - ErrGridNil: nil grid.
//   - ErrNoPath: frontier exhausted before the exit was seen.
//   - ErrOptionViolation: negative MaxExpansions.
//   - ErrExpansionLimit: MaxExpansions reached.
//   - ErrInvalidPath: returned by Validate.
package escape
