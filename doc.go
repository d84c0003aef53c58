// Package mazescape finds the way out of text mazes and animates the escape.
//
// 🧭 What is inside?
//
//	maze/        parse text rows into an immutable Grid; start, exit, neighbors, regions
//	escape/      greedy best-first search from start to exit, path validation
//	render/      animated GIF of the escape, one frame per step
//	cmd/escape   command-line driver: solve, validate, version
//
// Quick ASCII example ('+' start, '#' wall):
//
//	####
//	#+.#
//	#..#
//	##.#   → (1,1) (2,1) (2,2) (2,3)
//
//	go install github.com/katalvlaran/mazescape/cmd/escape@latest
package mazescape

// Version is the release of the module and its command-line driver.
const Version = "0.1.0"
