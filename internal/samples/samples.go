// Package samples holds the built-in maze set solved when no maze files are
// given on the command line.
package samples

import "github.com/katalvlaran/mazescape/internal/mazefile"

// All returns a fresh copy of the built-in mazes. Each one has a single
// start marker '+', walls '#' and exactly one boundary exit.
func All() []mazefile.Maze {
	return []mazefile.Maze{
		{
			Name: "small",
			Rows: []string{
				"####",
				"#+.#",
				"#..#",
				"##.#",
			},
		},
		{
			Name: "corridors",
			Rows: []string{
				"##########",
				"#+   #   #",
				"# ## # # #",
				"#  #   # #",
				"## ##### #",
				"#      # #",
				"# #### # #",
				"#    #   #",
				"######## #",
			},
		},
		{
			Name: "room",
			Rows: []string{
				"#######",
				"#.....#",
				"#.+...#",
				"#.....#",
				"......#",
				"#######",
			},
		},
		{
			Name: "hook",
			Rows: []string{
				"#########",
				"#+#.....#",
				"#.#.###..",
				"#...#...#",
				"#########",
			},
		},
	}
}
