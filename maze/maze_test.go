package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazescape/internal/samples"
	"github.com/katalvlaran/mazescape/maze"
)

//----------------------------------------------------------------------------//
// Parse Tests
//----------------------------------------------------------------------------//

// TestParse_Errors verifies that Parse rejects malformed or incomplete mazes.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		opts []maze.Option
		err  error
	}{
		{"NoRows", nil, nil, maze.ErrMalformedMaze},
		{"EmptyRow", []string{""}, nil, maze.ErrMalformedMaze},
		{"Ragged", []string{"#+#", "#.", "#.#"}, nil, maze.ErrMalformedMaze},
		{"RaggedLastRow", []string{"#+.", "#..", "#...."}, nil, maze.ErrMalformedMaze},
		{"NoStart", []string{"###", "#..", "###"}, nil, maze.ErrStartNotFound},
		{"NoExit", []string{"###", "#+#", "###"}, nil, maze.ErrNoExit},
		{"SameMarkers", []string{"#+."}, []maze.Option{maze.WithWall('x'), maze.WithStart('x')}, maze.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := maze.Parse(tc.rows, tc.opts...)
			require.ErrorIs(t, err, tc.err)
			require.Nil(t, g)
		})
	}
}

// TestParse_Example checks dimensions, start, exit and reachability flags.
func TestParse_Example(t *testing.T) {
	g, err := maze.Parse([]string{
		"####",
		"#+.#",
		"#..#",
		"##.#",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 4, g.Height())
	assert.Equal(t, maze.Point{X: 1, Y: 1}, g.Start())
	assert.Equal(t, maze.Cell{Point: maze.Point{X: 2, Y: 3}, Reachable: true}, g.Exit())

	assert.True(t, g.Reachable(maze.Point{X: 1, Y: 1}), "start marker is floor")
	assert.False(t, g.Reachable(maze.Point{X: 0, Y: 0}))
	assert.False(t, g.Reachable(maze.Point{X: 4, Y: 0}), "out of bounds is never reachable")
}

// TestParse_CustomMarkers verifies that WithWall and WithStart change the alphabet.
func TestParse_CustomMarkers(t *testing.T) {
	g, err := maze.Parse([]string{
		"XXX",
		"XS ",
		"XXX",
	}, maze.WithWall('X'), maze.WithStart('S'))
	require.NoError(t, err)

	assert.Equal(t, maze.Point{X: 1, Y: 1}, g.Start())
	assert.Equal(t, maze.Point{X: 2, Y: 1}, g.Exit().Point)
	assert.Equal(t, 'X', g.Options().Wall)
}

// TestParse_RuneWidths verifies that widths and columns count runes, not bytes.
func TestParse_RuneWidths(t *testing.T) {
	g, err := maze.Parse([]string{
		"█████",
		"█ö+ █",
		"███ █",
	}, maze.WithWall('█'))
	require.NoError(t, err)

	assert.Equal(t, 5, g.Width())
	assert.Equal(t, maze.Point{X: 2, Y: 1}, g.Start())
	assert.Equal(t, maze.Point{X: 3, Y: 2}, g.Exit().Point)
}

//----------------------------------------------------------------------------//
// FindStart Tests
//----------------------------------------------------------------------------//

// TestFindStart_FirstOccurrence checks that the scan stops at the first marker.
func TestFindStart_FirstOccurrence(t *testing.T) {
	p, err := maze.FindStart([]string{
		"#####",
		"#..+#",
		"#+..+",
	})
	require.NoError(t, err)
	assert.Equal(t, maze.Point{X: 3, Y: 1}, p)

	p, err = maze.FindStart([]string{"..++."})
	require.NoError(t, err)
	assert.Equal(t, maze.Point{X: 2, Y: 0}, p)
}

func TestFindStart_Missing(t *testing.T) {
	_, err := maze.FindStart([]string{"###", "#.#"})
	require.ErrorIs(t, err, maze.ErrStartNotFound)

	_, err = maze.FindStart(nil)
	require.ErrorIs(t, err, maze.ErrStartNotFound)
}

//----------------------------------------------------------------------------//
// FindExit Tests
//----------------------------------------------------------------------------//

// TestFindExit_Priority walks through the row-by-row priority rules.
func TestFindExit_Priority(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want maze.Point
	}{
		{"TopRowFirstReachable", []string{"##..#", "#+..#", "#####"}, maze.Point{X: 2, Y: 0}},
		{"LeftEdge", []string{"#####", "#+..#", "...##", "#####"}, maze.Point{X: 0, Y: 2}},
		{"RightEdge", []string{"#####", "#+...", "#####"}, maze.Point{X: 4, Y: 1}},
		{"LeftBeatsRightInSameRow", []string{"#####", "..+..", "#####"}, maze.Point{X: 0, Y: 1}},
		{"EarlierRowBeatsBottom", []string{"#####", "#+..#", "#....", "##.##"}, maze.Point{X: 4, Y: 2}},
		{"BottomRow", []string{"#####", "#+..#", "#.###", "#.###"}, maze.Point{X: 1, Y: 3}},
		{"StartOnBoundary", []string{"#+###", "#...#", "#####"}, maze.Point{X: 1, Y: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := maze.Parse(tc.rows)
			require.NoError(t, err)

			exit, err := maze.FindExit(g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, exit.Point)
			assert.Equal(t, g.Exit(), exit)
		})
	}
}

// TestFindExit_OnBoundary checks that every sample maze has a reachable
// boundary exit.
func TestFindExit_OnBoundary(t *testing.T) {
	for _, m := range samples.All() {
		t.Run(m.Name, func(t *testing.T) {
			g, err := maze.Parse(m.Rows)
			require.NoError(t, err)

			exit := g.Exit()
			assert.True(t, exit.Reachable)
			assert.True(t, g.Reachable(exit.Point))
			assert.True(t, g.OnBoundary(exit.Point), "exit %v not on boundary", exit.Point)
		})
	}
}

//----------------------------------------------------------------------------//
// Neighbors and bounds Tests
//----------------------------------------------------------------------------//

// TestNeighbors_Order verifies the fixed x+1, x-1, y+1, y-1 order.
func TestNeighbors_Order(t *testing.T) {
	g, err := maze.Parse([]string{
		"#.#",
		".+.",
		"#.#",
	})
	require.NoError(t, err)

	var got []maze.Point
	for _, c := range g.Neighbors(maze.Point{X: 1, Y: 1}) {
		require.True(t, c.Reachable)
		got = append(got, c.Point)
	}
	want := []maze.Point{{X: 2, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 0}}
	assert.Equal(t, want, got)
}

// TestNeighbors_FilterAndBounds verifies walls and edges are skipped.
func TestNeighbors_FilterAndBounds(t *testing.T) {
	g, err := maze.Parse([]string{
		"+.#",
		"#..",
	})
	require.NoError(t, err)

	assert.Equal(t, []maze.Cell{{Point: maze.Point{X: 1, Y: 0}, Reachable: true}},
		g.Neighbors(maze.Point{X: 0, Y: 0}))
	assert.Len(t, g.Neighbors(maze.Point{X: 2, Y: 1}), 1)
	assert.Empty(t, g.Neighbors(maze.Point{X: 5, Y: 5}))
}

func TestInBoundsAndBoundary(t *testing.T) {
	g, err := maze.Parse([]string{
		"#.##",
		"#+.#",
		"####",
	})
	require.NoError(t, err)

	for _, p := range []maze.Point{{X: 0, Y: 0}, {X: 3, Y: 2}, {X: 1, Y: 1}} {
		assert.True(t, g.InBounds(p), "InBounds(%v)", p)
	}
	for _, p := range []maze.Point{{X: -1, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3}, {X: 2, Y: -1}} {
		assert.False(t, g.InBounds(p), "InBounds(%v)", p)
		_, ok := g.At(p)
		assert.False(t, ok)
	}
	assert.True(t, g.OnBoundary(maze.Point{X: 3, Y: 1}))
	assert.False(t, g.OnBoundary(maze.Point{X: 1, Y: 1}))
	assert.False(t, g.OnBoundary(maze.Point{X: 9, Y: 0}))
}

func TestCellIdentity(t *testing.T) {
	a := maze.Cell{Point: maze.Point{X: 2, Y: 3}, Reachable: true}
	b := maze.Cell{Point: maze.Point{X: 2, Y: 3}}
	assert.True(t, a.Is(b), "reachability is not part of identity")
	assert.False(t, a.Is(maze.Cell{Point: maze.Point{X: 3, Y: 2}}))

	assert.Equal(t, 3, a.Manhattan(maze.Point{X: 0, Y: 2}))
	assert.True(t, a.Adjacent(maze.Point{X: 2, Y: 4}))
	assert.False(t, a.Adjacent(maze.Point{X: 3, Y: 4}))
	assert.False(t, a.Adjacent(a.Point))
	assert.Equal(t, "(2,3)", a.String())
}
