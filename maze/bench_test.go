package maze_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/mazescape/maze"
)

// openRows returns an n×n maze of open floor with the start in the middle.
func openRows(n int) []string {
	rows := make([]string, n)
	for y := range rows {
		rows[y] = strings.Repeat(".", n)
	}
	mid := []rune(rows[n/2])
	mid[n/2] = '+'
	rows[n/2] = string(mid)
	return rows
}

// BenchmarkParse measures Parse on a 500×500 open maze.
// Complexity: O(W×H)
func BenchmarkParse(b *testing.B) {
	rows := openRows(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := maze.Parse(rows); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRegions measures region labelling on a 500×500 open maze.
// Complexity: O(W×H)
func BenchmarkRegions(b *testing.B) {
	g, err := maze.Parse(openRows(500))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Regions()
	}
}
