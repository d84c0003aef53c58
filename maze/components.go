package maze

// Regions finds all 4-connected regions of reachable cells.
// Regions are returned in row-major order of their first cell, and each
// region lists its cells in breadth-first discovery order.
//
// Time:   O(W·H).
// Memory: O(W·H) for the seen flags and output.
func (g *Grid) Regions() [][]Point {
	seen := make([]bool, len(g.cells))
	var regions [][]Point

	for i, c := range g.cells {
		if !c.Reachable || seen[i] {
			continue
		}
		seen[i] = true
		queue := []Point{c.Point}
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range g.Neighbors(queue[qi]) {
				ni := n.Y*g.width + n.X
				if !seen[ni] {
					seen[ni] = true
					queue = append(queue, n.Point)
				}
			}
		}
		regions = append(regions, queue)
	}
	return regions
}

// Connected reports whether a and b are reachable cells of the same region.
// Time: O(W·H) worst case.
func (g *Grid) Connected(a, b Point) bool {
	if !g.Reachable(a) || !g.Reachable(b) {
		return false
	}
	if a == b {
		return true
	}
	seen := map[Point]bool{a: true}
	queue := []Point{a}
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Neighbors(queue[qi]) {
			if n.Point == b {
				return true
			}
			if !seen[n.Point] {
				seen[n.Point] = true
				queue = append(queue, n.Point)
			}
		}
	}
	return false
}
