package gridgraph

import (
	"github.com/katalvlaran/pathfind/bfs"
)

// Components finds all contiguous regions (“islands”) of land cells,
// according to gg.Conn connectivity and the corner-cut rule of ToGraph.
// Components are ordered by their first cell in row-major order; cells
// within a component are in BFS order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H).
func (gg *GridGraph) Components() [][]Cell {
	g := gg.ToGraph()
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]Cell

	for _, start := range g.Nodes() {
		if seen[gg.index(start.X, start.Y)] {
			continue
		}
		// start is a registered node, so BFS cannot fail
		res, _ := bfs.BFS(g, start)
		for _, c := range res.Order {
			seen[gg.index(c.X, c.Y)] = true
		}
		comps = append(comps, res.Order)
	}

	return comps
}

// ComponentOf returns the index into Components() of the island holding c,
// or -1 if c is a wall or out of bounds.
func (gg *GridGraph) ComponentOf(c Cell) int {
	if !gg.IsLand(c.X, c.Y) {
		return -1
	}
	for i, comp := range gg.Components() {
		for _, m := range comp {
			if m == c {
				return i
			}
		}
	}

	return -1
}
