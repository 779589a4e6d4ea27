package gridgraph

import (
	"context"

	"github.com/katalvlaran/pathfind/astar"
	"github.com/katalvlaran/pathfind/heuristic"
)

// locate exposes cell coordinates to the planar heuristics.
func locate(c Cell) (x, y float64, ok bool) {
	return float64(c.X), float64(c.Y), true
}

// ManhattanHeuristic returns MinLandValue × (|dx| + |dy|).
// Admissible for Conn4 grids.
func (gg *GridGraph) ManhattanHeuristic() astar.HeuristicFunc[Cell, float64] {
	return heuristic.Manhattan[Cell, float64](locate, float64(gg.minLand))
}

// OctileHeuristic returns MinLandValue × octile distance.
// Admissible for Conn8 grids (and for Conn4, less tightly).
func (gg *GridGraph) OctileHeuristic() astar.HeuristicFunc[Cell, float64] {
	return heuristic.Octile[Cell, float64](locate, float64(gg.minLand))
}

// Heuristic returns the tightest admissible heuristic for gg.Conn.
func (gg *GridGraph) Heuristic() astar.HeuristicFunc[Cell, float64] {
	if gg.Conn == Conn8 {
		return gg.OctileHeuristic()
	}

	return gg.ManhattanHeuristic()
}

// FindPath runs A* from one cell to another over ToGraph() using Heuristic().
// Walls and out-of-bounds cells are not nodes and fail with astar.ErrUnknownNode.
func (gg *GridGraph) FindPath(ctx context.Context, from, to Cell, opts ...astar.Option[Cell, float64]) (astar.Result[Cell, float64], error) {
	return astar.FindPath(ctx, gg.ToGraph(), gg.Heuristic(), from, to, opts...)
}
