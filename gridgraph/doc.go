// Package gridgraph treats a 2D grid of terrain values as a weighted graph,
// enabling island analysis and A* routing across the terrain.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - Cells with value < LandThreshold are walls; every other cell is land.
//   - ToGraph converts land cells into a *core.Graph[Cell, float64]; stepping
//     into a cell costs its value, times √2 on a diagonal.
//   - Components lists connected “islands” of land.
//   - FindPath runs A* with an admissible heuristic scaled by the cheapest land value.
//
// Why:
//
//   - Game maps: walkable regions and weighted movement (roads, swamp, forest).
//   - Robotics: occupancy grids with traversal cost.
//
// Complexity:
//
//   - ToGraph:    O(W×H×d), Memory: O(W×H×d)   (d = number of neighbors, 4 or 8).
//   - Components: O(W×H×d), Memory: O(W×H).
//   - FindPath:   O((W×H×d) log(W×H)) worst case.
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land" (≥ 1).
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - GridOptions.AllowCornerCut: diagonal steps may squeeze between two walls.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadThreshold: LandThreshold below 1.
//   - astar.ErrUnknownNode: FindPath endpoint is a wall or out of bounds.
package gridgraph
