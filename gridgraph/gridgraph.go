package gridgraph

import (
	"math"

	"github.com/katalvlaran/pathfind/core"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrBadThreshold if
// opts.LandThreshold < 1.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.LandThreshold < 1 {
		return nil, ErrBadThreshold
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	minLand := 0
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
		for _, v := range cells[y] {
			if v >= opts.LandThreshold && (minLand == 0 || v < minLand) {
				minLand = v
			}
		}
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		AllowCornerCut:  opts.AllowCornerCut,
		neighborOffsets: offsets,
		minLand:         minLand,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether (x,y) is inside the grid and not a wall.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// MinLandValue returns the smallest land value, or 0 for an all-wall grid.
func (gg *GridGraph) MinLandValue() int {
	return gg.minLand
}

// StepCost returns the cost of moving from a to an adjacent cell b:
// b's value, times √2 for a diagonal step.
func (gg *GridGraph) StepCost(a, b Cell) float64 {
	c := float64(gg.CellValues[b.Y][b.X])
	if a.X != b.X && a.Y != b.Y {
		c *= math.Sqrt2
	}

	return c
}

// ToGraph returns the directed weighted graph of land cells.
//
// Nodes are land cells in row-major order. For each land cell, edges to its
// land neighbours are emitted in NeighborOffsets order with cost StepCost.
// Without AllowCornerCut a diagonal edge requires both orthogonal cells it
// passes to be land.
//
// The graph is built once and shared; callers must not mutate it.
// Complexity: O(W×H×d) time and memory on first call, O(1) afterwards.
func (gg *GridGraph) ToGraph() *core.Graph[Cell, float64] {
	gg.once.Do(func() {
		gg.graph = gg.build()
	})

	return gg.graph
}

func (gg *GridGraph) build() *core.Graph[Cell, float64] {
	g := core.NewGraph[Cell, float64]()
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.IsLand(x, y) {
				_ = g.AddNode(Cell{X: x, Y: y})
			}
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue
			}
			u := Cell{X: x, Y: y}
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.IsLand(nx, ny) {
					continue
				}
				diagonal := d[0] != 0 && d[1] != 0
				if diagonal && !gg.AllowCornerCut && (!gg.IsLand(nx, y) || !gg.IsLand(x, ny)) {
					continue
				}
				v := Cell{X: nx, Y: ny}
				// both endpoints were registered above
				_ = g.AddEdge(u, v, gg.StepCost(u, v))
			}
		}
	}

	return g
}

// index maps (x,y) to a row‑major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
