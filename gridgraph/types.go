// File: types.go
// Role: grid options, the Cell node type and sentinel errors.
package gridgraph

import (
	"errors"
	"sync"

	"github.com/katalvlaran/pathfind/core"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadThreshold indicates a LandThreshold below 1, which would allow
	// non-positive terrain costs.
	ErrBadThreshold = errors.New("gridgraph: LandThreshold must be at least 1")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell identifies a grid cell. It is the node type of the derived graph.
type Cell struct {
	X, Y int
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered "land".
	// Cells below it are walls. Must be ≥ 1.
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// AllowCornerCut lets a diagonal step pass between two orthogonal walls.
	// Only meaningful with Conn8.
	AllowCornerCut bool
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are land), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D integer grid as a weighted graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
// The derived graph is built once, on first use, and shared afterwards.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	LandThreshold   int
	AllowCornerCut  bool
	neighborOffsets [][2]int
	minLand         int // smallest land value; 0 when there is no land

	once  sync.Once
	graph *core.Graph[Cell, float64]
}
