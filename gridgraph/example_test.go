// File: gridgraph/example_test.go
package gridgraph_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pathfind/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Components
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_Components demonstrates how to identify
// contiguous “islands” of land cells in a 2D grid.
// Scenario:
//
//   - Grid values: 0 = water, anything ≥ 1 = land
//   - Conn4: 4-directional adjacency (N/E/S/W)
//   - Expect two islands, each listed in BFS order from its first cell.
func ExampleGridGraph_Components() {
	grid := [][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	}
	gg, _ := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())

	comps := gg.Components()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, c := range comp {
			fmt.Printf(" (%d,%d)", c.X, c.Y)
		}
		fmt.Println()
	}

	// Output:
	// components: 2
	// component 0: (1,0) (2,0) (1,1) (0,1) (0,2)
	// component 1: (4,0) (4,1) (3,1) (3,2) (2,2)
}

////////////////////////////////////////////////////////////////////////////////
// Example: FindPath
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_FindPath routes around a swamp cell (value 5):
// the detour along the top edge costs 6, crossing the swamp costs 8.
func ExampleGridGraph_FindPath() {
	grid := [][]int{
		{1, 1, 1, 1},
		{1, 0, 0, 1},
		{1, 5, 1, 1},
	}
	gg, _ := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())

	res, err := gg.FindPath(context.Background(), gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 2, Y: 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Status, res.TotalCost)
	for _, c := range res.Path {
		fmt.Printf("(%d,%d) ", c.X, c.Y)
	}
	fmt.Println()

	// Output:
	// found 6
	// (0,0) (1,0) (2,0) (3,0) (3,1) (3,2) (2,2)
}
