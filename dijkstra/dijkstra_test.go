// Package dijkstra_test contains unit tests for the Dijkstra implementation.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, err := dijkstra.Dijkstra[string, int](nil, "A")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := core.NewGraph[string, int]()
	_, err := dijkstra.Dijkstra(g, "X")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_NegativeWeightDetectedEarly(t *testing.T) {
	g := core.NewGraph[string, int]()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("B"))
	require.NoError(t, g.AddEdge("A", "B", -5))

	_, err := dijkstra.Dijkstra(g, "A")
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_NaNWeightRejected(t *testing.T) {
	g := core.NewGraph[string, float64]()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("B"))
	require.NoError(t, g.AddEdge("A", "B", math.NaN()))

	_, err := dijkstra.Dijkstra(g, "A")
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0) })
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(-2.5) })
}

// ------------------------------------------------------------------------
// 2. Basic functionality
// ------------------------------------------------------------------------

// triangle builds the undirected triangle A-B(1), B-C(2), A-C(5).
func triangle(t *testing.T) *core.Graph[string, int] {
	t.Helper()
	g := core.NewGraph[string, int](core.WithUndirected())
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddNode(id))
	}
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "C", 5))

	return g
}

func TestDijkstra_Triangle(t *testing.T) {
	res, err := dijkstra.Dijkstra(triangle(t), "A")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 3}, res.Dist)

	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)

	path, err = res.PathTo("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)
}

func TestDijkstra_DirectedUnreachable(t *testing.T) {
	g := core.NewGraph[string, int]()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddNode(id))
	}
	require.NoError(t, g.AddEdge("B", "A", 1))
	require.NoError(t, g.AddEdge("A", "C", 2))

	res, err := dijkstra.Dijkstra(g, "A")
	require.NoError(t, err)
	assert.False(t, res.Reached("B"))
	assert.True(t, res.Reached("C"))

	_, err = res.PathTo("B")
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestDijkstra_MaxDistanceLimits(t *testing.T) {
	// chain A-B-C-D with unit costs
	g := core.NewGraph[string, int]()
	ids := []string{"A", "B", "C", "D"}
	for _, id := range ids {
		require.NoError(t, g.AddNode(id))
	}
	for i := 1; i < len(ids); i++ {
		require.NoError(t, g.AddEdge(ids[i-1], ids[i], 1))
	}

	res, err := dijkstra.Dijkstra(g, "A", dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 2}, res.Dist)

	res, err = dijkstra.Dijkstra(g, "A", dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 0}, res.Dist)
}

func TestDijkstra_InfThresholdStopsHeavyEdge(t *testing.T) {
	res, err := dijkstra.Dijkstra(triangle(t), "A", dijkstra.WithInfEdgeThreshold(2))
	require.NoError(t, err)
	// B-C(2) and A-C(5) are walls; only A-B(1) remains
	assert.Equal(t, map[string]int{"A": 0, "B": 1}, res.Dist)
}

func TestDijkstra_SelfLoopZeroWeight(t *testing.T) {
	g := core.NewGraph[string, float64]()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddEdge("A", "A", 0))

	res, err := dijkstra.Dijkstra(g, "A")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0}, res.Dist)
	assert.Empty(t, res.Prev)
}

func TestDijkstra_TiesFollowInsertionOrder(t *testing.T) {
	// two equal-cost routes S→A→T and S→B→T; A is inserted first
	g := core.NewGraph[string, int]()
	for _, id := range []string{"S", "A", "B", "T"} {
		require.NoError(t, g.AddNode(id))
	}
	require.NoError(t, g.AddEdge("S", "A", 1))
	require.NoError(t, g.AddEdge("S", "B", 1))
	require.NoError(t, g.AddEdge("A", "T", 1))
	require.NoError(t, g.AddEdge("B", "T", 1))

	for i := 0; i < 10; i++ {
		res, err := dijkstra.Dijkstra(g, "S")
		require.NoError(t, err)
		path, err := res.PathTo("T")
		require.NoError(t, err)
		assert.Equal(t, []string{"S", "A", "T"}, path)
	}
}
