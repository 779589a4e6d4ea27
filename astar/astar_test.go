package astar_test

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/astar"
	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/heuristic"
)

// buildGraph returns a directed graph over nodes with the given weighted edges.
func buildGraph[C core.Cost](t testing.TB, nodes []string, edges []core.Edge[string, C]) *core.Graph[string, C] {
	t.Helper()
	g := core.NewGraph[string, C]()
	for _, n := range nodes {
		require.NoError(t, g.AddNode(n))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Cost))
	}

	return g
}

// abcd is A→B(1), A→C(4), B→C(1), C→D(1).
func abcd(t testing.TB) *core.Graph[string, int] {
	return buildGraph(t, []string{"A", "B", "C", "D"}, []core.Edge[string, int]{
		{From: "A", To: "B", Cost: 1},
		{From: "A", To: "C", Cost: 4},
		{From: "B", To: "C", Cost: 1},
		{From: "C", To: "D", Cost: 1},
	})
}

func TestFindPath_ShortestPath(t *testing.T) {
	res, err := astar.FindPath(context.Background(), abcd(t), heuristic.Zero[string, int](), "A", "D")
	require.NoError(t, err)

	assert.Equal(t, astar.StatusFound, res.Status)
	assert.True(t, res.Found())
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Path)
	assert.Equal(t, 3, res.TotalCost)
	assert.Equal(t, 3, res.Expanded)
	assert.Zero(t, res.Reopened)
}

func TestFindPath_SourceIsDestination(t *testing.T) {
	res, err := astar.FindPath(context.Background(), abcd(t), heuristic.Zero[string, int](), "B", "B")
	require.NoError(t, err)

	assert.Equal(t, astar.StatusFound, res.Status)
	assert.Equal(t, []string{"B"}, res.Path)
	assert.Zero(t, res.TotalCost)
	assert.Zero(t, res.Expanded)
}

func TestFindPath_NoPath(t *testing.T) {
	g := abcd(t)
	require.NoError(t, g.AddNode("E"))

	res, err := astar.FindPath(context.Background(), g, heuristic.Zero[string, int](), "A", "E")
	require.NoError(t, err)
	assert.Equal(t, astar.StatusNoPath, res.Status)
	assert.False(t, res.Found())
	assert.Nil(t, res.Path)
	assert.Zero(t, res.TotalCost)
	assert.Equal(t, 4, res.Expanded, "every reachable node is expanded")

	// edges are directed: D cannot reach A
	res, err = astar.FindPath(context.Background(), g, heuristic.Zero[string, int](), "D", "A")
	require.NoError(t, err)
	assert.Equal(t, astar.StatusNoPath, res.Status)
	assert.Equal(t, 1, res.Expanded)
}

func TestFindPath_UnknownNode(t *testing.T) {
	g := abcd(t)
	h := heuristic.Zero[string, int]()
	ctx := context.Background()

	for _, tc := range []struct{ src, dst string }{{"Z", "A"}, {"A", "Z"}} {
		_, err := astar.FindPath(ctx, g, h, tc.src, tc.dst)
		assert.ErrorIs(t, err, astar.ErrUnknownNode)
		assert.ErrorIs(t, err, core.ErrUnknownNode)
	}
}

func TestFindPath_TieBreakingIsDeterministic(t *testing.T) {
	diamond := func(first, second string) *core.Graph[string, int] {
		return buildGraph(t, []string{"S", "A", "B", "T"}, []core.Edge[string, int]{
			{From: "S", To: first, Cost: 1},
			{From: "S", To: second, Cost: 1},
			{From: "A", To: "T", Cost: 1},
			{From: "B", To: "T", Cost: 1},
		})
	}
	h := heuristic.Zero[string, int]()

	// equal (f, g) pairs pop in insertion order
	for i := 0; i < 20; i++ {
		res, err := astar.FindPath(context.Background(), diamond("A", "B"), h, "S", "T")
		require.NoError(t, err)
		assert.Equal(t, []string{"S", "A", "T"}, res.Path)
	}
	res, err := astar.FindPath(context.Background(), diamond("B", "A"), h, "S", "T")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "B", "T"}, res.Path)
	assert.Equal(t, 2, res.TotalCost)
}

func TestFindPath_ReopensClosedNode(t *testing.T) {
	g := buildGraph(t, []string{"S", "A", "C", "T"}, []core.Edge[string, int]{
		{From: "S", To: "A", Cost: 1},
		{From: "S", To: "C", Cost: 5},
		{From: "A", To: "C", Cost: 1},
		{From: "C", To: "T", Cost: 200},
	})
	// overestimating A makes C close via the expensive edge first
	h, err := heuristic.NewTable(map[string]map[string]int{"A": {"T": 100}})
	require.NoError(t, err)

	var reopened []string
	res, err := astar.FindPath[string, int](context.Background(), g, h, "S", "T",
		astar.WithOnReopen(func(n string, cost int) {
			reopened = append(reopened, n)
			assert.Equal(t, 2, cost)
		}))
	require.NoError(t, err)

	assert.Equal(t, astar.StatusFound, res.Status)
	assert.Equal(t, []string{"S", "A", "C", "T"}, res.Path)
	assert.Equal(t, 202, res.TotalCost)
	assert.Equal(t, 1, res.Reopened)
	assert.Equal(t, 4, res.Expanded, "C is expanded twice")
	assert.Equal(t, []string{"C"}, reopened)
}

func TestFindPath_HeuristicQueriedOncePerNode(t *testing.T) {
	g := buildGraph(t, []string{"S", "A", "C", "T"}, []core.Edge[string, int]{
		{From: "S", To: "A", Cost: 1},
		{From: "S", To: "C", Cost: 5},
		{From: "A", To: "C", Cost: 1},
		{From: "C", To: "T", Cost: 200},
	})
	tbl, err := heuristic.NewTable(map[string]map[string]int{"A": {"T": 100}})
	require.NoError(t, err)

	calls := make(map[string]int)
	h := astar.HeuristicFunc[string, int](func(n, dst string) int {
		calls[n]++
		return tbl.Estimate(n, dst)
	})
	res, err := astar.FindPath(context.Background(), g, h, "S", "T")
	require.NoError(t, err)
	require.Equal(t, 1, res.Reopened)

	// C is reopened but keeps its cached estimate
	assert.Equal(t, map[string]int{"S": 1, "A": 1, "C": 1, "T": 1}, calls)
}

func TestFindPath_Cancelled(t *testing.T) {
	g := abcd(t)
	h := heuristic.Zero[string, int]()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := astar.FindPath(ctx, g, h, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, astar.StatusCancelled, res.Status)
	assert.Nil(t, res.Path)
	assert.Zero(t, res.Expanded)

	// cancellation observed at the next loop iteration
	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()
	res, err = astar.FindPath(ctx, g, h, "A", "D", astar.WithOnExpand(func(n string, _ int) {
		if n == "B" {
			cancel()
		}
	}))
	require.NoError(t, err)
	assert.Equal(t, astar.StatusCancelled, res.Status)
	assert.Equal(t, 2, res.Expanded)
}

func TestFindPath_NilContext(t *testing.T) {
	s, err := astar.NewSearch[string, int](abcd(t), heuristic.Zero[string, int]())
	require.NoError(t, err)

	//nolint:staticcheck // nil context is tolerated
	res, err := s.FindPath(nil, "A", "D")
	require.NoError(t, err)
	assert.True(t, res.Found())
}

func TestFindPath_InvalidHeuristic(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"}, []core.Edge[string, float64]{{From: "A", To: "B", Cost: 1}})
	ctx := context.Background()

	for name, bad := range map[string]float64{
		"negative": -1,
		"NaN":      math.NaN(),
		"+Inf":     math.Inf(1),
	} {
		t.Run(name, func(t *testing.T) {
			// the source estimate is fine; B's is not
			h := astar.HeuristicFunc[string, float64](func(n, _ string) float64 {
				if n == "B" {
					return bad
				}
				return 0
			})
			_, err := astar.FindPath(ctx, g, h, "A", "B")
			assert.ErrorIs(t, err, astar.ErrInvalidHeuristic)
		})
	}
}

func TestFindPath_UnorderableCost(t *testing.T) {
	for name, bad := range map[string]float64{
		"NaN":  math.NaN(),
		"+Inf": math.Inf(1),
		"-Inf": math.Inf(-1),
	} {
		t.Run(name, func(t *testing.T) {
			g := buildGraph(t, []string{"A", "B"}, []core.Edge[string, float64]{{From: "A", To: "B", Cost: bad}})
			res, err := astar.FindPath(context.Background(), g, heuristic.Zero[string, float64](), "A", "B")
			assert.ErrorIs(t, err, astar.ErrInvalidCost)
			assert.Nil(t, res.Path)
		})
	}
}

func TestFindPath_IntegerOverflow(t *testing.T) {
	ctx := context.Background()

	// A→B→D sums to 200, which does not fit in int8
	g := buildGraph(t, []string{"A", "B", "C", "D"}, []core.Edge[string, int8]{
		{From: "A", To: "B", Cost: 100},
		{From: "B", To: "D", Cost: 100},
		{From: "A", To: "C", Cost: 120},
		{From: "C", To: "D", Cost: 5},
	})
	res, err := astar.FindPath(ctx, g, heuristic.Zero[string, int8](), "A", "D")
	assert.ErrorIs(t, err, astar.ErrInvalidCost)
	assert.Nil(t, res.Path)

	// g fits, g + h does not
	g = buildGraph(t, []string{"A", "B"}, []core.Edge[string, int8]{{From: "A", To: "B", Cost: 100}})
	h := astar.HeuristicFunc[string, int8](func(n, _ string) int8 {
		if n == "B" {
			return 100
		}
		return 0
	})
	_, err = astar.FindPath(ctx, g, h, "A", "B")
	assert.ErrorIs(t, err, astar.ErrInvalidHeuristic)

	// sums that fit are unaffected
	g = buildGraph(t, []string{"A", "B", "D"}, []core.Edge[string, int8]{
		{From: "A", To: "B", Cost: 60},
		{From: "B", To: "D", Cost: 60},
		{From: "A", To: "D", Cost: 125},
	})
	res, err = astar.FindPath(ctx, g, heuristic.Zero[string, int8](), "A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, res.Path)
	assert.Equal(t, int8(120), res.TotalCost)
}

func TestNewSearch_Validation(t *testing.T) {
	h := heuristic.Zero[string, int]()

	_, err := astar.NewSearch[string, int](nil, h)
	assert.ErrorIs(t, err, astar.ErrNilGraph)

	var typedNil *core.Graph[string, int]
	_, err = astar.NewSearch[string, int](typedNil, h)
	assert.ErrorIs(t, err, astar.ErrNilGraph)

	_, err = astar.NewSearch[string, int](abcd(t), nil)
	assert.ErrorIs(t, err, astar.ErrNilHeuristic)

	var nilFunc astar.HeuristicFunc[string, int]
	_, err = astar.NewSearch[string, int](abcd(t), nilFunc)
	assert.ErrorIs(t, err, astar.ErrNilHeuristic)

	_, err = astar.NewSearch[string, int](abcd(t), h, astar.WithMaxExpansions[string, int](-1))
	assert.ErrorIs(t, err, astar.ErrOptionViolation)
}

func TestFindPath_Hooks(t *testing.T) {
	var expanded []string
	var relaxed [][2]string
	res, err := astar.FindPath(context.Background(), abcd(t), heuristic.Zero[string, int](), "A", "D",
		astar.WithOnExpand(func(n string, _ int) { expanded = append(expanded, n) }),
		astar.WithOnRelax(func(from, to string, _ int) { relaxed = append(relaxed, [2]string{from, to}) }),
		astar.WithOnReopen[string, int](nil), // nil keeps the no-op
	)
	require.NoError(t, err)
	require.True(t, res.Found())

	assert.Equal(t, []string{"A", "B", "C"}, expanded)
	assert.Equal(t, [][2]string{{"A", "B"}, {"A", "C"}, {"B", "C"}, {"C", "D"}}, relaxed)
}

func TestFindPath_MaxExpansions(t *testing.T) {
	h := heuristic.Zero[string, int]()

	_, err := astar.FindPath(context.Background(), abcd(t), h, "A", "D", astar.WithMaxExpansions[string, int](2))
	assert.ErrorIs(t, err, astar.ErrExpansionLimit)

	res, err := astar.FindPath(context.Background(), abcd(t), h, "A", "D", astar.WithMaxExpansions[string, int](3))
	require.NoError(t, err)
	assert.True(t, res.Found())
}

func TestFindPath_IntegerGridManhattan(t *testing.T) {
	// 3×3 undirected grid, node id = y*3 + x
	g := core.NewGraph[int, int](core.WithUndirected())
	for i := 0; i < 9; i++ {
		require.NoError(t, g.AddNode(i))
	}
	for i := 0; i < 9; i++ {
		if i%3 < 2 {
			require.NoError(t, g.AddEdge(i, i+1, 1))
		}
		if i < 6 {
			require.NoError(t, g.AddEdge(i, i+3, 1))
		}
	}
	loc := func(n int) (float64, float64, bool) { return float64(n % 3), float64(n / 3), true }

	res, err := astar.FindPath(context.Background(), g, heuristic.Manhattan[int, int](loc, 1), 0, 8)
	require.NoError(t, err)
	assert.Equal(t, 4, res.TotalCost)
	assert.Len(t, res.Path, 5)
	assert.Equal(t, 0, res.Path[0])
	assert.Equal(t, 8, res.Path[4])
}

func TestSearch_ConcurrentUse(t *testing.T) {
	s, err := astar.NewSearch[string, int](abcd(t), heuristic.Zero[string, int]())
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]astar.Result[string, int], 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = s.FindPath(context.Background(), "A", "D")
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, []string{"A", "B", "C", "D"}, r.Path)
		assert.Equal(t, 3, r.TotalCost)
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "no-path", astar.StatusNoPath.String())
	assert.Equal(t, "found", astar.StatusFound.String())
	assert.Equal(t, "cancelled", astar.StatusCancelled.String())
	assert.Equal(t, "Status(9)", astar.Status(9).String())

	assert.Equal(t, "unvisited", astar.NodeUnvisited.String())
	assert.Equal(t, "open", astar.NodeOpen.String())
	assert.Equal(t, "closed", astar.NodeClosed.String())
}
