package geo_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/astar"
	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/geo"
)

// line lays four stops 0.01° apart along the equator.
var line = map[string]geo.Position{
	"A": {Lat: 0, Lon: 0},
	"B": {Lat: 0, Lon: 0.01},
	"C": {Lat: 0, Lon: 0.02},
	"D": {Lat: 0, Lon: 0.03},
}

// roadGraph connects consecutive stops with costs 5% above their
// great-circle length (meters), plus an expensive A→D bypass.
func roadGraph(t *testing.T) *core.Graph[string, float64] {
	g := core.NewGraph[string, float64](core.WithUndirected())
	for _, n := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddNode(n))
	}
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1.05*geo.DistanceMeters(line[e[0]], line[e[1]])))
	}
	require.NoError(t, g.AddEdge("A", "D", 1e6))

	return g
}

func TestDistanceMeters(t *testing.T) {
	oneDegree := geo.EarthRadiusMeters * math.Pi / 180
	assert.InDelta(t, oneDegree, geo.DistanceMeters(geo.Position{Lat: 0, Lon: 0}, geo.Position{Lat: 1, Lon: 0}), 1e-6)
	assert.InDelta(t, oneDegree, geo.DistanceMeters(geo.Position{Lat: 0, Lon: 0}, geo.Position{Lat: 0, Lon: 1}), 1e-6)
	assert.Zero(t, geo.DistanceMeters(line["B"], line["B"]))
}

func TestGreatCircle(t *testing.T) {
	h, err := geo.GreatCircle[string, float64](line, 1000)
	require.NoError(t, err)
	want := geo.DistanceMeters(line["A"], line["D"]) / 1000
	assert.InDelta(t, want, h.Estimate("A", "D"), 1e-12)
	assert.Zero(t, h.Estimate("A", "nowhere"))

	hi, err := geo.GreatCircle[string, int](line, 1)
	require.NoError(t, err)
	assert.Equal(t, int(geo.DistanceMeters(line["A"], line["B"])), hi.Estimate("A", "B"))

	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := geo.GreatCircle[string, float64](line, bad)
		assert.ErrorIs(t, err, geo.ErrInvalidScale, "scale %v", bad)
	}
}

func TestEncodePath(t *testing.T) {
	// reference points of the encoded polyline algorithm format
	pos := map[int]geo.Position{
		1: {Lat: 38.5, Lon: -120.2},
		2: {Lat: 40.7, Lon: -120.95},
		3: {Lat: 43.252, Lon: -126.453},
	}
	s, err := geo.EncodePath([]int{1, 2, 3}, pos)
	require.NoError(t, err)
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", s)

	back, err := geo.DecodePath(s)
	require.NoError(t, err)
	require.Len(t, back, 3)
	assert.InDelta(t, 43.252, back[2].Lat, 1e-9)
	assert.InDelta(t, -126.453, back[2].Lon, 1e-9)

	_, err = geo.EncodePath([]int{1, 4}, pos)
	assert.ErrorIs(t, err, geo.ErrUnknownPosition)
}

func TestIndex_Nearest(t *testing.T) {
	idx, err := geo.NewIndex(line)
	require.NoError(t, err)
	assert.Equal(t, 4, idx.Len())

	cases := []struct {
		at   geo.Position
		want string
	}{
		{geo.Position{Lat: 0.001, Lon: -0.002}, "A"},
		{geo.Position{Lat: -0.001, Lon: 0.012}, "B"},
		{geo.Position{Lat: 0, Lon: 0.0199}, "C"},
		{geo.Position{Lat: 5, Lon: 5}, "D"},
	}
	for _, tc := range cases {
		got, ok := idx.Nearest(tc.at)
		require.True(t, ok)
		assert.Equal(t, tc.want, got, "nearest to %+v", tc.at)
	}

	p, ok := idx.Position("C")
	assert.True(t, ok)
	assert.Equal(t, line["C"], p)

	empty, err := geo.NewIndex(map[string]geo.Position{})
	require.NoError(t, err)
	_, ok = empty.Nearest(geo.Position{})
	assert.False(t, ok)

	_, err = geo.NewIndex(line, geo.WithMetersPerCostUnit(0))
	assert.ErrorIs(t, err, geo.ErrInvalidScale)
}

func TestIndex_NearestTies(t *testing.T) {
	// a dozen nodes stacked on one spot, more than the planar candidate pool
	stacked := map[string]geo.Position{"far": {Lat: 1, Lon: 1}}
	for _, n := range []string{"q", "k", "x", "b", "m", "z", "d", "t", "h", "w", "r", "n"} {
		stacked[n] = geo.Position{Lat: 0.5, Lon: 0.5}
	}
	// two spots equidistant from the origin
	mirrored := map[string]geo.Position{
		"east": {Lat: 0, Lon: 0.01},
		"west": {Lat: 0, Lon: -0.01},
	}

	for i := 0; i < 20; i++ {
		idx, err := geo.NewIndex(stacked)
		require.NoError(t, err)
		assert.Equal(t, 13, idx.Len())
		got, ok := idx.Nearest(geo.Position{Lat: 0.5, Lon: 0.5})
		require.True(t, ok)
		require.Equal(t, "b", got, "build %d", i)

		p, ok := idx.Position("x")
		require.True(t, ok)
		require.Equal(t, stacked["x"], p)

		idx, err = geo.NewIndex(mirrored)
		require.NoError(t, err)
		got, ok = idx.Nearest(geo.Position{})
		require.True(t, ok)
		require.Equal(t, "east", got, "build %d", i)
	}
}

func TestRoute(t *testing.T) {
	idx, err := geo.NewIndex(line)
	require.NoError(t, err)

	res, err := geo.Route(context.Background(), roadGraph(t), idx,
		geo.Position{Lat: 0.0001, Lon: -0.0001}, geo.Position{Lat: 0.0001, Lon: 0.0301})
	require.NoError(t, err)

	assert.Equal(t, "A", res.From)
	assert.Equal(t, "D", res.To)
	assert.Equal(t, astar.StatusFound, res.Status)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Path)
	assert.InDelta(t, 1.05*geo.DistanceMeters(line["A"], line["D"]), res.TotalCost, 1e-6)

	want, err := geo.EncodePath(res.Path, line)
	require.NoError(t, err)
	assert.Equal(t, want, res.Polyline)
}

func TestRoute_Errors(t *testing.T) {
	empty, err := geo.NewIndex(map[string]geo.Position{})
	require.NoError(t, err)
	_, err = geo.Route(context.Background(), roadGraph(t), empty, geo.Position{}, geo.Position{})
	assert.ErrorIs(t, err, geo.ErrEmptyIndex)

	// indexed node missing from the graph
	withExtra := map[string]geo.Position{"A": line["A"], "Z": {Lat: 1, Lon: 1}}
	idx, err := geo.NewIndex(withExtra)
	require.NoError(t, err)
	_, err = geo.Route(context.Background(), roadGraph(t), idx, line["A"], geo.Position{Lat: 1, Lon: 1})
	assert.ErrorIs(t, err, astar.ErrUnknownNode)
}
