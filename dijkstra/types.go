// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source node to all
// other reachable nodes in a graph with non-negative edge costs.
//
// Complexity:
//
//	– Time:  O((V + E) log E)
//	   • Each node is finalized at most once.
//	   • Each improving relaxation pushes one heap entry (lazy decrease-key).
//	– Space: O(V + E)
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; nodes beyond it stay unreached.
//	– InfEdgeThreshold: edges with cost >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source node does not exist in the graph.
//	– ErrNegativeWeight  if a negative (or NaN) edge cost is detected in the graph.
//	– ErrNoPath          from Result.PathTo when the target was not reached.
//	– ErrBadMaxDistance  if MaxDistance < 0 (option constructor panics).
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 (option constructor panics).
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/pathfind/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source node does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative or NaN edge cost was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates that PathTo was asked for a node the search never reached.
	ErrNoPath = errors.New("dijkstra: no path to target")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or a negative value,
	// which would treat all edges (including zero-cost edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – nodes whose shortest distance would exceed this value
//
//	are not explored. Ignored unless HasMaxDistance.
//
// InfEdgeThreshold – edges with cost ≥ this threshold are impassable.
//
//	Ignored unless HasInfEdgeThreshold.
type Options[C core.Cost] struct {
	MaxDistance         C
	HasMaxDistance      bool
	InfEdgeThreshold    C
	HasInfEdgeThreshold bool
}

// Option represents a functional option for configuring Dijkstra.
type Option[C core.Cost] func(*Options[C])

// WithMaxDistance sets a maximum distance threshold.
// Panics on a negative value (ErrBadMaxDistance).
func WithMaxDistance[C core.Cost](max C) Option[C] {
	var zero C
	if max < zero || max != max {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options[C]) {
		o.MaxDistance = max
		o.HasMaxDistance = true
	}
}

// WithInfEdgeThreshold defines a cost threshold at and above which edges
// are non-traversable. Panics on zero or a negative value (ErrBadInfThreshold).
func WithInfEdgeThreshold[C core.Cost](threshold C) Option[C] {
	var zero C
	if threshold <= zero || threshold != threshold {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options[C]) {
		o.InfEdgeThreshold = threshold
		o.HasInfEdgeThreshold = true
	}
}

// DefaultOptions returns Options with no distance cap and no impassable edges.
func DefaultOptions[C core.Cost]() Options[C] {
	return Options[C]{}
}

// Result holds the shortest-path tree rooted at Source.
//
//   - Dist[v] is the minimum distance from Source; unreached nodes are absent.
//   - Prev[v] is v's predecessor on a shortest path; Source has no entry.
type Result[N comparable, C core.Cost] struct {
	Source N
	Dist   map[N]C
	Prev   map[N]N
}

// Reached reports whether v received a finite distance.
func (r *Result[N, C]) Reached(v N) bool {
	_, ok := r.Dist[v]
	return ok
}

// PathTo reconstructs the shortest path Source → v (inclusive).
// Returns ErrNoPath if v was not reached.
func (r *Result[N, C]) PathTo(v N) ([]N, error) {
	if !r.Reached(v) {
		return nil, ErrNoPath
	}
	path := []N{v}
	for cur := v; cur != r.Source; {
		p, ok := r.Prev[cur]
		if !ok || len(path) > len(r.Dist) {
			return nil, ErrNoPath
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
