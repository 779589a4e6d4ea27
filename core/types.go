// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Cost constraint, Edge, Graph, GraphOption, sentinel errors and the
//       NewGraph constructor.
// Policy:
//   - Sentinel errors only; callers branch with errors.Is.
//   - Construction is infallible; validation happens on mutation.

package core

import (
	"errors"
	"sync"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for core graph operations.
var (
	// ErrUnknownNode indicates an operation referenced a node that was never registered.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Cost is the set of numeric kinds usable as edge costs. All of them are
// totally ordered by <, except for floating-point NaN which algorithms must
// reject on sight.
type Cost interface {
	constraints.Integer | constraints.Float
}

// Edge is a directed, weighted connection From→To.
//
// In an undirected graph every stored edge has a mirror To→From with the same
// cost; OutgoingEdges reports each direction from the perspective of its
// own tail node.
type Edge[N comparable, C Cost] struct {
	From N
	To   N
	Cost C
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(o *graphOptions)

type graphOptions struct {
	undirected bool
}

// WithUndirected makes AddEdge(u, v, c) also store v→u with the same cost,
// and RemoveEdge drop both directions.
func WithUndirected() GraphOption {
	return func(o *graphOptions) { o.undirected = true }
}

// adjacency keeps one direction of a node's edges in insertion order.
// pos maps the opposite endpoint to its index in edges.
type adjacency[N comparable, C Cost] struct {
	pos   map[N]int
	edges []Edge[N, C]
}

// Graph is the core in-memory weighted graph.
//
// index maps a node to its slot in nodes/out/in; slots are never reused,
// which keeps Nodes() in registration order.
type Graph[N comparable, C Cost] struct {
	mu sync.RWMutex // guards everything below

	undirected bool

	index map[N]int
	nodes []N
	out   []adjacency[N, C] // out[i] holds edges leaving nodes[i]
	in    []adjacency[N, C] // in[i] holds edges entering nodes[i]

	edgeCount int // logical edges; an undirected pair counts once
}

// NewGraph creates an empty Graph. By default the graph is directed.
// Complexity: O(1).
func NewGraph[N comparable, C Cost](opts ...GraphOption) *Graph[N, C] {
	var o graphOptions
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph[N, C]{
		undirected: o.undirected,
		index:      make(map[N]int),
	}
}

// IsNil reports whether the receiver is a nil *Graph. It lets consumers that
// accept the graph through an interface detect a typed nil without reflection.
func (g *Graph[N, C]) IsNil() bool { return g == nil }

// Undirected reports whether the graph mirrors edges.
func (g *Graph[N, C]) Undirected() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.undirected
}
