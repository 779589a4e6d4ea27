// Package core provides a thread-safe, generic in-memory weighted graph
// with a minimal, composable API surface.
//
// The Graph G = (V,E) is parameterised by two types:
//
//   - N – the node identity. Any comparable type (string, int, a struct of
//     coordinates, …). The package never inspects its structure.
//   - C – the edge cost. Any integer or floating-point kind (see Cost).
//
// Behavior:
//
//   - Directed by default; WithUndirected() mirrors every edge u→v as v→u.
//   - Referential integrity: both endpoints must be registered with AddNode
//     before AddEdge, otherwise ErrUnknownNode. Nothing is inserted silently.
//   - One edge per ordered pair; adding an existing pair overwrites its cost.
//   - Self-loops, zero and negative costs are accepted by the representation.
//     Whether an algorithm tolerates them is the algorithm's contract.
//   - A single sync.RWMutex guards the node catalog and both adjacency
//     directions, so concurrent readers never block each other.
//
// Determinism:
//
//	Nodes() returns nodes in registration order. OutgoingEdges(), IncomingEdges()
//	and Edges() return edges in insertion order. Overwriting a cost keeps the
//	edge's original position. Nothing depends on Go map iteration order, which
//	is what lets search algorithms built on top promise reproducible results.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id N) error                       // O(1), idempotent
//	HasNode(id N) bool                        // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to N, cost C) error         // O(1) amortized
//	RemoveEdge(from, to N) error              // O(deg)
//	HasEdge(from, to N) bool                  // O(1)
//	Cost(from, to N) (C, bool)                // O(1)
//
//	// Query
//	OutgoingEdges(id N) ([]Edge[N, C], error) // O(deg), copy
//	IncomingEdges(id N) ([]Edge[N, C], error) // O(deg), copy
//	Nodes() []N                               // O(V), copy
//	Edges() []Edge[N, C]                      // O(V+E), copy
//	NodeCount() int / EdgeCount() int         // O(1)
//
//	// Views
//	Clone() *Graph[N, C]                      // O(V+E) deep copy
//	Reverse() *Graph[N, C]                    // O(V+E) transposed copy
//
// Errors:
//
//	ErrUnknownNode  – node not registered (edge endpoint or query target)
//	ErrEdgeNotFound – RemoveEdge on a pair without an edge
//
// Concurrency:
//
//	All methods are safe for concurrent use. Algorithms that read the graph
//	over many calls (e.g. a shortest-path search) see a consistent topology
//	only if the caller does not mutate the graph while they run.
package core
