// File: methods_nodes.go
// Role: Node lifecycle & queries.
// Determinism:
//   - Nodes() returns nodes in registration order.
// Concurrency:
//   - Mutations under g.mu write lock, queries under g.mu read lock.

package core

// AddNode registers id as a node (idempotent).
//
// Implementation:
//   - Stage 1: Under the write lock, return early if id is already known.
//   - Stage 2: Append id to the node list and allocate empty adjacency for
//     both directions.
//
// Returns:
//   - error: always nil today; kept in the signature so stricter node
//     policies can reject ids without an API break.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[N, C]) AddNode(id N) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.index[id]; ok {
		return nil
	}
	g.addNodeLocked(id)

	return nil
}

// addNodeLocked appends id without checking membership. Caller holds g.mu.
func (g *Graph[N, C]) addNodeLocked(id N) int {
	i := len(g.nodes)
	g.index[id] = i
	g.nodes = append(g.nodes, id)
	g.out = append(g.out, adjacency[N, C]{pos: make(map[N]int)})
	g.in = append(g.in, adjacency[N, C]{pos: make(map[N]int)})

	return i
}

// HasNode reports whether id has been registered.
// Complexity: O(1).
func (g *Graph[N, C]) HasNode(id N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// Nodes returns all registered nodes in registration order.
// The returned slice is a copy and may be modified by the caller.
// Complexity: O(V).
func (g *Graph[N, C]) Nodes() []N {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]N, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeCount returns the number of registered nodes.
// Complexity: O(1).
func (g *Graph[N, C]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}
