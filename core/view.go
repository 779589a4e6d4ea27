// File: view.go
// Role: Non-mutating graph views (deep copies with altered orientation).
// Determinism:
//   - Copies preserve node registration order and edge insertion order.
// Concurrency:
//   - Read lock on the source; the result is a fresh, unshared instance.

package core

// Clone returns a deep copy of the graph: configuration, nodes and edges.
// Later mutations of either graph do not affect the other.
//
// Typical use: snapshot a graph before handing it to long-running searches
// while the original keeps being edited.
//
// Complexity: O(V+E).
func (g *Graph[N, C]) Clone() *Graph[N, C] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph[N, C]{
		undirected: g.undirected,
		index:      make(map[N]int, len(g.nodes)),
		nodes:      make([]N, len(g.nodes)),
		out:        make([]adjacency[N, C], len(g.nodes)),
		in:         make([]adjacency[N, C], len(g.nodes)),
		edgeCount:  g.edgeCount,
	}
	copy(c.nodes, g.nodes)
	for id, i := range g.index {
		c.index[id] = i
	}
	for i := range g.nodes {
		c.out[i] = g.out[i].clone()
		c.in[i] = g.in[i].clone()
	}

	return c
}

func (a adjacency[N, C]) clone() adjacency[N, C] {
	pos := make(map[N]int, len(a.pos))
	for k, v := range a.pos {
		pos[k] = v
	}

	return adjacency[N, C]{pos: pos, edges: cloneEdges(a.edges)}
}

// Reverse returns the transpose of g: every edge u→v becomes v→u with the
// same cost. Undirected graphs are their own transpose, so Reverse on an
// undirected graph is equivalent to Clone.
//
// Backward searches (e.g. "which sources can reach t cheaply") run forward
// over the reversed graph.
//
// Complexity: O(V+E).
func (g *Graph[N, C]) Reverse() *Graph[N, C] {
	if g.Undirected() {
		return g.Clone()
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	r := NewGraph[N, C]()
	for _, id := range g.nodes {
		r.addNodeLocked(id)
	}
	for i := range g.nodes {
		for _, e := range g.out[i].edges {
			r.setLocked(r.index[e.To], r.index[e.From], e.To, e.From, e.Cost)
			r.edgeCount++
		}
	}

	return r
}
