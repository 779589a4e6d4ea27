// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Cost,
//       OutgoingEdges/IncomingEdges/Edges/EdgeCount.
// Determinism:
//   - Every enumeration follows insertion order; an overwritten cost keeps
//     the edge in place.
// Concurrency:
//   - Mutations under g.mu write lock; queries under g.mu read lock.

package core

import "fmt"

// AddEdge stores a directed edge from→to with the given cost. In an
// undirected graph the mirror to→from is stored as well.
//
// Implementation:
//   - Stage 1: Resolve both endpoints; an unregistered endpoint fails with
//     ErrUnknownNode and leaves the graph untouched.
//   - Stage 2: If from→to already exists, overwrite its cost in place
//     (both adjacency directions, and the mirror when undirected).
//   - Stage 3: Otherwise append to out[from] and in[to] (plus mirror).
//
// Behavior highlights:
//   - Self-loops are accepted; an undirected self-loop is stored once.
//   - Cost values are not validated here (negative, zero and NaN are stored
//     as given); algorithms validate what they consume.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[N, C]) AddEdge(from, to N, cost C) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	fi, ok := g.index[from]
	if !ok {
		return fmt.Errorf("%w: edge tail %v", ErrUnknownNode, from)
	}
	ti, ok := g.index[to]
	if !ok {
		return fmt.Errorf("%w: edge head %v", ErrUnknownNode, to)
	}

	if g.setLocked(fi, ti, from, to, cost) {
		g.edgeCount++
	}
	if g.undirected && fi != ti {
		g.setLocked(ti, fi, to, from, cost)
	}

	return nil
}

// setLocked inserts or overwrites the arc from→to and reports whether it was new.
func (g *Graph[N, C]) setLocked(fi, ti int, from, to N, cost C) bool {
	out, in := &g.out[fi], &g.in[ti]
	if k, ok := out.pos[to]; ok {
		out.edges[k].Cost = cost
		in.edges[in.pos[from]].Cost = cost
		return false
	}

	e := Edge[N, C]{From: from, To: to, Cost: cost}
	out.pos[to] = len(out.edges)
	out.edges = append(out.edges, e)
	in.pos[from] = len(in.edges)
	in.edges = append(in.edges, e)

	return true
}

// RemoveEdge deletes the edge from→to (and its mirror in undirected graphs).
//
// Errors:
//   - ErrUnknownNode: either endpoint is not registered.
//   - ErrEdgeNotFound: the endpoints exist but are not connected.
//
// Complexity: O(deg(from) + deg(to)) to keep the remaining edges in order.
func (g *Graph[N, C]) RemoveEdge(from, to N) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	fi, ok := g.index[from]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownNode, from)
	}
	ti, ok := g.index[to]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownNode, to)
	}
	if _, ok = g.out[fi].pos[to]; !ok {
		return fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, from, to)
	}

	g.out[fi].remove(to, head[N, C])
	g.in[ti].remove(from, tail[N, C])
	if g.undirected && fi != ti {
		g.out[ti].remove(from, head[N, C])
		g.in[fi].remove(to, tail[N, C])
	}
	g.edgeCount--

	return nil
}

// remove drops the edge keyed by k, preserving order. key extracts the map
// key of an edge: the head for outgoing lists, the tail for incoming lists.
func (a *adjacency[N, C]) remove(k N, key func(Edge[N, C]) N) {
	i, ok := a.pos[k]
	if !ok {
		return
	}
	delete(a.pos, k)
	copy(a.edges[i:], a.edges[i+1:])
	a.edges = a.edges[:len(a.edges)-1]
	for ; i < len(a.edges); i++ {
		a.pos[key(a.edges[i])] = i
	}
}

func head[N comparable, C Cost](e Edge[N, C]) N { return e.To }

func tail[N comparable, C Cost](e Edge[N, C]) N { return e.From }

// HasEdge reports whether the edge from→to exists. Unknown endpoints ⇒ false.
// Complexity: O(1).
func (g *Graph[N, C]) HasEdge(from, to N) bool {
	_, ok := g.Cost(from, to)

	return ok
}

// Cost returns the cost of from→to and whether that edge exists.
// Complexity: O(1).
func (g *Graph[N, C]) Cost(from, to N) (C, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var zero C
	fi, ok := g.index[from]
	if !ok {
		return zero, false
	}
	k, ok := g.out[fi].pos[to]
	if !ok {
		return zero, false
	}

	return g.out[fi].edges[k].Cost, true
}

// OutgoingEdges returns the edges leaving id in insertion order.
//
// Errors:
//   - ErrUnknownNode: id is not registered.
//
// Complexity: O(deg(id)); the returned slice is a copy.
func (g *Graph[N, C]) OutgoingEdges(id N) ([]Edge[N, C], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownNode, id)
	}

	return cloneEdges(g.out[i].edges), nil
}

// IncomingEdges returns the edges entering id in insertion order.
// Errors and complexity match OutgoingEdges.
func (g *Graph[N, C]) IncomingEdges(id N) ([]Edge[N, C], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownNode, id)
	}

	return cloneEdges(g.in[i].edges), nil
}

// Edges returns every logical edge: nodes in registration order, and for each
// node its outgoing edges in insertion order. An undirected edge is reported
// once, oriented from the endpoint registered first.
// Complexity: O(V+E).
func (g *Graph[N, C]) Edges() []Edge[N, C] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[N, C], 0, g.edgeCount)
	for i := range g.nodes {
		for _, e := range g.out[i].edges {
			if g.undirected && g.index[e.To] < i {
				continue
			}
			out = append(out, e)
		}
	}

	return out
}

// EdgeCount returns the number of logical edges (an undirected pair counts once).
// Complexity: O(1).
func (g *Graph[N, C]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

func cloneEdges[N comparable, C Cost](edges []Edge[N, C]) []Edge[N, C] {
	out := make([]Edge[N, C], len(edges))
	copy(out, edges)

	return out
}
