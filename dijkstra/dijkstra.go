// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative costs and fail fast.
//   - We treat any edge with cost ≥ InfEdgeThreshold as an impassable “wall”.
//   - We never finalize a node whose distance exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Equal distances pop in push order, so results are deterministic.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// Dijkstra computes shortest distances from source to all reachable nodes of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source (ErrVertexNotFound).
//  3. No edge in g can have a negative or NaN cost (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
func Dijkstra[N comparable, C core.Cost](g *core.Graph[N, C], source N, opts ...Option[C]) (*Result[N, C], error) {
	cfg := DefaultOptions[C]()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}

	var zero C
	for _, e := range g.Edges() {
		if e.Cost < zero || e.Cost != e.Cost {
			return nil, fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, e.From, e.To, e.Cost)
		}
	}

	V := g.NodeCount()
	r := &runner[N, C]{
		g:       g,
		options: cfg,
		res: &Result[N, C]{
			Source: source,
			Dist:   make(map[N]C, V),
			Prev:   make(map[N]N, V),
		},
		visited: make(map[N]bool, V),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[N comparable, C core.Cost] struct {
	g       *core.Graph[N, C]
	options Options[C]
	res     *Result[N, C]
	visited map[N]bool // finalized nodes
	pq      nodePQ[N, C]
	seq     uint64
}

// init seeds the heap with source at distance zero.
func (r *runner[N, C]) init() {
	var zero C
	r.res.Dist[r.res.Source] = zero
	heap.Init(&r.pq)
	r.push(r.res.Source, zero)
}

func (r *runner[N, C]) push(id N, d C) {
	heap.Push(&r.pq, nodeItem[N, C]{id: id, dist: d, seq: r.seq})
	r.seq++
}

// process repeatedly finalizes the closest unvisited node and relaxes its edges.
func (r *runner[N, C]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem[N, C])
		if r.visited[item.id] {
			continue
		}
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u and improves neighbour distances.
func (r *runner[N, C]) relax(u N) error {
	edges, err := r.g.OutgoingEdges(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %v: %w", u, err)
	}

	du := r.res.Dist[u]
	for _, e := range edges {
		if r.options.HasInfEdgeThreshold && e.Cost >= r.options.InfEdgeThreshold {
			continue
		}
		nd := du + e.Cost
		if r.options.HasMaxDistance && nd > r.options.MaxDistance {
			continue
		}
		if cur, seen := r.res.Dist[e.To]; seen && nd >= cur {
			continue
		}
		r.res.Dist[e.To] = nd
		r.res.Prev[e.To] = u
		r.push(e.To, nd)
	}

	return nil
}

// nodeItem is one heap entry; seq breaks distance ties in push order.
type nodeItem[N comparable, C core.Cost] struct {
	id   N
	dist C
	seq  uint64
}

// nodePQ is a min-heap of nodeItem ordered by (dist, seq).
type nodePQ[N comparable, C core.Cost] []nodeItem[N, C]

func (pq nodePQ[N, C]) Len() int { return len(pq) }

func (pq nodePQ[N, C]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ[N, C]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[N, C]) Push(x interface{}) { *pq = append(*pq, x.(nodeItem[N, C])) }

func (pq *nodePQ[N, C]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
