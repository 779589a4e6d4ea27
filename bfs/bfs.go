// Package bfs provides breadth-first search over a weighted graph,
// returning hop-count distances, parent links, and visit order.
//
// BFS explores vertices in increasing hop distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering. Edge costs
// are ignored.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem[N comparable] struct {
	id    N
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N comparable, C core.Cost] struct {
	graph   Graph[N, C]
	opts    BFSOptions[N]
	ctx     context.Context
	queue   []queueItem[N]
	visited map[N]bool
	res     *BFSResult[N]
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// ctx.Err() on cancellation, or any user-supplied hook error.
func BFS[N comparable, C core.Cost](g Graph[N, C], start N, opts ...Option[N]) (*BFSResult[N], error) {
	if isNil(g) {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	w := &walker[N, C]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[N]bool),
		res: &BFSResult[N]{
			Depth:  make(map[N]int),
			Parent: make(map[N]N),
		},
	}
	w.enqueue(start, 0, start, false)

	return w.res, w.loop()
}

// Reachable reports whether to can be reached from from by following edges.
// Unknown endpoints are unreachable.
func Reachable[N comparable, C core.Cost](g Graph[N, C], from, to N) bool {
	if isNil(g) || !g.HasNode(to) {
		return false
	}
	_, err := BFS(g, from, WithOnVisit(func(id N, _ int) error {
		if id == to {
			return errFound
		}
		return nil
	}))

	return errors.Is(err, errFound)
}

// errFound stops Reachable's traversal early.
var errFound = errors.New("bfs: target found")

// enqueue marks id visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker[N, C]) enqueue(id N, d int, parent N, hasParent bool) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if hasParent {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem[N]{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[N, C]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[N, C]) visit(item queueItem[N]) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen
// neighbor in edge insertion order.
func (w *walker[N, C]) enqueueNeighbors(item queueItem[N]) error {
	edges, err := w.graph.OutgoingEdges(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %v: %v", ErrNeighbors, item.id, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, e := range edges {
		if w.visited[e.To] || !w.opts.FilterNeighbor(item.id, e.To) {
			continue
		}
		w.enqueue(e.To, nextDepth, item.id, true)
	}

	return nil
}

// isNil detects an untyped nil and a typed nil *core.Graph inside g.
func isNil(g any) bool {
	if g == nil {
		return true
	}
	nc, ok := g.(interface{ IsNil() bool })

	return ok && nc.IsNil()
}
