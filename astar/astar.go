// SPDX-License-Identifier: MIT
//
// File: astar.go
// Role: Search construction and the A* main loop.
// Determinism: frontier order is total (f, g, seq); edges are relaxed in the
//              order the graph reports them.
// Concurrency: a *Search is immutable after NewSearch and may be shared;
//              every FindPath call allocates its own runner and arena.

package astar

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// Search binds a graph, a heuristic and options so that several searches can
// be run over the same configuration.
type Search[N comparable, C core.Cost] struct {
	graph     Graph[N, C]
	heuristic Heuristic[N, C]
	opts      Options[N, C]
}

// nilChecker is implemented by graph types that can report a typed nil
// (core.Graph does).
type nilChecker interface {
	IsNil() bool
}

// NewSearch validates the collaborators and options and returns a reusable Search.
//
// Errors: ErrNilGraph, ErrNilHeuristic, ErrOptionViolation.
func NewSearch[N comparable, C core.Cost](g Graph[N, C], h Heuristic[N, C], opts ...Option[N, C]) (*Search[N, C], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if nc, ok := g.(nilChecker); ok && nc.IsNil() {
		return nil, ErrNilGraph
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	if hf, ok := h.(HeuristicFunc[N, C]); ok && hf == nil {
		return nil, ErrNilHeuristic
	}

	o := DefaultOptions[N, C]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Search[N, C]{graph: g, heuristic: h, opts: o}, nil
}

// FindPath runs A* from source to destination.
//
// Implementation:
//   - Stage 1: Reject unknown endpoints before allocating any state.
//   - Stage 2: Seed the arena with source (g = 0, h = h(source)).
//   - Stage 3: Loop: check ctx, pop the minimum (f, g, seq) entry, skip stale
//     entries, stop on the destination, otherwise close and relax.
//   - Stage 4: Rebuild the path by walking predecessors back to source.
//
// Returns a Result whose Status is StatusFound, StatusNoPath or
// StatusCancelled, or an error (ErrUnknownNode, ErrInvalidHeuristic,
// ErrInvalidCost, ErrExpansionLimit, or a wrapped graph error).
func (s *Search[N, C]) FindPath(ctx context.Context, source, destination N) (Result[N, C], error) {
	if !s.graph.HasNode(source) {
		return Result[N, C]{}, fmt.Errorf("%w: source %v", ErrUnknownNode, source)
	}
	if !s.graph.HasNode(destination) {
		return Result[N, C]{}, fmt.Errorf("%w: destination %v", ErrUnknownNode, destination)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	r := &runner[N, C]{
		search: s,
		ctx:    ctx,
		src:    source,
		dst:    destination,
		nodes:  make(arena[N, C]),
	}

	return r.run()
}

// FindPath is a one-shot convenience for NewSearch(g, h, opts...).FindPath(ctx, source, destination).
func FindPath[N comparable, C core.Cost](
	ctx context.Context,
	g Graph[N, C],
	h Heuristic[N, C],
	source, destination N,
	opts ...Option[N, C],
) (Result[N, C], error) {
	s, err := NewSearch(g, h, opts...)
	if err != nil {
		return Result[N, C]{}, err
	}

	return s.FindPath(ctx, source, destination)
}

// runner holds the mutable state of one FindPath call.
type runner[N comparable, C core.Cost] struct {
	search   *Search[N, C]
	ctx      context.Context
	src, dst N
	nodes    arena[N, C]
	open     frontier[N, C]
	expanded int
	reopened int
}

func (r *runner[N, C]) run() (Result[N, C], error) {
	var zero C
	h, err := r.estimate(r.src)
	if err != nil {
		return Result[N, C]{}, err
	}
	start := &nodeState[N, C]{h: h}
	r.nodes[r.src] = start
	if err = r.update(start, r.src, zero, r.src, false); err != nil {
		return Result[N, C]{}, err
	}

	for {
		// cancellation check (once per loop)
		select {
		case <-r.ctx.Done():
			return r.result(StatusCancelled), nil
		default:
		}

		if r.open.len() == 0 {
			return r.result(StatusNoPath), nil
		}

		item := r.open.pop()
		st := r.nodes[item.node]
		if st.status != NodeOpen || st.version != item.version {
			continue // stale entry
		}

		if item.node == r.dst {
			res := r.result(StatusFound)
			res.Path = r.nodes.path(r.src, r.dst)
			res.TotalCost = st.g

			return res, nil
		}

		if err = r.expand(item.node, st); err != nil {
			return Result[N, C]{}, err
		}
	}
}

// expand closes id and relaxes all of its outgoing edges.
func (r *runner[N, C]) expand(id N, st *nodeState[N, C]) error {
	opts := &r.search.opts
	if opts.MaxExpansions > 0 && r.expanded >= opts.MaxExpansions {
		return fmt.Errorf("%w: %d expansions", ErrExpansionLimit, r.expanded)
	}
	st.status = NodeClosed
	r.expanded++
	opts.OnExpand(id, st.g)

	edges, err := r.search.graph.OutgoingEdges(id)
	if err != nil {
		return fmt.Errorf("astar: outgoing edges of %v: %w", id, err)
	}
	for _, e := range edges {
		if !validCost(e.Cost) {
			return fmt.Errorf("%w: %v→%v is %v", ErrInvalidCost, e.From, e.To, e.Cost)
		}
		g, ok := add(st.g, e.Cost)
		if !ok {
			return fmt.Errorf("%w: g(%v) + %v→%v overflows", ErrInvalidCost, id, e.From, e.To)
		}
		if !r.nodes.improves(e.To, g) {
			continue
		}

		next, seen := r.nodes[e.To]
		if !seen {
			h, err := r.estimate(e.To)
			if err != nil {
				return err
			}
			next = &nodeState[N, C]{h: h}
			r.nodes[e.To] = next
		} else if next.status == NodeClosed {
			r.reopened++
			opts.OnReopen(e.To, g)
		}
		if err = r.update(next, e.To, g, id, true); err != nil {
			return err
		}
		opts.OnRelax(id, e.To, g)
	}

	return nil
}

// update records a new best cost for id and (re)inserts it into the frontier.
// An f that does not fit in C fails with ErrInvalidHeuristic.
func (r *runner[N, C]) update(st *nodeState[N, C], id N, g C, pred N, hasPred bool) error {
	f, ok := add(g, st.h)
	if !ok {
		return fmt.Errorf("%w: g(%v) + h(%v, %v) overflows", ErrInvalidHeuristic, id, id, r.dst)
	}
	st.g = g
	st.f = f
	st.pred = pred
	st.hasPred = hasPred
	st.status = NodeOpen
	st.version++
	r.open.push(id, st.f, st.g, st.version)

	return nil
}

// estimate queries the heuristic once and validates the answer.
func (r *runner[N, C]) estimate(id N) (C, error) {
	h := r.search.heuristic.Estimate(id, r.dst)
	if !validEstimate(h) {
		return h, fmt.Errorf("%w: h(%v, %v) = %v", ErrInvalidHeuristic, id, r.dst, h)
	}

	return h, nil
}

func (r *runner[N, C]) result(status Status) Result[N, C] {
	return Result[N, C]{Status: status, Expanded: r.expanded, Reopened: r.reopened}
}
