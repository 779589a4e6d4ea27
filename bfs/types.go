package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// Errors returned by Run and PathTo.
var (
	// ErrStartVertexNotFound means the start node is not in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil means Run was handed a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNeighbors wraps a failure from Graph.OutgoingEdges.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")

	// ErrOptionViolation reports an option value Run cannot honour.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath means PathTo was asked for a node the walk never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Graph is the read-only view BFS walks. *core.Graph satisfies it.
type Graph[N comparable, C core.Cost] interface {
	HasNode(id N) bool
	OutgoingEdges(id N) ([]core.Edge[N, C], error)
}

// Option adjusts a walk. A bad value is remembered and Run fails with
// ErrOptionViolation before touching the graph.
type Option[N comparable] func(*BFSOptions[N])

// BFSOptions is the resolved configuration of one walk.
type BFSOptions[N comparable] struct {
	// Ctx is checked once per dequeued node.
	Ctx context.Context

	// OnEnqueue sees each node the first time it is discovered, with its hop count.
	OnEnqueue func(id N, depth int)

	// OnVisit sees each node as it leaves the queue. A non-nil error ends the walk.
	OnVisit func(id N, depth int) error

	// MaxDepth bounds the hop count of visited nodes. Zero means unbounded.
	MaxDepth int

	// FilterNeighbor drops the edge curr→neighbor when it returns false.
	FilterNeighbor func(curr, neighbor N) bool

	// first rejected option
	err error
}

// DefaultOptions walks every reachable node under context.Background with no-op hooks.
func DefaultOptions[N comparable]() BFSOptions[N] {
	return BFSOptions[N]{
		Ctx:            context.Background(),
		OnEnqueue:      func(N, int) {},
		OnVisit:        func(N, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ N) bool { return true },
	}
}

// WithContext attaches ctx to the walk. A nil ctx is ignored.
func WithContext[N comparable](ctx context.Context) Option[N] {
	return func(o *BFSOptions[N]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue sets the discovery hook.
func WithOnEnqueue[N comparable](fn func(id N, depth int)) Option[N] {
	return func(o *BFSOptions[N]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit sets the visit hook. Its error is returned from Run unchanged.
func WithOnVisit[N comparable](fn func(id N, depth int) error) Option[N] {
	return func(o *BFSOptions[N]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the walk d hops from the start. Zero lifts the limit
// and a negative d is rejected.
func WithMaxDepth[N comparable](d int) Option[N] {
	return func(o *BFSOptions[N]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor hides edges for which fn returns false.
func WithFilterNeighbor[N comparable](fn func(curr, neighbor N) bool) Option[N] {
	return func(o *BFSOptions[N]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult is the spanning tree left by a walk.
type BFSResult[N comparable] struct {
	Order  []N       // visit order
	Depth  map[N]int // hops from the start
	Parent map[N]N   // tree predecessor; the start has none
}

// PathTo walks Parent back from dest and returns the fewest-hop route from the start.
func (r *BFSResult[N]) PathTo(dest N) ([]N, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}
	path := []N{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
