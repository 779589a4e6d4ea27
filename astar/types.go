// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: collaborator contracts (Graph, Heuristic), Status/NodeStatus, Result,
//       functional options and sentinel errors of the A* search.
// Policy:
//   - Option constructors never panic; invalid values are recorded and
//     surface as ErrOptionViolation from NewSearch/FindPath.

package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// Sentinel errors returned by the A* search.
var (
	// ErrNilGraph indicates that a nil graph was supplied.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilHeuristic indicates that a nil heuristic was supplied.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrUnknownNode indicates that the source or destination is not in the graph.
	// It wraps core.ErrUnknownNode so either sentinel matches with errors.Is.
	ErrUnknownNode = fmt.Errorf("astar: %w", core.ErrUnknownNode)

	// ErrInvalidHeuristic indicates that the heuristic returned a negative,
	// NaN or infinite estimate, or that g + h overflows an integer C.
	ErrInvalidHeuristic = errors.New("astar: invalid heuristic estimate")

	// ErrInvalidCost indicates an edge cost that is NaN or ±Inf, or an
	// integer path cost that no longer fits in C.
	ErrInvalidCost = errors.New("astar: invalid edge cost")

	// ErrExpansionLimit indicates that the WithMaxExpansions budget ran out
	// before the search reached a terminal state.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrOptionViolation indicates that an option received a meaningless value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Graph is the read-only view of a weighted graph the search needs.
// *core.Graph satisfies it.
type Graph[N comparable, C core.Cost] interface {
	// HasNode reports whether id is registered.
	HasNode(id N) bool

	// OutgoingEdges lists id's outgoing edges. Unregistered ids fail with an
	// error wrapping core.ErrUnknownNode. The order must be deterministic for
	// searches to be reproducible.
	OutgoingEdges(id N) ([]core.Edge[N, C], error)
}

// Heuristic estimates the remaining cost from node to destination.
// Estimates must be finite and non-negative; admissibility is not checked.
type Heuristic[N comparable, C core.Cost] interface {
	Estimate(node, destination N) C
}

// HeuristicFunc adapts an ordinary function to the Heuristic interface.
type HeuristicFunc[N comparable, C core.Cost] func(node, destination N) C

// Estimate calls f(node, destination).
func (f HeuristicFunc[N, C]) Estimate(node, destination N) C {
	return f(node, destination)
}

// Status is the terminal state of a search that did not fail.
type Status int

const (
	// StatusNoPath means the frontier was exhausted without reaching the destination.
	StatusNoPath Status = iota
	// StatusFound means a path was found; Result.Path and Result.TotalCost are set.
	StatusFound
	// StatusCancelled means the context was done before the search finished.
	StatusCancelled
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusNoPath:
		return "no-path"
	case StatusFound:
		return "found"
	case StatusCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// NodeStatus classifies a node during one search.
type NodeStatus uint8

const (
	// NodeUnvisited nodes have not been reached; their g is +∞.
	NodeUnvisited NodeStatus = iota
	// NodeOpen nodes sit on the frontier waiting to be expanded.
	NodeOpen
	// NodeClosed nodes have been expanded; their g is final unless a strictly
	// cheaper route reopens them.
	NodeClosed
)

// String returns a human-readable node status name.
func (s NodeStatus) String() string {
	switch s {
	case NodeUnvisited:
		return "unvisited"
	case NodeOpen:
		return "open"
	case NodeClosed:
		return "closed"
	default:
		return fmt.Sprintf("NodeStatus(%d)", uint8(s))
	}
}

// Result holds the outcome of one search.
//
//   - Status:    terminal state.
//   - Path:      source … destination inclusive; nil unless Status == StatusFound.
//   - TotalCost: g of the destination; zero unless Status == StatusFound.
//   - Expanded:  number of node expansions (a reopened node counts again).
//     The destination itself is never expanded.
//   - Reopened:  number of Closed → Open transitions.
type Result[N comparable, C core.Cost] struct {
	Status    Status
	Path      []N
	TotalCost C
	Expanded  int
	Reopened  int
}

// Found reports whether a path was found.
func (r Result[N, C]) Found() bool { return r.Status == StatusFound }

// Options holds hooks and limits for a search.
type Options[N comparable, C core.Cost] struct {
	// OnExpand is called when a node is closed, before its edges are relaxed.
	OnExpand func(node N, g C)

	// OnRelax is called after an edge relaxation improved the head's g.
	OnRelax func(from, to N, g C)

	// OnReopen is called when a closed node is reopened with a cheaper g.
	OnReopen func(node N, g C)

	// MaxExpansions, if > 0, bounds the number of expansions; exceeding it
	// fails with ErrExpansionLimit. Zero means no limit.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// Option configures a search via functional arguments.
type Option[N comparable, C core.Cost] func(*Options[N, C])

// DefaultOptions returns Options with no-op hooks and no expansion limit.
func DefaultOptions[N comparable, C core.Cost]() Options[N, C] {
	return Options[N, C]{
		OnExpand: func(N, C) {},
		OnRelax:  func(N, N, C) {},
		OnReopen: func(N, C) {},
	}
}

// WithOnExpand registers a callback invoked on every expansion.
func WithOnExpand[N comparable, C core.Cost](fn func(node N, g C)) Option[N, C] {
	return func(o *Options[N, C]) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnRelax registers a callback invoked on every improving relaxation.
func WithOnRelax[N comparable, C core.Cost](fn func(from, to N, g C)) Option[N, C] {
	return func(o *Options[N, C]) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithOnReopen registers a callback invoked when a closed node is reopened.
func WithOnReopen[N comparable, C core.Cost](fn func(node N, g C)) Option[N, C] {
	return func(o *Options[N, C]) {
		if fn != nil {
			o.OnReopen = fn
		}
	}
}

// WithMaxExpansions bounds the number of expansions.
//
//	n > 0:  fail with ErrExpansionLimit once n expansions happened
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions[N comparable, C core.Cost](n int) Option[N, C] {
	return func(o *Options[N, C]) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}
