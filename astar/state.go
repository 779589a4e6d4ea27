// SPDX-License-Identifier: MIT
//
// File: state.go
// Role: per-search node arena, path reconstruction, cost sanity checks.
// Concurrency: an arena belongs to exactly one FindPath call.

package astar

import (
	"math"

	"github.com/katalvlaran/pathfind/core"
)

// nodeState is the per-node bookkeeping of one search.
//
// A node missing from the arena is Unvisited with g = +∞; every entry present
// has a finite g. version changes on every update so that frontier entries
// pushed before the update can be recognised as stale.
type nodeState[N comparable, C core.Cost] struct {
	g, h, f C
	pred    N
	hasPred bool
	status  NodeStatus
	version uint32
}

// arena owns the node states of exactly one search.
type arena[N comparable, C core.Cost] map[N]*nodeState[N, C]

// improves reports whether a tentative cost g beats the recorded one.
// Unvisited nodes are beaten by any cost.
func (a arena[N, C]) improves(id N, g C) bool {
	s, ok := a[id]
	return !ok || g < s.g
}

// path follows predecessor links from dst back to src and returns the nodes
// in source → destination order. The walk is bounded by the arena size so a
// predecessor cycle (only possible with negative costs) cannot hang it.
func (a arena[N, C]) path(src, dst N) []N {
	out := []N{dst}
	for cur := dst; cur != src && len(out) <= len(a); {
		s := a[cur]
		if s == nil || !s.hasPred {
			break
		}
		cur = s.pred
		out = append(out, cur)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// isNaN reports whether c is a floating-point NaN. Integer costs never are.
func isNaN[C core.Cost](c C) bool {
	return c != c
}

// isInteger reports whether C is an integer kind.
func isInteger[C core.Cost]() bool {
	var one C = 1
	return one/2 == 0
}

// add returns a+b and reports false when an integer sum wrapped around.
// Float sums never wrap; ±Inf is handled by the callers.
func add[C core.Cost](a, b C) (C, bool) {
	s := a + b
	if !isInteger[C]() {
		return s, true
	}
	var zero C
	if b >= zero {
		return s, s >= a
	}

	return s, s < a
}

// validCost reports whether an edge cost can take part in g sums.
func validCost[C core.Cost](c C) bool {
	return !isNaN(c) && !math.IsInf(float64(c), 0)
}

// validEstimate reports whether h can take part in the frontier order.
func validEstimate[C core.Cost](h C) bool {
	var zero C
	return !isNaN(h) && h >= zero && !math.IsInf(float64(h), 0)
}
