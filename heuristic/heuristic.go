// SPDX-License-Identifier: MIT
//
// File: heuristic.go
// Role: Zero, Table, Scaled and Max estimators.

package heuristic

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pathfind/astar"
	"github.com/katalvlaran/pathfind/core"
)

// Sentinel errors for heuristic construction.
var (
	// ErrInvalidEstimate indicates a negative, NaN or infinite estimate in a table.
	ErrInvalidEstimate = errors.New("heuristic: estimate must be finite and non-negative")

	// ErrInvalidFactor indicates a Scaled factor that is negative, NaN or infinite.
	ErrInvalidFactor = errors.New("heuristic: scale factor must be finite and non-negative")

	// ErrNoHeuristics indicates that Max was called without any heuristic.
	ErrNoHeuristics = errors.New("heuristic: at least one heuristic required")
)

// Zero returns the heuristic that always estimates 0.
func Zero[N comparable, C core.Cost]() astar.HeuristicFunc[N, C] {
	return func(N, N) C {
		var zero C
		return zero
	}
}

// Table is a heuristic backed by precomputed estimates.
// It is immutable after construction and safe for concurrent use.
type Table[N comparable, C core.Cost] struct {
	estimates map[N]map[N]C
	fallback  C
}

// TableOption configures a Table.
type TableOption[C core.Cost] func(*tableConfig[C])

type tableConfig[C core.Cost] struct {
	fallback C
}

// WithFallback sets the estimate returned for pairs missing from the table.
func WithFallback[C core.Cost](c C) TableOption[C] {
	return func(cfg *tableConfig[C]) { cfg.fallback = c }
}

// NewTable copies estimates (node → destination → estimate) into a Table.
//
// Errors: ErrInvalidEstimate if any estimate or the fallback is negative,
// NaN or infinite.
func NewTable[N comparable, C core.Cost](estimates map[N]map[N]C, opts ...TableOption[C]) (*Table[N, C], error) {
	var cfg tableConfig[C]
	for _, opt := range opts {
		opt(&cfg)
	}
	if !valid(cfg.fallback) {
		return nil, fmt.Errorf("%w: fallback %v", ErrInvalidEstimate, cfg.fallback)
	}

	t := &Table[N, C]{
		estimates: make(map[N]map[N]C, len(estimates)),
		fallback:  cfg.fallback,
	}
	for node, row := range estimates {
		cp := make(map[N]C, len(row))
		for dst, c := range row {
			if !valid(c) {
				return nil, fmt.Errorf("%w: h(%v, %v) = %v", ErrInvalidEstimate, node, dst, c)
			}
			cp[dst] = c
		}
		t.estimates[node] = cp
	}

	return t, nil
}

// Estimate returns the stored estimate for (node, destination), or the fallback.
func (t *Table[N, C]) Estimate(node, destination N) C {
	if c, ok := t.estimates[node][destination]; ok {
		return c
	}

	return t.fallback
}

// Len returns the number of stored (node, destination) pairs.
func (t *Table[N, C]) Len() int {
	n := 0
	for _, row := range t.estimates {
		n += len(row)
	}

	return n
}

// Scaled multiplies every estimate of h by factor.
// With integer costs the product is truncated toward zero.
//
// Errors: ErrInvalidFactor.
func Scaled[N comparable, C core.Cost](h astar.Heuristic[N, C], factor float64) (astar.HeuristicFunc[N, C], error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFactor, factor)
	}

	return func(node, destination N) C {
		return C(float64(h.Estimate(node, destination)) * factor)
	}, nil
}

// Max returns the point-wise maximum of hs.
//
// Errors: ErrNoHeuristics.
func Max[N comparable, C core.Cost](hs ...astar.Heuristic[N, C]) (astar.HeuristicFunc[N, C], error) {
	if len(hs) == 0 {
		return nil, ErrNoHeuristics
	}
	list := append([]astar.Heuristic[N, C](nil), hs...)

	return func(node, destination N) C {
		best := list[0].Estimate(node, destination)
		for _, h := range list[1:] {
			// NaN propagates so astar can reject it
			if c := h.Estimate(node, destination); c > best || c != c {
				best = c
			}
		}

		return best
	}, nil
}

// valid reports whether c is a finite, non-negative estimate.
func valid[C core.Cost](c C) bool {
	f := float64(c)
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f >= 0
}
