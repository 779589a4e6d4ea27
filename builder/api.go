// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors are topology recipes over integer node IDs; they do not
//     know the cost type. BuildGraph converts every emitted weight to C.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// Target is the mutation surface a Constructor works against.
// AddNode is idempotent; AddEdge overwrites an existing edge's weight.
type Target interface {
	AddNode(id int) error
	AddEdge(from, to int, weight float64) error
	Undirected() bool
}

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add nodes through cfg.idFn so that several constructors can be composed.
//   - Preserve determinism for the same config and call order.
type Constructor func(g Target, cfg builderConfig) error

// graphTarget adapts *core.Graph[int, C] to Target.
type graphTarget[C core.Cost] struct {
	g *core.Graph[int, C]
}

func (t graphTarget[C]) AddNode(id int) error { return t.g.AddNode(id) }

func (t graphTarget[C]) AddEdge(from, to int, weight float64) error {
	return t.g.AddEdge(from, to, C(weight))
}

func (t graphTarget[C]) Undirected() bool { return t.g.Undirected() }

// BuildGraph creates a new core.Graph[int, C] with graph options gopts,
// resolves the builder configuration from bopts, and applies all constructors
// in order. Any constructor error is wrapped with the context "BuildGraph: %w"
// and returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph[C core.Cost](gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph[int, C], error) {
	g := core.NewGraph[int, C](gopts...)
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply runs constructors against an existing graph. Nodes that already exist
// are reused, which lets callers extend a graph built earlier.
func Apply[C core.Cost](g *core.Graph[int, C], bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("BuildGraph: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	target := graphTarget[C]{g: g}

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(target, cfg); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return nil
}

// addNodes inserts cfg.idFn(0..n-1) and returns the resolved IDs.
func addNodes(method string, g Target, cfg builderConfig, n int) ([]int, error) {
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddNode(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%d): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addEdge draws one weight and emits u→v, plus v→u when mirror is set and
// the target is directed.
func addEdge(method string, g Target, cfg builderConfig, u, v int, mirror bool) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", method, u, v, w, err)
	}
	if mirror && !g.Undirected() {
		if err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", method, v, u, w, err)
		}
	}

	return nil
}
