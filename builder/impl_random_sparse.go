// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - Undirected: iterate unordered pairs {i,j} with i<j.
//   - Directed: iterate ordered pairs (i,j), i≠j.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: i asc, then j asc; one Float64 draw per trial,
//     followed by one weight draw for each accepted edge.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random graph over n
// nodes with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g Target, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax || p != p {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := addNodes(methodRandomSparse, g, cfg, n)
		if err != nil {
			return err
		}

		// accept decides one Bernoulli trial; p ∈ {0,1} needs no RNG.
		accept := func() bool {
			switch {
			case p == probMin:
				return false
			case p == probMax:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}

		undirected := g.Undirected()
		for i := 0; i < n; i++ {
			j := 0
			if undirected {
				j = i + 1
			}
			for ; j < n; j++ {
				if i == j || !accept() {
					continue
				}
				if err = addEdge(methodRandomSparse, g, cfg, ids[i], ids[j], false); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
