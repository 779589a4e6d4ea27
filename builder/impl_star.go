// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub is cfg.idFn(0); leaves are cfg.idFn(1..n-1).
//   - Spokes hub → leaf; directed graphs also get leaf → hub.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g Target, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		ids, err := addNodes(methodStar, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(methodStar, g, cfg, ids[0], ids[i], true); err != nil {
				return err
			}
		}

		return nil
	}
}
