// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits i → (i+1) mod n for i=0..n-1; directed graphs get a one-way ring.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-node cycle C_n.
func Cycle(n int) Constructor {
	return func(g Target, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := addNodes(methodCycle, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(methodCycle, g, cfg, ids[i], ids[(i+1)%n], false); err != nil {
				return err
			}
		}

		return nil
	}
}
