// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds nodes via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1) → i for i=1..n-1 in stable increasing order.
//     Directed graphs keep the path one-way.
//
// Complexity: O(n) time, O(n) extra space for the ID slice.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g Target, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := addNodes(methodPath, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(methodPath, g, cfg, ids[i-1], ids[i], false); err != nil {
				return err
			}
		}

		return nil
	}
}
