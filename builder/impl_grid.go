// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Model:
//   • 2D orthogonal grid with 4-neighborhood.
//   • Cell (r,c) has index r*cols + c and ID cfg.idFn(index) (row-major).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each cell emit Right then Bottom neighbour if present.
//     Directed graphs also get the reverse arc with the same weight.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g Target, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		ids, err := addNodes(methodGrid, g, cfg, rows*cols)
		if err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				if c+1 < cols {
					if err = addEdge(methodGrid, g, cfg, u, ids[r*cols+c+1], true); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = addEdge(methodGrid, g, cfg, u, ids[(r+1)*cols+c], true); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
