// SPDX-License-Identifier: MIT
// Package: wardrop/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal street grid with 4-neighborhood.
//   • Node (r,c) has id cfg.firstID + r*cols + c (row-major).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each (r,c) in row-major order emits Right then Bottom neighbour,
//     each as a forward link followed by its reverse.
//
// Complexity:
//   • Time: O(rows*cols) links (at most 4 per node).
//   • Space: O(1) extra.

package builder

// Grid returns a Constructor that builds a rows×cols two-way street grid.
func Grid(rows, cols int) Constructor {
	return func(l *Links, cfg builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}

		id := func(r, c int) int { return cfg.node(r*cols + c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := id(r, c)
				// Right neighbour (r, c+1).
				if c+1 < cols {
					v := id(r, c+1)
					l.add(cfg.link(u, v))
					l.add(cfg.link(v, u))
				}
				// Bottom neighbour (r+1, c).
				if r+1 < rows {
					v := id(r+1, c)
					l.add(cfg.link(u, v))
					l.add(cfg.link(v, u))
				}
			}
		}

		return nil
	}
}
