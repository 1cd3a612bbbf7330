// SPDX-License-Identifier: MIT
// Package: wardrop/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits i→j for every ordered pair i≠j, lexicographic by (i,j).
//
// Complexity:
//   • Time: O(n²) links.
//   • Space: O(1) extra.

package builder

// Complete returns a Constructor that links every node to every other node.
func Complete(n int) Constructor {
	return func(l *Links, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				l.add(cfg.link(cfg.node(i), cfg.node(j)))
			}
		}

		return nil
	}
}
