// SPDX-License-Identifier: MIT
// Package: wardrop/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits links i→(i+1)%n for i=0..n-1 in increasing order.
//   • With cfg.twoWay, each forward link is followed by its reverse.
//
// Complexity:
//   • Time: O(n) links.
//   • Space: O(1) extra.

package builder

// Cycle returns a Constructor that builds an n-node ring road.
func Cycle(n int) Constructor {
	return func(l *Links, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}

		var u, v int
		for i := 0; i < n; i++ {
			u, v = cfg.node(i), cfg.node((i+1)%n)
			l.add(cfg.link(u, v))
			if cfg.twoWay {
				l.add(cfg.link(v, u))
			}
		}

		return nil
	}
}
