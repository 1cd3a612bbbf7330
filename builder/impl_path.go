// SPDX-License-Identifier: MIT
// Package: wardrop/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits links (i-1)→i for i=1..n-1 in increasing order.
//   - With cfg.twoWay, each forward link is followed by its reverse i→(i-1).
//   - Attributes come from cfg.capacityFn / cfg.fftFn in emission order.
//
// Complexity:
//   - Time: O(n) links.
//   - Space: O(1) extra.

package builder

// Path returns a Constructor that builds a corridor of n nodes.
func Path(n int) Constructor {
	return func(l *Links, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}

		var u, v int
		for i := 1; i < n; i++ {
			u, v = cfg.node(i-1), cfg.node(i)
			l.add(cfg.link(u, v))
			if cfg.twoWay {
				l.add(cfg.link(v, u))
			}
		}

		return nil
	}
}
