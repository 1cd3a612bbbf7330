// SPDX-License-Identifier: MIT
// Package: wardrop/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator over ordered pairs (i,j), i≠j: each link is
//     included independently with probability p.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//     p = 0 emits nothing; p = 1 emits Complete(n) without drawing.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: i asc, then j asc.
//   - The same rng stream feeds trials and attribute samplers, so outcomes
//     are fixed for a fixed seed and option list.

package builder

// RandomSparse returns a Constructor that samples a random directed network
// over n nodes with independent link probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(l *Links, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, "n", n, MinCompleteNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return builderErrorf(MethodRandomSparse, ErrNeedRandSource, "p=%.6f", p)
		}
		if p == MinProbability {
			return nil
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if p < MaxProbability && cfg.rng.Float64() >= p {
					continue
				}
				l.add(cfg.link(cfg.node(i), cfg.node(j)))
			}
		}

		return nil
	}
}
