// SPDX-License-Identifier: MIT
// Package: wardrop/builder
//
// impl_parallel.go - implementation of Parallel(k) constructor.
//
// Contract:
//   • k ≥ 1 (else ErrTooFewVertices).
//   • Emits k links from node 0 to node 1; link i is the i-th route.
//   • Attributes come from the samplers in emission order, so
//     WithUniformCapacity gives routes of different size.
//
// Complexity: O(k) links, O(1) extra.

package builder

// Parallel returns a Constructor that builds k alternative routes between
// one origin and one destination.
func Parallel(k int) Constructor {
	return func(l *Links, cfg builderConfig) error {
		if err := validateMin(MethodParallel, "k", k, MinParallelLinks); err != nil {
			return err
		}

		s, t := cfg.node(0), cfg.node(1)
		for i := 0; i < k; i++ {
			l.add(cfg.link(s, t))
		}

		return nil
	}
}
