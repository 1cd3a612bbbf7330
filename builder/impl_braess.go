// SPDX-License-Identifier: MIT
// Package: wardrop/builder
//
// impl_braess.go - implementation of Braess() constructor.
//
// Canonical model (nodes s=0, a=1, b=2, t=3 offset by cfg.firstID):
//   link 0  s→a  t = 10x
//   link 1  s→b  t = 50 + x
//   link 2  a→b  t = 10 + x
//   link 3  a→t  t = 50 + x
//   link 4  b→t  t = 10x
//
// For a demand of 6 from s to t the equilibrium loads every route with 2,
// giving link flows (4, 2, 2, 2, 4) and a route cost of 92. Without link 2
// the cost would be 83.
//
// Capacities come from cfg.capacityFn; free-flow times are the constant terms.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wardrop/latency"
	"github.com/katalvlaran/wardrop/network"
)

// braessLinks lists (from, to, a₀, a₁) of the canonical network.
var braessLinks = [...][4]float64{
	{0, 1, 0, 10},
	{0, 2, 50, 1},
	{1, 2, 10, 1},
	{1, 3, 50, 1},
	{2, 3, 0, 10},
}

// Braess returns a Constructor for the Braess paradox network.
func Braess() Constructor {
	return func(l *Links, cfg builderConfig) error {
		for i, b := range braessLinks {
			p, err := latency.NewPolynomial(b[2], b[3])
			if err != nil {
				return fmt.Errorf("%s: link %d: %w: %w", MethodBraess, i, ErrConstructFailed, err)
			}
			l.add(network.Link{
				From:         cfg.node(int(b[0])),
				To:           cfg.node(int(b[1])),
				Capacity:     cfg.capacityFn(cfg.rng),
				FreeFlowTime: b[2],
				Latency:      p,
			})
		}

		return nil
	}
}
