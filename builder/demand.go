// SPDX-License-Identifier: MIT
// Package: wardrop/builder
//
// demand.go - demand helpers for generated networks.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wardrop/network"
)

// AllToAll returns a demand of volume between every ordered pair of distinct
// nodes of g, in node order. Returns ErrBadVolume for a negative or
// non-finite volume and wraps network errors otherwise.
// Complexity: O(V²).
func AllToAll(g *network.Graph, volume float64) (*network.Demand, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: nil graph: %w", MethodAllToAll, ErrConstructFailed)
	}
	if !(volume >= 0) || math.IsInf(volume, 1) {
		return nil, builderErrorf(MethodAllToAll, ErrBadVolume, "volume=%g", volume)
	}

	n := g.NumNodes()
	ods := make([]network.OD, 0, n*(n-1))
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			ods = append(ods, network.OD{Origin: g.NodeID(u), Destination: g.NodeID(v), Volume: volume})
		}
	}

	d, err := network.NewDemand(g, ods)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodAllToAll, err)
	}

	return d, nil
}
