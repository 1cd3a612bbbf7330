// SPDX-License-Identifier: MIT
// Package: wardrop/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • firstID      = 0                   (node ids firstID, firstID+1, ...)
//   • rng          = nil                 (pure/deterministic unless seeded)
//   • capacityFn   = ConstantWeightFn(DefaultCapacity)
//   • fftFn        = ConstantWeightFn(DefaultFreeFlowTime)
//   • alpha, beta  = latency.DefaultAlpha, latency.DefaultBeta
//   • twoWay       = false               (Path/Cycle emit one direction)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/wardrop/latency"
	"github.com/katalvlaran/wardrop/network"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// First external node id; constructors number nodes from here.
	firstID int
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Per-link samplers for capacity and free-flow time.
	capacityFn WeightFn
	fftFn      WeightFn
	// BPR shape applied to every generated link.
	alpha float64
	beta  float64
	// Emit the reverse link for Path and Cycle.
	twoWay bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		capacityFn: ConstantWeightFn(DefaultCapacity),
		fftFn:      ConstantWeightFn(DefaultFreeFlowTime),
		alpha:      latency.DefaultAlpha,
		beta:       latency.DefaultBeta,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// node maps a constructor-local index to an external node id.
func (c builderConfig) node(i int) int { return c.firstID + i }

// link samples capacity and free-flow time and returns a BPR link u→v.
func (c builderConfig) link(u, v int) network.Link {
	capacity := c.capacityFn(c.rng)
	fftt := c.fftFn(c.rng)

	return network.Link{
		From:         u,
		To:           v,
		Capacity:     capacity,
		FreeFlowTime: fftt,
		Latency: latency.BPR{
			FreeFlowTime: fftt,
			Capacity:     capacity,
			Alpha:        c.alpha,
			Beta:         c.beta,
		},
	}
}
