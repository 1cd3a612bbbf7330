// SPDX-License-Identifier: MIT
// Package: wardrop/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves return sentinel errors and never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before network construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithFirstID numbers generated nodes from id instead of 0.
// Combine with separate BuildNetwork calls to keep node ranges disjoint.
func WithFirstID(id int) BuilderOption {
	return func(c *builderConfig) {
		c.firstID = id
	}
}

// WithRand provides an explicit RNG for stochastic builders and samplers.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCapacityFn overrides the per-link capacity sampler. Panics on nil.
func WithCapacityFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCapacityFn(nil)")
	}
	return func(c *builderConfig) {
		c.capacityFn = fn
	}
}

// WithFreeFlowTimeFn overrides the per-link free-flow time sampler. Panics on nil.
func WithFreeFlowTimeFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithFreeFlowTimeFn(nil)")
	}
	return func(c *builderConfig) {
		c.fftFn = fn
	}
}

// WithConstantCapacity sets every capacity to value via ConstantWeightFn.
func WithConstantCapacity(value float64) BuilderOption {
	return WithCapacityFn(ConstantWeightFn(value))
}

// WithUniformCapacity samples capacities ∼ U[min,max] via UniformWeightFn.
func WithUniformCapacity(min, max float64) BuilderOption {
	return WithCapacityFn(UniformWeightFn(min, max))
}

// WithUniformFreeFlowTime samples free-flow times ∼ U[min,max].
func WithUniformFreeFlowTime(min, max float64) BuilderOption {
	return WithFreeFlowTimeFn(UniformWeightFn(min, max))
}

// WithBPRShape sets the α and β of every generated BPR curve.
// Panics unless both are finite and non-negative.
func WithBPRShape(alpha, beta float64) BuilderOption {
	if !(alpha >= 0 && beta >= 0) || math.IsInf(alpha, 0) || math.IsInf(beta, 0) {
		panic(fmt.Sprintf("builder: WithBPRShape(%g, %g): α and β must be finite and ≥ 0", alpha, beta))
	}
	return func(c *builderConfig) {
		c.alpha, c.beta = alpha, beta
	}
}

// WithTwoWay makes Path and Cycle emit a reverse link for every link.
// Grid, Complete and RandomSparse are directed by construction and ignore it.
func WithTwoWay() BuilderOption {
	return func(c *builderConfig) {
		c.twoWay = true
	}
}
