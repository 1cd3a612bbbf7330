// Package builder provides internal helper functions and types
// for configuring link attribute distributions in network constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// WeightFn produces a link attribute (capacity or free-flow time) given an
// optional *rand.Rand source. It must be deterministic for a given RNG seed;
// panics in its constructors indicate programmer error in configuration.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeightFn returns a WeightFn that always yields the provided value.
// Panics if value < 0 or value is not finite.
// Complexity: O(1) time, O(1) space.
func ConstantWeightFn(value float64) WeightFn {
	if !(value >= 0) || math.IsInf(value, 1) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite and ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min.
// If rng is nil, yields the midpoint to keep a deterministic fallback.
// Complexity: O(1) time, O(1) space.
func UniformWeightFn(min, max float64) WeightFn {
	if !(min >= 0) || !(max >= min) || math.IsInf(max, 1) {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max < ∞, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if max == min {
			return min
		}
		if rng == nil {
			return min + (max-min)/2
		}

		return min + rng.Float64()*(max-min)
	}
}

// NormalWeightFn returns a WeightFn sampling from N(mean, stddev) clipped at 0.
// Panics if stddev < 0 or mean < 0.
// If rng is nil, yields mean.
// Complexity: O(1) time, O(1) space.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if !(stddev >= 0) || !(mean >= 0) {
		panic(fmt.Sprintf("NormalWeightFn: mean and stddev must be ≥ 0, got %g, %g", mean, stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return mean
		}

		return math.Max(rng.NormFloat64()*stddev+mean, 0)
	}
}
