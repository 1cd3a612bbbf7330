package latency

import (
	"errors"
	"math"
)

// Epsilon is the floor applied to capacities and to flows in singular
// derivative evaluations.
const Epsilon = 1e-9

// Default BPR shape parameters.
const (
	DefaultAlpha = 0.15
	DefaultBeta  = 4.0
)

// Sentinel errors returned by Validate.
var (
	// ErrNotFinite indicates a NaN or infinite parameter.
	ErrNotFinite = errors.New("latency: parameter is NaN or Inf")

	// ErrNegativeCoefficient indicates a negative polynomial coefficient or BPR parameter,
	// which would make the cost decreasing or negative.
	ErrNegativeCoefficient = errors.New("latency: negative coefficient")

	// ErrEmptyPolynomial indicates a polynomial without coefficients.
	ErrEmptyPolynomial = errors.New("latency: polynomial has no coefficients")

	// ErrBadShape indicates an invalid Penalized transform (Scale ≤ 0 or Add < 0).
	ErrBadShape = errors.New("latency: invalid penalty shape")

	// ErrNilBase indicates a Penalized function without a base function.
	ErrNilBase = errors.New("latency: penalized function has nil base")
)

// Func is a link volume-delay function.
//
// Implementations must be safe for concurrent use once constructed: solvers
// evaluate the same Func from several goroutines when batching is parallel.
type Func interface {
	// Cost returns the travel time at flow x.
	Cost(x float64) float64

	// Derivative returns dCost/dx at flow x.
	Derivative(x float64) float64

	// Integral returns ∫₀ˣ Cost(s) ds.
	Integral(x float64) float64

	// Validate reports whether the parameters describe a non-negative,
	// non-decreasing cost.
	Validate() error
}

// finite reports whether every v is neither NaN nor ±Inf.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// nonNegative clamps negative flows to zero.
func nonNegative(x float64) float64 {
	if x < 0 {
		return 0
	}

	return x
}
