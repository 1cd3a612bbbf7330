package latency

import "fmt"

// Penalized perceives Base as Scale·Base(x) + Add.
//
// It models the cognitive cost of a traveler class: an additive penalty
// shifts the free-flow time, a multiplicative one inflates the whole curve.
type Penalized struct {
	Base  Func
	Add   float64
	Scale float64
}

// Cost returns Scale·Base(x) + Add.
func (p Penalized) Cost(x float64) float64 {
	return p.Scale*p.Base.Cost(x) + p.Add
}

// Derivative returns Scale·Base'(x).
func (p Penalized) Derivative(x float64) float64 {
	return p.Scale * p.Base.Derivative(x)
}

// Integral returns Scale·∫Base + Add·x.
func (p Penalized) Integral(x float64) float64 {
	return p.Scale*p.Base.Integral(x) + p.Add*nonNegative(x)
}

// Validate checks the base and that Scale > 0 and Add ≥ 0.
func (p Penalized) Validate() error {
	if p.Base == nil {
		return ErrNilBase
	}
	if !finite(p.Add, p.Scale) {
		return fmt.Errorf("%w: add=%g scale=%g", ErrNotFinite, p.Add, p.Scale)
	}
	if p.Scale <= 0 || p.Add < 0 {
		return fmt.Errorf("%w: add=%g scale=%g", ErrBadShape, p.Add, p.Scale)
	}

	return p.Base.Validate()
}
