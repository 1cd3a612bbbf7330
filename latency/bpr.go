package latency

import (
	"fmt"
	"math"
)

// BPR is the Bureau of Public Roads curve t(x) = t₀(1 + α(x/c)^β).
type BPR struct {
	FreeFlowTime float64 // t₀, travel time on an empty link
	Capacity     float64 // c, practical capacity; floored at Epsilon
	Alpha        float64 // α, usually 0.15
	Beta         float64 // β, usually 4
}

// NewBPR returns a BPR with the default shape (α = 0.15, β = 4).
func NewBPR(freeFlowTime, capacity float64) BPR {
	return BPR{
		FreeFlowTime: freeFlowTime,
		Capacity:     capacity,
		Alpha:        DefaultAlpha,
		Beta:         DefaultBeta,
	}
}

func (b BPR) capacity() float64 { return math.Max(b.Capacity, Epsilon) }

// Cost evaluates t₀(1 + α(x/c)^β).
func (b BPR) Cost(x float64) float64 {
	r := nonNegative(x) / b.capacity()

	return b.FreeFlowTime * (1 + b.Alpha*math.Pow(r, b.Beta))
}

// Derivative evaluates t₀·α·β·x^(β-1)/c^β.
func (b BPR) Derivative(x float64) float64 {
	if b.Beta == 0 || b.Alpha == 0 {
		return 0
	}
	x = nonNegative(x)
	if b.Beta < 1 {
		x = math.Max(x, Epsilon)
	}
	c := b.capacity()

	return b.FreeFlowTime * b.Alpha * b.Beta * math.Pow(x/c, b.Beta-1) / c
}

// Integral evaluates t₀(x + α·c/(β+1)·(x/c)^(β+1)).
func (b BPR) Integral(x float64) float64 {
	x = nonNegative(x)
	c := b.capacity()

	return b.FreeFlowTime * (x + b.Alpha*c/(b.Beta+1)*math.Pow(x/c, b.Beta+1))
}

// Validate checks that all parameters are finite and non-negative.
func (b BPR) Validate() error {
	if !finite(b.FreeFlowTime, b.Capacity, b.Alpha, b.Beta) {
		return fmt.Errorf("%w: bpr(t0=%g, c=%g, alpha=%g, beta=%g)",
			ErrNotFinite, b.FreeFlowTime, b.Capacity, b.Alpha, b.Beta)
	}
	if b.FreeFlowTime < 0 || b.Capacity < 0 || b.Alpha < 0 || b.Beta < 0 {
		return fmt.Errorf("%w: bpr(t0=%g, c=%g, alpha=%g, beta=%g)",
			ErrNegativeCoefficient, b.FreeFlowTime, b.Capacity, b.Alpha, b.Beta)
	}

	return nil
}
