package latency

import (
	"fmt"
	"math"
)

// Polynomial is t(x) = Σ Coefficients[k]·xᵏ.
//
// Coefficients[0] is the free-flow travel time. Benchmark networks usually
// carry degree ≤ 4 (BPR with β = 4), but any degree is accepted.
type Polynomial struct {
	Coefficients []float64
}

// NewPolynomial returns a validated Polynomial. The coefficient slice is copied.
func NewPolynomial(coefficients ...float64) (Polynomial, error) {
	p := Polynomial{Coefficients: append([]float64(nil), coefficients...)}
	if err := p.Validate(); err != nil {
		return Polynomial{}, err
	}

	return p, nil
}

// BPRPolynomial expands t₀(1 + α(x/c)^β) for an integer β into polynomial form:
// a₀ = t₀ and a_β = t₀·α / c^β. Capacity is floored at Epsilon.
func BPRPolynomial(freeFlowTime, capacity, alpha float64, beta int) Polynomial {
	if beta < 0 {
		beta = 0
	}
	c := math.Max(capacity, Epsilon)
	coef := make([]float64, beta+1)
	coef[0] = freeFlowTime
	coef[beta] += freeFlowTime * alpha / math.Pow(c, float64(beta))

	return Polynomial{Coefficients: coef}
}

// Cost evaluates the polynomial with Horner's scheme.
func (p Polynomial) Cost(x float64) float64 {
	x = nonNegative(x)
	var y float64
	for k := len(p.Coefficients) - 1; k >= 0; k-- {
		y = y*x + p.Coefficients[k]
	}

	return y
}

// Derivative evaluates Σ k·aₖ·x^(k-1).
func (p Polynomial) Derivative(x float64) float64 {
	x = nonNegative(x)
	var y float64
	for k := len(p.Coefficients) - 1; k >= 1; k-- {
		y = y*x + float64(k)*p.Coefficients[k]
	}

	return y
}

// Integral evaluates Σ aₖ·x^(k+1)/(k+1).
func (p Polynomial) Integral(x float64) float64 {
	x = nonNegative(x)
	var y float64
	for k := len(p.Coefficients) - 1; k >= 0; k-- {
		y = y*x + p.Coefficients[k]/float64(k+1)
	}

	return y * x
}

// Validate checks that there is at least one coefficient and that all of them
// are finite and non-negative.
func (p Polynomial) Validate() error {
	if len(p.Coefficients) == 0 {
		return ErrEmptyPolynomial
	}
	for k, a := range p.Coefficients {
		if !finite(a) {
			return fmt.Errorf("%w: a%d=%g", ErrNotFinite, k, a)
		}
		if a < 0 {
			return fmt.Errorf("%w: a%d=%g", ErrNegativeCoefficient, k, a)
		}
	}

	return nil
}
