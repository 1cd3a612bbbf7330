package latency_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wardrop/latency"
)

func TestPolynomial_Evaluate(t *testing.T) {
	// t(x) = 2 + 3x + x²
	p, err := latency.NewPolynomial(2, 3, 1)
	require.NoError(t, err)

	require.Equal(t, 2.0, p.Cost(0))
	require.Equal(t, 12.0, p.Cost(2))
	require.Equal(t, 7.0, p.Derivative(2))
	// ∫₀² = 4 + 6 + 8/3
	require.InDelta(t, 10+8.0/3, p.Integral(2), 1e-12)
	// negative flow is evaluated as zero
	require.Equal(t, 2.0, p.Cost(-5))
	require.Equal(t, 0.0, p.Integral(-5))
}

func TestPolynomial_Validate(t *testing.T) {
	_, err := latency.NewPolynomial()
	require.ErrorIs(t, err, latency.ErrEmptyPolynomial)

	_, err = latency.NewPolynomial(1, -1)
	require.ErrorIs(t, err, latency.ErrNegativeCoefficient)

	_, err = latency.NewPolynomial(1, math.NaN())
	require.ErrorIs(t, err, latency.ErrNotFinite)
}

func TestBPR_Evaluate(t *testing.T) {
	b := latency.NewBPR(10, 100)
	require.NoError(t, b.Validate())

	require.Equal(t, 10.0, b.Cost(0))
	// at capacity: t0·(1+α)
	require.InDelta(t, 11.5, b.Cost(100), 1e-12)
	// at half capacity: 10·(1 + 0.15/16)
	require.InDelta(t, 10*(1+0.15/16), b.Cost(50), 1e-12)
	// derivative at capacity: t0·α·β/c
	require.InDelta(t, 10*0.15*4/100, b.Derivative(100), 1e-12)
	require.Equal(t, 0.0, b.Derivative(0))
	// integral at capacity: t0·(c + α·c/5)
	require.InDelta(t, 10*(100+0.15*100/5), b.Integral(100), 1e-9)
}

func TestBPR_ZeroCapacityIsClamped(t *testing.T) {
	b := latency.NewBPR(1, 0)
	require.NoError(t, b.Validate())

	c := b.Cost(1)
	require.False(t, math.IsNaN(c))
	require.False(t, math.IsInf(c, 0))
	require.Greater(t, c, 1e6)
	require.Equal(t, 1.0, b.Cost(0))
}

func TestBPR_SmallBetaDerivativeIsFinite(t *testing.T) {
	b := latency.BPR{FreeFlowTime: 1, Capacity: 10, Alpha: 1, Beta: 0.5}
	d := b.Derivative(0)
	require.False(t, math.IsInf(d, 0))
	require.Greater(t, d, 0.0)
}

func TestBPR_Validate(t *testing.T) {
	require.ErrorIs(t, latency.NewBPR(-1, 10).Validate(), latency.ErrNegativeCoefficient)
	require.ErrorIs(t, latency.NewBPR(1, math.Inf(1)).Validate(), latency.ErrNotFinite)
}

func TestBPRPolynomial_MatchesBPR(t *testing.T) {
	b := latency.NewBPR(7, 250)
	p := latency.BPRPolynomial(7, 250, latency.DefaultAlpha, 4)
	require.Len(t, p.Coefficients, 5)

	for _, x := range []float64{0, 10, 125, 250, 600} {
		require.InDelta(t, b.Cost(x), p.Cost(x), 1e-9, "cost at %g", x)
		require.InDelta(t, b.Derivative(x), p.Derivative(x), 1e-9, "derivative at %g", x)
		require.InDelta(t, b.Integral(x), p.Integral(x), 1e-6, "integral at %g", x)
	}
}

func TestPenalized(t *testing.T) {
	base := latency.Polynomial{Coefficients: []float64{10, 1}}

	add := latency.Penalized{Base: base, Add: 5, Scale: 1}
	require.NoError(t, add.Validate())
	require.Equal(t, 15.0, add.Cost(0))
	require.Equal(t, 17.0, add.Cost(2))
	require.Equal(t, 1.0, add.Derivative(2))
	require.InDelta(t, 20+2+10, add.Integral(2), 1e-12)

	mul := latency.Penalized{Base: base, Scale: 100}
	require.Equal(t, 1000.0, mul.Cost(0))
	require.Equal(t, 100.0, mul.Derivative(3))

	require.ErrorIs(t, latency.Penalized{Scale: 1}.Validate(), latency.ErrNilBase)
	require.ErrorIs(t, latency.Penalized{Base: base, Scale: 0}.Validate(), latency.ErrBadShape)
	require.ErrorIs(t, latency.Penalized{Base: base, Scale: 1, Add: -1}.Validate(), latency.ErrBadShape)
}

// TestIntegralDerivativeConsistency checks Integral' = Cost and Cost' = Derivative
// numerically for every family.
func TestIntegralDerivativeConsistency(t *testing.T) {
	funcs := map[string]latency.Func{
		"polynomial": latency.Polynomial{Coefficients: []float64{3, 0.5, 0, 0.01}},
		"bpr":        latency.BPR{FreeFlowTime: 4, Capacity: 30, Alpha: 0.5, Beta: 2.5},
		"penalized":  latency.Penalized{Base: latency.NewBPR(2, 40), Add: 1, Scale: 3},
	}
	const h = 1e-5
	for name, f := range funcs {
		for _, x := range []float64{1, 15, 45} {
			dI := (f.Integral(x+h) - f.Integral(x-h)) / (2 * h)
			require.InDelta(t, f.Cost(x), dI, 1e-4, "%s integral' at %g", name, x)
			dC := (f.Cost(x+h) - f.Cost(x-h)) / (2 * h)
			require.InDelta(t, f.Derivative(x), dC, 1e-4, "%s cost' at %g", name, x)
		}
	}
}
