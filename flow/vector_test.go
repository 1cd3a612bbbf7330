package flow_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wardrop/flow"
)

// VectorSuite exercises the flow-vector helpers.
type VectorSuite struct {
	suite.Suite
}

// TestSum verifies the per-class reduction.
func (s *VectorSuite) TestSum() {
	a := []float64{1, 2, 3}
	b := []float64{0.5, 0, 4}
	got, err := flow.Sum(nil, a, b)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{1.5, 2, 7}, got)
	// inputs are untouched
	require.Equal(s.T(), []float64{1, 2, 3}, a)

	dst := flow.Zeros(3)
	got, err = flow.Sum(dst, a)
	require.NoError(s.T(), err)
	require.Equal(s.T(), a, got)

	_, err = flow.Sum(nil, a, []float64{1})
	require.ErrorIs(s.T(), err, flow.ErrLengthMismatch)
	_, err = flow.Sum(make([]float64, 2), a)
	require.ErrorIs(s.T(), err, flow.ErrLengthMismatch)
}

// TestCombine verifies the convex combination and its step guard.
func (s *VectorSuite) TestCombine() {
	x := []float64{10, 0, 4}
	y := []float64{0, 10, 4}
	got, err := flow.Combine(nil, x, y, 0.25)
	require.NoError(s.T(), err)
	require.InDeltaSlice(s.T(), []float64{7.5, 2.5, 4}, got, 1e-12)

	// in place
	_, err = flow.Combine(x, x, y, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), y, x)

	_, err = flow.Combine(nil, x, y, 1.5)
	require.ErrorIs(s.T(), err, flow.ErrBadStep)
	_, err = flow.Combine(nil, x, y, -0.1)
	require.ErrorIs(s.T(), err, flow.ErrBadStep)
	_, err = flow.Combine(nil, x, y, math.NaN())
	require.ErrorIs(s.T(), err, flow.ErrBadStep)
}

// TestNorms verifies Norm, Distance, Dot, Total and RelativeChange.
func (s *VectorSuite) TestNorms() {
	require.Equal(s.T(), 5.0, flow.Norm([]float64{3, 4}))

	d, err := flow.Distance([]float64{1, 1}, []float64{4, 5})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5.0, d)

	dot, err := flow.Dot([]float64{1, 2}, []float64{3, 4})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 11.0, dot)

	require.Equal(s.T(), 6.0, flow.Total([]float64{1, 2, 3}))

	rc, err := flow.RelativeChange([]float64{3, 4}, []float64{3, 5})
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 0.2, rc, 1e-12)

	// zero previous flow: denominator is floored, not divided by zero
	rc, err = flow.RelativeChange([]float64{0, 0}, []float64{0, 0})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, rc)

	_, err = flow.Dot([]float64{1}, nil)
	require.ErrorIs(s.T(), err, flow.ErrLengthMismatch)
}

// TestAddScaledAndClamp verifies the direction update and the round-off clamp.
func (s *VectorSuite) TestAddScaledAndClamp() {
	x := []float64{1, 1e-17, 2}
	require.NoError(s.T(), flow.AddScaled(x, 0.5, []float64{2, -1e-16, -2}))
	flow.ClampNonNegative(x)
	require.Equal(s.T(), []float64{2, 0, 1}, x)

	require.ErrorIs(s.T(), flow.AddScaled(x, 1, []float64{1}), flow.ErrLengthMismatch)

	diff, err := flow.Sub(nil, []float64{5, 1}, []float64{2, 3})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{3, -2}, diff)

	c := flow.Clone(diff)
	c[0] = 100
	require.Equal(s.T(), 3.0, diff[0])
}

func TestVectorSuite(t *testing.T) {
	suite.Run(t, new(VectorSuite))
}
