package flow

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Zeros returns an all-zero flow vector of length n.
func Zeros(n int) []float64 { return make([]float64, n) }

// Clone returns a copy of x.
func Clone(x []float64) []float64 { return append([]float64(nil), x...) }

// SameLength reports whether every vector has length n.
func SameLength(n int, vs ...[]float64) bool {
	for _, v := range vs {
		if len(v) != n {
			return false
		}
	}

	return true
}

// prepare returns dst sized n, allocating when dst is nil.
func prepare(dst []float64, n int) ([]float64, error) {
	if dst == nil {
		return make([]float64, n), nil
	}
	if len(dst) != n {
		return nil, fmt.Errorf("%w: destination %d, want %d", ErrLengthMismatch, len(dst), n)
	}

	return dst, nil
}

// Sum writes Σ vs into dst. With no vectors dst is returned unchanged.
// dst may alias none of vs.
func Sum(dst []float64, vs ...[]float64) ([]float64, error) {
	if len(vs) == 0 {
		return dst, nil
	}
	n := len(vs[0])
	if !SameLength(n, vs...) {
		return nil, ErrLengthMismatch
	}
	dst, err := prepare(dst, n)
	if err != nil {
		return nil, err
	}
	copy(dst, vs[0])
	for _, v := range vs[1:] {
		floats.Add(dst, v)
	}

	return dst, nil
}

// Combine writes (1−s)·x + s·y into dst. dst may alias x or y.
func Combine(dst, x, y []float64, s float64) ([]float64, error) {
	if math.IsNaN(s) || s < 0 || s > 1 {
		return nil, fmt.Errorf("%w: s=%g", ErrBadStep, s)
	}
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	dst, err := prepare(dst, len(x))
	if err != nil {
		return nil, err
	}
	for i := range dst {
		dst[i] = x[i] + s*(y[i]-x[i])
	}
	ClampNonNegative(dst)

	return dst, nil
}

// AddScaled performs dst += s·w.
func AddScaled(dst []float64, s float64, w []float64) error {
	if len(dst) != len(w) {
		return ErrLengthMismatch
	}
	floats.AddScaled(dst, s, w)

	return nil
}

// Sub writes x − y into dst.
func Sub(dst, x, y []float64) ([]float64, error) {
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	dst, err := prepare(dst, len(x))
	if err != nil {
		return nil, err
	}
	floats.SubTo(dst, x, y)

	return dst, nil
}

// Norm returns ‖x‖₂.
func Norm(x []float64) float64 { return floats.Norm(x, 2) }

// Distance returns ‖x − y‖₂.
func Distance(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, ErrLengthMismatch
	}

	return floats.Distance(x, y, 2), nil
}

// Dot returns x·y.
func Dot(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, ErrLengthMismatch
	}

	return floats.Dot(x, y), nil
}

// Total returns Σ x.
func Total(x []float64) float64 { return floats.Sum(x) }

// ClampNonNegative replaces negative entries of x with zero.
func ClampNonNegative(x []float64) {
	for i, v := range x {
		if v < 0 {
			x[i] = 0
		}
	}
}

// RelativeChange returns ‖next − prev‖ / max(‖prev‖, Epsilon).
func RelativeChange(prev, next []float64) (float64, error) {
	d, err := Distance(prev, next)
	if err != nil {
		return 0, err
	}

	return d / math.Max(Norm(prev), Epsilon), nil
}
