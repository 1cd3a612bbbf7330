package frankwolfe

import (
	"math"

	"github.com/katalvlaran/wardrop/flow"
)

// along writes x + s·w into r.point.
func (r *runner) along(s float64) {
	copy(r.point, r.x)
	_ = flow.AddScaled(r.point, s, r.w)
}

// slope returns φ'(s) = Σ wₐ tₐ(xₐ + s·wₐ + bₐ), the derivative of the
// potential along w at step s.
func (r *runner) slope(s float64) float64 {
	r.along(s)
	_, _ = r.g.Costs(r.point, r.bg, r.scratch)
	d, _ := flow.Dot(r.w, r.scratch)

	return d
}

// curvature returns φ''(s) = Σ wₐ² tₐ'(xₐ + s·wₐ + bₐ).
func (r *runner) curvature(s float64) float64 {
	r.along(s)
	_, _ = r.g.Derivatives(r.point, r.bg, r.scratch)
	var sum float64
	for i, wi := range r.w {
		sum += wi * wi * r.scratch[i]
	}

	return sum
}

// lineSearch minimises the potential along w over s ∈ [0, 1].
//
// φ is convex in s, so φ' is non-decreasing and [lo, hi] with φ'(lo) < 0 < φ'(hi)
// brackets the minimiser. Each step tries Newton from the last point and
// bisects when the Newton point leaves the bracket. The result never raises
// the potential: a point past the minimiser is kept only if Φ does not grow,
// otherwise lo is returned.
func (r *runner) lineSearch() float64 {
	g0 := r.slope(0)
	if g0 >= 0 {
		return 0
	}
	if r.slope(1) <= 0 {
		return 1
	}

	lo, hi := 0.0, 1.0
	s, gs := 0.0, g0
	tol := math.Abs(g0) * 1e-12
	for i := 0; i < r.opts.LineSearchSteps && hi-lo > flow.Epsilon; i++ {
		next := 0.5 * (lo + hi)
		if h := r.curvature(s); h > 0 {
			if n := s - gs/h; n > lo && n < hi {
				next = n
			}
		}
		s, gs = next, r.slope(next)
		if math.Abs(gs) <= tol {
			break
		}
		if gs > 0 {
			hi = s
		} else {
			lo = s
		}
	}

	if gs <= 0 {
		return s
	}
	r.along(s)
	if phi, err := r.g.Potential(r.point, r.bg); err == nil && phi <= r.potential {
		return s
	}

	return lo
}
