package network

import "fmt"

// checkLength verifies that every non-nil vector has NumLinks entries.
// A nil background is allowed and means "no other classes".
func (g *Graph) checkLength(x, background []float64) error {
	if len(x) != len(g.links) {
		return fmt.Errorf("%w: flow has %d entries, graph has %d links", ErrLengthMismatch, len(x), len(g.links))
	}
	if background != nil && len(background) != len(g.links) {
		return fmt.Errorf("%w: background has %d entries, graph has %d links", ErrLengthMismatch, len(background), len(g.links))
	}

	return nil
}

func at(background []float64, i int) float64 {
	if background == nil {
		return 0
	}

	return background[i]
}

// Costs writes tₐ(xₐ + bₐ) for every link into dst and returns it.
// dst is allocated when nil.
func (g *Graph) Costs(x, background, dst []float64) ([]float64, error) {
	if err := g.checkLength(x, background); err != nil {
		return nil, err
	}
	if dst == nil {
		dst = make([]float64, len(g.links))
	} else if len(dst) != len(g.links) {
		return nil, fmt.Errorf("%w: destination has %d entries", ErrLengthMismatch, len(dst))
	}
	for i, l := range g.links {
		dst[i] = l.Latency.Cost(x[i] + at(background, i))
	}

	return dst, nil
}

// Derivatives writes tₐ'(xₐ + bₐ) for every link into dst and returns it.
func (g *Graph) Derivatives(x, background, dst []float64) ([]float64, error) {
	if err := g.checkLength(x, background); err != nil {
		return nil, err
	}
	if dst == nil {
		dst = make([]float64, len(g.links))
	} else if len(dst) != len(g.links) {
		return nil, fmt.Errorf("%w: destination has %d entries", ErrLengthMismatch, len(dst))
	}
	for i, l := range g.links {
		dst[i] = l.Latency.Derivative(x[i] + at(background, i))
	}

	return dst, nil
}

// Potential returns the Beckmann potential Σₐ ∫_{bₐ}^{bₐ+xₐ} tₐ(s) ds.
// It is strictly convex in x whenever every latency is strictly increasing.
func (g *Graph) Potential(x, background []float64) (float64, error) {
	if err := g.checkLength(x, background); err != nil {
		return 0, err
	}
	var sum float64
	for i, l := range g.links {
		b := at(background, i)
		if b == 0 {
			sum += l.Latency.Integral(x[i])
			continue
		}
		sum += l.Latency.Integral(x[i]+b) - l.Latency.Integral(b)
	}

	return sum, nil
}

// FreeFlowCosts returns tₐ(0) for every link.
func (g *Graph) FreeFlowCosts() []float64 {
	out := make([]float64, len(g.links))
	for i, l := range g.links {
		out[i] = l.Latency.Cost(0)
	}

	return out
}
