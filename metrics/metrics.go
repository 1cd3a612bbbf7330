package metrics

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/wardrop/aon"
	"github.com/katalvlaran/wardrop/flow"
	"github.com/katalvlaran/wardrop/latency"
	"github.com/katalvlaran/wardrop/network"
)

// Sentinel errors returned by the metrics functions.
var (
	// ErrNilGraph indicates that a nil *network.Graph was passed.
	ErrNilGraph = errors.New("metrics: graph is nil")

	// ErrLengthMismatch indicates vectors of different lengths.
	ErrLengthMismatch = errors.New("metrics: vector length mismatch")

	// ErrBadClass indicates a class index out of range.
	ErrBadClass = errors.New("metrics: class index out of range")
)

// RelativeChange returns ‖next − prev‖ / max(‖prev‖, ε).
func RelativeChange(prev, next []float64) (float64, error) {
	rc, err := flow.RelativeChange(prev, next)
	if err != nil {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(prev), len(next))
	}

	return rc, nil
}

// RelativeGap returns (c·x − c·target) / max(c·x, ε).
func RelativeGap(costs, x, target []float64) (float64, error) {
	if len(costs) != len(x) || len(costs) != len(target) {
		return 0, fmt.Errorf("%w: costs %d, flow %d, target %d", ErrLengthMismatch, len(costs), len(x), len(target))
	}
	cx, _ := flow.Dot(costs, x)
	cy, _ := flow.Dot(costs, target)

	return (cx - cy) / math.Max(cx, flow.Epsilon), nil
}

// Cost returns tₐ(xₐ) for every link.
func Cost(g *network.Graph, x []float64) ([]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return g.Costs(x, nil, nil)
}

// CostRatio returns tₐ(xₐ) / tₐ(0) for every link. Links with zero free-flow
// cost use ε as denominator.
func CostRatio(g *network.Graph, x []float64) ([]float64, error) {
	c, err := Cost(g, x)
	if err != nil {
		return nil, err
	}
	for i, t0 := range g.FreeFlowCosts() {
		c[i] /= math.Max(t0, flow.Epsilon)
	}

	return c, nil
}

// VolumeCapacity returns xₐ / capacityₐ for every link, with capacity
// floored at latency.Epsilon.
func VolumeCapacity(g *network.Graph, x []float64) ([]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(x) != g.NumLinks() {
		return nil, fmt.Errorf("%w: flow %d, links %d", ErrLengthMismatch, len(x), g.NumLinks())
	}
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v / math.Max(g.Link(i).Capacity, latency.Epsilon)
	}

	return out, nil
}

// ClassShare returns, per link, the fraction of the total flow carried by
// class i. Empty links report 0.
func ClassShare(flows [][]float64, i int) ([]float64, error) {
	if i < 0 || i >= len(flows) {
		return nil, fmt.Errorf("%w: %d of %d", ErrBadClass, i, len(flows))
	}
	total, err := flow.Sum(nil, flows...)
	if err != nil {
		return nil, fmt.Errorf("%w: class flows differ in length", ErrLengthMismatch)
	}
	out := make([]float64, len(total))
	for a, t := range total {
		out[a] = flows[i][a] / math.Max(t, 1e-8)
	}

	return out, nil
}

// TotalCost returns Σ xₐ tₐ(xₐ).
func TotalCost(g *network.Graph, x []float64) (float64, error) {
	c, err := Cost(g, x)
	if err != nil {
		return 0, err
	}

	return flow.Dot(c, x)
}

// AverageCost returns TotalCost divided by the total demand, or 0 when the
// demand is empty.
func AverageCost(g *network.Graph, x []float64, d *network.Demand) (float64, error) {
	tc, err := TotalCost(g, x)
	if err != nil {
		return 0, err
	}
	if d == nil || d.Total() == 0 {
		return 0, nil
	}

	return tc / d.Total(), nil
}

// FreeFlowCost returns Σ volume × free-flow shortest path cost.
func FreeFlowCost(g *network.Graph, d *network.Demand) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	res, err := aon.Assign(g, g.FreeFlowCosts(), d)
	if err != nil {
		return 0, err
	}

	return res.PathCost, nil
}
