package metrics

import (
	"fmt"

	"github.com/katalvlaran/wardrop/flow"
	"github.com/katalvlaran/wardrop/network"
)

// ClassFlow is the equilibrium flow of one traveler class and the volume it routes.
type ClassFlow struct {
	Name   string
	Flow   []float64
	Demand float64
}

// ClassSummary holds the statistics of one class.
//
// AverageCost is Σₐ fₐ tₐ(xₐ) / Demand with x the total flow: what the class
// actually experiences, whatever it perceives. SmallShare is the fraction of
// the class's link flow that uses small-capacity links.
type ClassSummary struct {
	Name        string
	Demand      float64
	AverageCost float64
	SmallShare  float64
}

// Summary aggregates a multi-class equilibrium.
type Summary struct {
	Classes     []ClassSummary
	TotalCost   float64
	AverageCost float64
}

// Summarize evaluates every class at the total flow. small marks the
// small-capacity links (see network.Graph.Perceived) and may be nil.
func Summarize(g *network.Graph, classes []ClassFlow, small []bool) (Summary, error) {
	var out Summary
	if g == nil {
		return out, ErrNilGraph
	}
	n := g.NumLinks()
	if small != nil && len(small) != n {
		return out, fmt.Errorf("%w: mask %d, links %d", ErrLengthMismatch, len(small), n)
	}

	// 1) Total flow and physical costs.
	total := flow.Zeros(n)
	for _, c := range classes {
		if len(c.Flow) != n {
			return out, fmt.Errorf("%w: class %q has %d entries, links %d", ErrLengthMismatch, c.Name, len(c.Flow), n)
		}
		_ = flow.AddScaled(total, 1, c.Flow)
	}
	costs, err := g.Costs(total, nil, nil)
	if err != nil {
		return out, err
	}

	// 2) Per class.
	var demand float64
	for _, c := range classes {
		cs := ClassSummary{Name: c.Name, Demand: c.Demand}
		spent, _ := flow.Dot(costs, c.Flow)
		if c.Demand > 0 {
			cs.AverageCost = spent / c.Demand
		}
		var onSmall, all float64
		for a, f := range c.Flow {
			all += f
			if small != nil && small[a] {
				onSmall += f
			}
		}
		if all > 0 {
			cs.SmallShare = onSmall / all
		}
		out.Classes = append(out.Classes, cs)
		out.TotalCost += spent
		demand += c.Demand
	}
	if demand > 0 {
		out.AverageCost = out.TotalCost / demand
	}

	return out, nil
}
