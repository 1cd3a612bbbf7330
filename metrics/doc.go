// Package metrics evaluates equilibrium flows: convergence measures used as
// stopping criteria and the per-link and per-class statistics reported after a
// solve.
//
// Convergence:
//
//   - RelativeChange: ‖next − prev‖ / ‖prev‖, the stopping test of the solvers.
//   - RelativeGap:    (c·x − c·y) / c·x for a flow x and its all-or-nothing
//     response y under costs c. Zero exactly at a Wardrop equilibrium.
//
// Per link:
//
//   - Cost:           tₐ(xₐ).
//   - CostRatio:      tₐ(xₐ) / tₐ(0), congestion relative to free flow.
//   - VolumeCapacity: xₐ / capacityₐ.
//   - ClassShare:     fraction of each link's flow carried by one class.
//
// Aggregates:
//
//   - TotalCost:    Σ xₐ tₐ(xₐ), the total travel time.
//   - AverageCost:  TotalCost / total demand.
//   - FreeFlowCost: Σ volume × free-flow shortest path cost, the uncongested
//     lower bound of TotalCost.
//   - Summarize:    per-class average physical cost and share of flow on
//     small-capacity links.
//
// All costs are physical: they use the latencies of the graph passed in, not
// a class's perceived graph.
package metrics
