// Package network defines the road-network data model consumed by the
// equilibrium solvers: an ordered, validated table of links and an
// origin-destination demand set.
//
// Overview:
//
//   - Graph binds each link's endpoints, capacity, free-flow time and
//     volume-delay function (latency.Func) to a fixed index. That index is the
//     position of the link in every flow vector and every cost vector; all
//     consumers check vector lengths against NumLinks and never assume them.
//   - External node ids are arbitrary integers. NewGraph maps them to a dense
//     internal index [0, NumNodes) in ascending id order and builds a compressed
//     out-adjacency (CSR) used by shortest-path searches.
//   - Demand holds (origin, destination, volume) triples resolved to internal
//     node indices and grouped by origin, which is the unit of work of the
//     all-or-nothing oracle.
//
// Cost evaluation:
//
//   - Costs, Derivatives and Potential take the class's own flow x and an
//     optional background flow b (the other classes' flow on the same links).
//     The link is priced at x+b; the potential of a class is
//     Σₐ ∫_{bₐ}^{bₐ+xₐ} tₐ(s) ds, so a single-class problem is simply b = nil.
//
// Cognitive cost:
//
//   - Perceived returns a copy of the graph in which every link whose capacity is
//     below a threshold carries an additive and/or multiplicative penalty. The
//     transform is static: it is applied once, before solving.
//
// Errors (sentinel):
//
//   - ErrEmptyGraph, ErrNegativeCapacity, ErrBadFreeFlowTime, ErrBadLatency,
//     ErrUnknownNode, ErrBadVolume, ErrLengthMismatch, ErrBadPenalty, ErrBadShare.
package network
