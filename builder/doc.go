// Package builder provides reusable “functional-options”-style constructors
// for synthetic road networks used by tests, benchmarks and examples.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildNetwork:      resolves options, runs constructors over a shared
//     link table and validates it through network.NewGraph.
//     – Constructor:       a function that appends links to the table.
//   - Topologies:
//     – Path, Cycle:       corridors and ring roads (WithTwoWay for both directions).
//     – Parallel:          k routes between one origin and one destination.
//     – Grid:              two-way street grid, row-major node ids.
//     – Complete:          every ordered pair of nodes.
//     – RandomSparse:      independent links with probability p (seeded).
//     – Braess:            the four-node paradox network with linear latencies.
//   - Link attribute distributions (WeightFn implementations):
//     – ConstantWeightFn, UniformWeightFn, NormalWeightFn.
//   - Demand helpers:
//     – AllToAll:          equal volume between every ordered node pair.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order give the same
//     link table, attributes included.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel errors (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed) wrapped
//     with the constructor name; they never panic.
//
// Generated links use a BPR latency with capacity and free-flow time drawn
// from the configured samplers (defaults: DefaultCapacity and
// DefaultFreeFlowTime) and the shape set by WithBPRShape.
package builder
