// Package aon implements all-or-nothing traffic assignment: the shortest-path
// oracle of every equilibrium solver in this module.
//
// Given a network.Graph, a per-link cost vector and a network.Demand, an
// all-or-nothing assignment loads the whole volume of every OD pair onto one
// shortest path under the fixed costs. The result is the extreme point of the
// feasible flow set that minimises the linearised objective, which is exactly
// the direction-finding step of Frank-Wolfe.
//
// Overview:
//
//   - One dijkstra search per origin, stopped as soon as all of the origin's
//     destinations are settled.
//   - Origins are grouped into batches of BatchSize (the “q” parameter). With
//     Workers > 1 the batches run in parallel: batch b always goes to worker
//     b mod Workers, each worker accumulates into a private buffer, and the
//     buffers are summed in worker order. The output never depends on
//     goroutine scheduling.
//   - The Assigner keeps one dijkstra.Searcher and one buffer per worker, so a
//     solver calling Assign once per iteration allocates nothing after New.
//
// Errors:
//
//   - ErrNilGraph, ErrNilDemand:  missing inputs.
//   - ErrDemandMismatch:          demand built for a different node table.
//   - ErrFlowLength:              destination vector of the wrong length.
//   - ErrUnreachable:             an OD pair with positive volume has no path.
//     This is a configuration error; callers must not retry.
//   - dijkstra.ErrCostLength, dijkstra.ErrNegativeWeight: invalid cost vector.
//
// Complexity: O(origins · (V + E) log V) time, O(workers · (V + E)) space.
package aon
