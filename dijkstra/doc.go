// Package dijkstra provides a precise, allocation-conscious implementation of
// Dijkstra's shortest-path algorithm on road networks whose link costs are
// recomputed at every equilibrium iteration.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost tree from a single source node to all
//     reachable nodes in O((V + E) log V) time, where V = |nodes| and E = |links|.
//   - Link costs are supplied as a []float64 aligned with the network.Graph link
//     table, so the same graph can be searched under any congestion state.
//   - Parallel links between the same pair of nodes are supported: the tree
//     records the link index (PredLink), not just the predecessor node.
//
// When to use:
//
//   - As the inner step of the all-or-nothing oracle (package aon), which runs
//     one search per origin and stops as soon as all of its destinations are settled.
//   - Any time a shortest path under a given cost vector is needed.
//
// Key features:
//
//   - Functional options: Source, WithTargets, WithMaxDistance.
//   - Searcher: binds one validated cost vector (Reset) and serves many sources
//     (From) without reallocating distance, predecessor or heap storage.
//   - Deterministic tie-breaking: equal-cost alternatives resolve in link-table order.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil *network.Graph.
//   - ErrVertexNotFound:  source or target index out of range.
//   - ErrCostLength:      cost vector length differs from NumLinks.
//   - ErrNegativeWeight:  a negative or NaN cost was found by the O(E) pre-scan.
//   - ErrBadMaxDistance:  (via panic) WithMaxDistance with a negative value.
//
// Thread safety:
//
//   - Dijkstra allocates its own state and may be called concurrently.
//   - A Searcher is single-goroutine; the aon package keeps one per worker.
package dijkstra
