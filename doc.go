// Package wardrop computes user-equilibrium traffic assignments on road
// networks with congestion-dependent link costs.
//
// A traffic equilibrium (Wardrop's first principle) is a link flow in which
// no traveler can shorten their trip by switching route: every used route
// between an origin and a destination has the same, minimal, cost.
//
// The module is organised as small packages, bottom-up:
//
//	latency/    - volume-delay functions: BPR, polynomial, penalised
//	network/    - immutable link table with CSR adjacency, OD demand, cognitive perception
//	flow/       - link-flow vector algebra
//	dijkstra/   - single-source shortest paths over a cost vector (reusable Searcher)
//	aon/        - all-or-nothing loading with batched, parallel origins
//	frankwolfe/ - single-class solver: schedule, line-search and Fukushima steps
//	multiclass/ - Gauss-Seidel / Jacobi fixed point over traveler classes
//	metrics/    - gaps, costs, ratios and per-class summaries
//	builder/    - synthetic networks (path, grid, parallel routes, Braess)
//	scenario/   - YAML scenario decoding
//	cmd/wardrop - command line solver writing link flows as CSV
//
// Quick example (two parallel roads, 30 travelers):
//
//	fast, _ := latency.NewPolynomial(10, 1) // t = 10 + x
//	slow, _ := latency.NewPolynomial(20, 1) // t = 20 + x
//	g, _ := network.NewGraph([]network.Link{
//		{From: 0, To: 1, Capacity: 100, FreeFlowTime: 10, Latency: fast},
//		{From: 0, To: 1, Capacity: 100, FreeFlowTime: 20, Latency: slow},
//	})
//	d, _ := network.NewDemand(g, []network.OD{{Origin: 0, Destination: 1, Volume: 30}})
//	res, _ := frankwolfe.Solve(g, d)
//	// res.Flow ≈ [20 10]: both roads cost 30
//
// See examples/ for the Braess paradox and cmd/wardrop for scenario files.
package wardrop
