// Package frankwolfe computes the single-class Wardrop user equilibrium of a
// road network with the Frank-Wolfe family of convex optimisation methods.
//
// The equilibrium flow minimises the Beckmann potential
//
//	Φ(x) = Σₐ ∫_{bₐ}^{bₐ+xₐ} tₐ(u) du
//
// over the set of link flows that route the demand, where b is an optional
// background flow of other traveler classes (see package multiclass). Each
// iteration linearises Φ at the current flow, solves the linear subproblem with
// an all-or-nothing assignment (package aon) and moves toward its solution.
//
// Strategies (one solver, three step rules):
//
//   - Schedule:   the predetermined step 2/(k+2). If that step would increase
//     the potential, the iteration falls back to a line search, so the
//     potential never increases.
//   - LineSearch: exact minimisation of Φ along the direction: Newton on
//     φ'(s) = Σ wₐ tₐ(xₐ + s·wₐ + bₐ) using φ''(s) from Graph.Derivatives,
//     safeguarded by bisection of the bracketing interval.
//   - Fukushima:  LineSearch along the steeper (in normalised directional
//     derivative) of the Frank-Wolfe direction and the direction toward the
//     mean of the last Past all-or-nothing targets.
//
// Lifecycle:
//
//	INIT → ITERATE → CONVERGED | MAX_ITER_REACHED
//
// INIT loads the demand at the free-flow costs t(0 + b), or starts from
// WithInitialFlow. ITERATE stops when the relative flow change
// ‖x_k − x_{k−1}‖ / ‖x_{k−1}‖ falls below Stop (Converged) or after MaxIter
// iterations (MaxIterReached, which is a result, not an error). Every
// returned flow is feasible: non-negative and conserving the demand.
//
// The relative duality gap (c·x − c·y) / c·x is reported per iteration as a
// diagnostic; it does not stop the solver.
//
// Configuration errors (nil inputs, lengths, unreachable OD pairs) are
// returned before the first iteration and are never retried.
package frankwolfe
