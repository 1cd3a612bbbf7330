// Package multiclass computes the joint equilibrium of several traveler
// classes that share the same physical links but perceive their costs
// differently.
//
// Every class is a (graph, demand) pair. The graphs must share one topology
// (link i joins the same nodes in every class); they differ only in their
// latency functions, typically through network.Graph.Perceived, which adds a
// cognitive penalty to small-capacity links. A class sees the others as a
// fixed background flow: its costs are t_i(f_i + Σ_{j≠i} f_j).
//
// The joint equilibrium is the fixed point of the per-class best responses,
// reached by an outer loop around frankwolfe.Solve:
//
//   - GaussSeidel: classes are solved in order, and the running total is
//     updated after each class, so later classes see the newest flows.
//   - Jacobi: every class is solved against the total frozen at the start of
//     the cycle; the total is recomputed once at the end. The class solves are
//     independent and may run concurrently (WithParallel). Plain Jacobi can
//     oscillate between two states on symmetric classes; WithRelaxation(ω)
//     damps each update to (1−ω)·f_prev + ω·f_new from the second cycle on.
//
// After the first cycle every class solve is warm-started from the class's
// previous flow. The outer change
//
//	sqrt(Σᵢ‖fᵢ − fᵢ_prev‖²) / sqrt(Σᵢ‖fᵢ_prev‖²)
//
// is checked from the second cycle; the loop stops when it is below StopCycle
// (Converged), when it has grown Patience cycles in a row (Diverged) or after
// MaxIter cycles (MaxIterReached). None of these is an error.
//
// The decomposition of the total flow into classes is not unique when classes
// share a perception, so callers should compare totals, not class flows.
package multiclass
