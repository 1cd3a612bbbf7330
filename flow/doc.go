// Package flow implements the link-flow vector algebra shared by the
// equilibrium solvers.
//
// A flow vector is a []float64 with one non-negative entry per link of a
// network.Graph, in link-table order. The package never allocates hidden
// state: every operation writes into a caller-supplied destination (or
// allocates one when dst is nil) so solvers can reuse their buffers across
// iterations.
//
// # Operations
//
//	Zeros(n)                      – fresh all-zero vector
//	Clone(x)                      – copy
//	Sum(dst, vs...)               – Σ vs (reduction of per-class flows)
//	Combine(dst, x, y, s)         – (1−s)·x + s·y, the Frank-Wolfe update
//	AddScaled(dst, s, w)          – dst += s·w
//	Norm(x), Distance(x, y)       – Euclidean norms
//	Dot(x, y), Total(x)           – inner product and plain sum
//	ClampNonNegative(x)           – zero out round-off negatives in place
//	RelativeChange(prev, next)    – ‖next − prev‖ / max(‖prev‖, Epsilon)
//
// # Numerical policy
//
// Denominators are floored at Epsilon; round-off negatives produced by convex
// combinations are clamped to zero rather than reported.
//
// # Errors
//
// Length mismatches are reported as ErrLengthMismatch; the gonum routines
// underneath would otherwise panic.
package flow
