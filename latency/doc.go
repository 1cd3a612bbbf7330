// Package latency provides volume-delay functions: the per-link travel cost
// t(x) as a function of the link flow x.
//
// Overview:
//
//   - Every function is monotone non-decreasing in x and equals the free-flow
//     travel time at x = 0.
//   - Besides the cost itself, each Func exposes its derivative (used by step-size
//     selection) and its integral ∫₀ˣ t(s) ds, which is the per-link term of the
//     Beckmann potential minimised by Frank-Wolfe.
//
// Families:
//
//   - Polynomial: t(x) = Σ aₖ xᵏ with non-negative coefficients. a₀ is the free-flow
//     time. This is the representation used by most benchmark networks.
//   - BPR: t(x) = t₀ (1 + α (x/c)^β), the Bureau of Public Roads curve. Works for
//     non-integer β as well; BPRPolynomial expands integer β into a Polynomial.
//   - Penalized: Scale·Base(x) + Add. Wraps any other Func to model a traveler
//     class that perceives some links as more expensive ("cognitive cost").
//
// Numerical policy:
//
//   - Negative flows are evaluated as zero.
//   - A capacity below Epsilon is floored at Epsilon rather than dividing by zero;
//     such a link behaves as (almost) closed.
//   - BPR derivatives with β < 1 are evaluated at max(x, Epsilon).
//
// Errors (sentinel):
//
//   - ErrNotFinite           a parameter is NaN or ±Inf.
//   - ErrNegativeCoefficient a polynomial coefficient or a BPR parameter is negative.
//   - ErrEmptyPolynomial     a polynomial has no coefficients.
//   - ErrBadShape            a Penalized scale is not positive or its offset is negative.
//   - ErrNilBase             a Penalized function has no base.
package latency
