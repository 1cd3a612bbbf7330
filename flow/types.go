package flow

import "errors"

// Epsilon floors every denominator used in relative norms.
const Epsilon = 1e-12

// ErrLengthMismatch is returned when two flow vectors differ in length.
var ErrLengthMismatch = errors.New("flow: vector length mismatch")

// ErrBadStep is returned by Combine when the step size lies outside [0, 1],
// which would leave the convex hull of feasible flows.
var ErrBadStep = errors.New("flow: step size must lie in [0, 1]")
