package multiclass

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/wardrop/frankwolfe"
	"github.com/katalvlaran/wardrop/network"
)

// Sentinel errors returned by Solve.
var (
	// ErrNoClasses indicates an empty class list.
	ErrNoClasses = errors.New("multiclass: no classes")

	// ErrNilClass indicates a class with a nil graph or demand.
	ErrNilClass = errors.New("multiclass: class graph or demand is nil")

	// ErrTopologyMismatch indicates class graphs that do not share one link table.
	ErrTopologyMismatch = errors.New("multiclass: class graphs differ in topology")

	// ErrBadMaxIter indicates MaxIter < 1.
	ErrBadMaxIter = errors.New("multiclass: MaxIter must be ≥ 1")

	// ErrBadStopCycle indicates a negative or NaN outer tolerance.
	ErrBadStopCycle = errors.New("multiclass: StopCycle must be a non-negative number")

	// ErrBadRelaxation indicates a relaxation factor outside (0, 1].
	ErrBadRelaxation = errors.New("multiclass: relaxation must lie in (0, 1]")

	// ErrUnknownScheme indicates an unrecognised scheme name.
	ErrUnknownScheme = errors.New("multiclass: unknown scheme")
)

// Class is one traveler population: its perceived network and its demand.
type Class struct {
	Name   string
	Graph  *network.Graph
	Demand *network.Demand
}

// Scheme selects the outer fixed-point iteration.
type Scheme int

const (
	// GaussSeidel updates the shared total after every class.
	GaussSeidel Scheme = iota
	// Jacobi solves all classes against the total of the previous cycle.
	Jacobi
)

// String returns the configuration name of the scheme.
func (s Scheme) String() string {
	switch s {
	case GaussSeidel:
		return "gauss-seidel"
	case Jacobi:
		return "jacobi"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

// SchemeFromString parses a scheme name as produced by String.
func SchemeFromString(name string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gauss-seidel", "gaussseidel", "gauss_seidel":
		return GaussSeidel, nil
	case "jacobi":
		return Jacobi, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
}

// Status is the terminal state of the outer loop.
type Status int

const (
	// Converged means the outer change fell below StopCycle.
	Converged Status = iota
	// MaxIterReached means the cycle ceiling was hit first.
	MaxIterReached
	// Diverged means the outer change grew for Patience consecutive cycles.
	Diverged
)

func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case Diverged:
		return "diverged"
	default:
		return "max-iter-reached"
	}
}

// Options configures Solve.
type Options struct {
	Scheme     Scheme
	MaxIter    int     // outer cycles, default 10
	StopCycle  float64 // outer tolerance, default 1e-3
	Inner      []frankwolfe.Option
	Relaxation float64 // Jacobi damping ω ∈ (0, 1], default 1
	Parallel   bool    // Jacobi only
	Patience   int     // growing cycles before Diverged, default 5
	Display    int
	Logger     *slog.Logger
	Observer   func(Cycle)
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns Gauss-Seidel with 10 cycles and tolerance 1e-3.
func DefaultOptions() Options {
	return Options{
		Scheme:     GaussSeidel,
		MaxIter:    10,
		StopCycle:  1e-3,
		Relaxation: 1,
		Patience:   5,
	}
}

// WithScheme selects Gauss-Seidel or Jacobi.
func WithScheme(s Scheme) Option {
	return func(o *Options) { o.Scheme = s }
}

// WithMaxIter sets the cycle ceiling.
func WithMaxIter(n int) Option {
	return func(o *Options) { o.MaxIter = n }
}

// WithStopCycle sets the outer tolerance.
func WithStopCycle(tol float64) Option {
	return func(o *Options) { o.StopCycle = tol }
}

// WithInner appends options passed to every class solve. Background,
// initial flow and (when Display ≥ 2) display level are set by the outer loop.
func WithInner(opts ...frankwolfe.Option) Option {
	return func(o *Options) { o.Inner = append(o.Inner, opts...) }
}

// WithRelaxation sets the Jacobi damping factor ω.
func WithRelaxation(omega float64) Option {
	return func(o *Options) { o.Relaxation = omega }
}

// WithParallel runs Jacobi class solves concurrently. Ignored by Gauss-Seidel.
func WithParallel() Option {
	return func(o *Options) { o.Parallel = true }
}

// WithPatience sets how many consecutive growing cycles mean divergence.
// Panics if n < 1.
func WithPatience(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("multiclass: WithPatience(%d): patience must be ≥ 1", n))
	}
	return func(o *Options) { o.Patience = n }
}

// WithDisplay sets the verbosity; level−1 is forwarded to class solves.
func WithDisplay(level int) Option {
	return func(o *Options) { o.Display = level }
}

// WithLogger sets the logger for outer and inner progress records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithObserver registers a callback invoked after every cycle.
func WithObserver(fn func(Cycle)) Option {
	return func(o *Options) { o.Observer = fn }
}

// Cycle describes one completed outer cycle. Change is +Inf on the first
// cycle, which has no predecessor.
type Cycle struct {
	K      int
	Change float64
	Gap    float64
}

// Result is the outcome of Solve.
//
// Flows[i] is the flow of class i; Total is their sum. Gap is the relative
// duality gap of the last cycle, measured with each class's perceived costs
// at the total flow.
type Result struct {
	Flows  [][]float64
	Total  []float64
	Cycles int
	Change float64
	Gap    float64
	Status Status
}

// Converged reports whether the outer loop met its tolerance.
func (r *Result) Converged() bool { return r.Status == Converged }
