package frankwolfe

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilGraph indicates that a nil *network.Graph was passed.
	ErrNilGraph = errors.New("frankwolfe: graph is nil")

	// ErrNilDemand indicates that a nil *network.Demand was passed.
	ErrNilDemand = errors.New("frankwolfe: demand is nil")

	// ErrDemandMismatch indicates a demand built for a graph with another node table.
	ErrDemandMismatch = errors.New("frankwolfe: demand does not match graph")

	// ErrBadMaxIter indicates MaxIter < 1.
	ErrBadMaxIter = errors.New("frankwolfe: MaxIter must be ≥ 1")

	// ErrBadStop indicates a negative or NaN stopping tolerance.
	ErrBadStop = errors.New("frankwolfe: Stop must be a non-negative number")

	// ErrBackgroundLength indicates a background flow whose length differs from NumLinks.
	ErrBackgroundLength = errors.New("frankwolfe: background flow length does not match link count")

	// ErrInitialFlowLength indicates a warm-start flow whose length differs from NumLinks.
	ErrInitialFlowLength = errors.New("frankwolfe: initial flow length does not match link count")

	// ErrBadFlow indicates a background or initial flow with a negative or non-finite entry.
	ErrBadFlow = errors.New("frankwolfe: flow entries must be finite and non-negative")

	// ErrInfeasibleStart indicates a warm-start flow that does not carry the demand.
	ErrInfeasibleStart = errors.New("frankwolfe: initial flow violates demand conservation")

	// ErrUnknownStrategy indicates an unrecognised strategy name.
	ErrUnknownStrategy = errors.New("frankwolfe: unknown strategy")
)

// Strategy selects the step rule of the solver.
type Strategy int

const (
	// Schedule uses the predetermined step 2/(k+2), guarded by a line search.
	Schedule Strategy = iota
	// LineSearch minimises the potential along the Frank-Wolfe direction.
	LineSearch
	// Fukushima averages the last Past targets when that gives a steeper direction.
	Fukushima
)

// String returns the configuration name of the strategy.
func (s Strategy) String() string {
	switch s {
	case Schedule:
		return "schedule"
	case LineSearch:
		return "line-search"
	case Fukushima:
		return "fukushima"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// StrategyFromString parses a strategy name as produced by String.
func StrategyFromString(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "schedule":
		return Schedule, nil
	case "line-search", "linesearch":
		return LineSearch, nil
	case "fukushima":
		return Fukushima, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Status is the terminal state of a solve.
type Status int

const (
	// Converged means the relative flow change fell below Stop.
	Converged Status = iota
	// MaxIterReached means the iteration ceiling was hit first.
	MaxIterReached
)

func (s Status) String() string {
	if s == Converged {
		return "converged"
	}
	return "max-iter-reached"
}

// Options configures Solve.
//
// MaxIter         – iteration ceiling (≥ 1). Default 100.
// Stop            – relative flow-change tolerance (≥ 0). Default 1e-8.
// Strategy        – step rule. Default LineSearch.
// BatchSize       – origins per all-or-nothing batch (q). Default 1.
// Workers         – all-or-nothing worker goroutines. Default 1.
// Past            – Fukushima averaging window. Default 10.
// LineSearchSteps – safeguarded Newton steps of the line search. Default 40.
// Background      – flow of other classes added to x before costing. Default nil.
// InitialFlow     – warm start; must route the same demand. Default nil.
// Display         – 0 silent, ≥ 1 one Info record per iteration.
// Logger          – destination of progress records. Default slog.Default().
// Observer        – called after every iteration. Default nil.
type Options struct {
	MaxIter         int
	Stop            float64
	Strategy        Strategy
	BatchSize       int
	Workers         int
	Past            int
	LineSearchSteps int
	Background      []float64
	InitialFlow     []float64
	Display         int
	Logger          *slog.Logger
	Observer        func(Iteration)
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns the default solver configuration.
func DefaultOptions() Options {
	return Options{
		MaxIter:         100,
		Stop:            1e-8,
		Strategy:        LineSearch,
		BatchSize:       1,
		Workers:         1,
		Past:            10,
		LineSearchSteps: 40,
	}
}

// WithMaxIter sets the iteration ceiling. Values < 1 make Solve return ErrBadMaxIter.
func WithMaxIter(n int) Option {
	return func(o *Options) { o.MaxIter = n }
}

// WithStop sets the relative flow-change tolerance. Negative or NaN values
// make Solve return ErrBadStop.
func WithStop(tol float64) Option {
	return func(o *Options) { o.Stop = tol }
}

// WithStrategy selects the step rule.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithBatchSize sets the number of origins per all-or-nothing batch. Panics if q < 1.
func WithBatchSize(q int) Option {
	if q < 1 {
		panic(fmt.Sprintf("frankwolfe: WithBatchSize(%d): batch size must be ≥ 1", q))
	}
	return func(o *Options) { o.BatchSize = q }
}

// WithWorkers sets the number of all-or-nothing workers. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("frankwolfe: WithWorkers(%d): worker count must be ≥ 1", n))
	}
	return func(o *Options) { o.Workers = n }
}

// WithPast sets the Fukushima averaging window. Panics if p < 1.
func WithPast(p int) Option {
	if p < 1 {
		panic(fmt.Sprintf("frankwolfe: WithPast(%d): window must be ≥ 1", p))
	}
	return func(o *Options) { o.Past = p }
}

// WithLineSearchSteps caps the line search steps. Panics if n < 1.
func WithLineSearchSteps(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("frankwolfe: WithLineSearchSteps(%d): steps must be ≥ 1", n))
	}
	return func(o *Options) { o.LineSearchSteps = n }
}

// WithBackground adds a fixed flow to x whenever link costs are evaluated.
// The slice is read, never modified.
func WithBackground(b []float64) Option {
	return func(o *Options) { o.Background = b }
}

// WithInitialFlow starts the iteration from x0 instead of a free-flow
// assignment. x0 is copied.
func WithInitialFlow(x0 []float64) Option {
	return func(o *Options) { o.InitialFlow = x0 }
}

// WithDisplay sets the verbosity level.
func WithDisplay(level int) Option {
	return func(o *Options) { o.Display = level }
}

// WithLogger sets the logger used when Display ≥ 1.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithObserver registers a callback invoked after every iteration.
func WithObserver(fn func(Iteration)) Option {
	return func(o *Options) { o.Observer = fn }
}

// Iteration describes one completed iteration.
//
// Gap is the relative flow change used for stopping; DualityGap is the
// relative duality gap measured at the start of the iteration. Fallback is set
// when a Schedule step was replaced by a line search.
type Iteration struct {
	K          int
	Step       float64
	Gap        float64
	DualityGap float64
	Potential  float64
	Fallback   bool
}

// Result is the outcome of Solve.
//
// Flow is the class flow (background excluded). Gap and DualityGap are those
// of the last iteration; Potential is Φ(Flow) relative to the background.
type Result struct {
	Flow       []float64
	Iterations int
	Gap        float64
	DualityGap float64
	Potential  float64
	Status     Status
}

// Converged reports whether the solver met its tolerance.
func (r *Result) Converged() bool { return r.Status == Converged }
