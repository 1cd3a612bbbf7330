package frankwolfe

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/wardrop/aon"
	"github.com/katalvlaran/wardrop/flow"
	"github.com/katalvlaran/wardrop/metrics"
	"github.com/katalvlaran/wardrop/network"
)

// feasibilityTol bounds the relative node imbalance accepted in a warm start.
const feasibilityTol = 1e-6

// Solve computes the equilibrium flow of demand d on graph g.
//
// Validation (in order, before any iteration):
//  1. g and d must be non-nil (ErrNilGraph, ErrNilDemand).
//  2. MaxIter ≥ 1 and Stop ≥ 0 (ErrBadMaxIter, ErrBadStop).
//  3. Background and InitialFlow must have NumLinks finite, non-negative
//     entries (ErrBackgroundLength, ErrInitialFlowLength, ErrBadFlow).
//  4. d must be built for g's node table (ErrDemandMismatch).
//  5. InitialFlow must carry d: node imbalance at most feasibilityTol·max(1, total)
//     (ErrInfeasibleStart).
//
// An OD pair without a path is reported as a wrapped aon.ErrUnreachable.
func Solve(g *network.Graph, d *network.Demand, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	r, err := newRunner(g, d, cfg)
	if err != nil {
		return nil, err
	}

	return r.run()
}

// runner holds the state of one solve. All vectors have NumLinks entries.
type runner struct {
	g    *network.Graph
	d    *network.Demand
	opts Options
	log  *slog.Logger
	asg  *aon.Assigner
	bg   []float64

	x       []float64 // current flow
	y       []float64 // all-or-nothing target
	w       []float64 // search direction
	c       []float64 // costs at x + bg
	trial   []float64 // Schedule candidate
	prev    []float64 // x before the move
	point   []float64 // x + s·w during the line search
	scratch []float64 // costs or derivatives at point

	past     [][]float64 // Fukushima ring of recent targets
	pastLen  int
	pastNext int
	mean     []float64

	potential float64
}

func newRunner(g *network.Graph, d *network.Demand, cfg Options) (*runner, error) {
	// 1) Inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if d == nil {
		return nil, ErrNilDemand
	}

	// 2) Scalars.
	if cfg.MaxIter < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadMaxIter, cfg.MaxIter)
	}
	if math.IsNaN(cfg.Stop) || cfg.Stop < 0 {
		return nil, fmt.Errorf("%w: got %g", ErrBadStop, cfg.Stop)
	}

	// 3) Vectors.
	n := g.NumLinks()
	if cfg.Background != nil {
		if len(cfg.Background) != n {
			return nil, fmt.Errorf("%w: got %d, want %d", ErrBackgroundLength, len(cfg.Background), n)
		}
		if i := firstBad(cfg.Background); i >= 0 {
			return nil, fmt.Errorf("%w: background[%d]=%g", ErrBadFlow, i, cfg.Background[i])
		}
	}
	if cfg.InitialFlow != nil {
		if len(cfg.InitialFlow) != n {
			return nil, fmt.Errorf("%w: got %d, want %d", ErrInitialFlowLength, len(cfg.InitialFlow), n)
		}
		if i := firstBad(cfg.InitialFlow); i >= 0 {
			return nil, fmt.Errorf("%w: initial[%d]=%g", ErrBadFlow, i, cfg.InitialFlow[i])
		}
	}

	// 4) Demand against graph.
	asg, err := aon.New(g, d, aon.WithBatchSize(cfg.BatchSize), aon.WithWorkers(cfg.Workers))
	if errors.Is(err, aon.ErrDemandMismatch) {
		return nil, fmt.Errorf("%w: %w", ErrDemandMismatch, err)
	}
	if err != nil {
		return nil, err
	}

	// 5) Warm start against demand.
	if cfg.InitialFlow != nil {
		worst, err := d.Imbalance(g, cfg.InitialFlow)
		if err != nil {
			return nil, err
		}
		if worst > feasibilityTol*math.Max(1, d.Total()) {
			return nil, fmt.Errorf("%w: node imbalance %g", ErrInfeasibleStart, worst)
		}
	}

	r := &runner{
		g:       g,
		d:       d,
		opts:    cfg,
		log:     cfg.Logger,
		asg:     asg,
		bg:      cfg.Background,
		x:       flow.Zeros(n),
		y:       flow.Zeros(n),
		w:       flow.Zeros(n),
		c:       flow.Zeros(n),
		prev:    flow.Zeros(n),
		point:   flow.Zeros(n),
		scratch: flow.Zeros(n),
	}
	if r.log == nil {
		r.log = slog.Default()
	}
	switch cfg.Strategy {
	case Schedule:
		r.trial = flow.Zeros(n)
	case Fukushima:
		r.past = make([][]float64, cfg.Past)
		r.mean = flow.Zeros(n)
	}

	return r, nil
}

// firstBad returns the index of the first negative or non-finite entry, or -1.
func firstBad(x []float64) int {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return i
		}
	}

	return -1
}

// run executes INIT and the ITERATE loop.
func (r *runner) run() (*Result, error) {
	res := &Result{Flow: r.x, Status: MaxIterReached}

	// 1) Nothing to route: the zero flow is the equilibrium.
	if r.d.Total() == 0 {
		res.Status = Converged
		return res, nil
	}

	// 2) INIT: warm start, or all-or-nothing at t(0 + b).
	if r.opts.InitialFlow != nil {
		copy(r.x, r.opts.InitialFlow)
	} else {
		// y is still zero here, so this evaluates t(0 + b).
		if _, err := r.g.Costs(r.y, r.bg, r.c); err != nil {
			return nil, err
		}
		if _, err := r.asg.Assign(r.c, r.x); err != nil {
			return nil, fmt.Errorf("initial assignment: %w", err)
		}
	}
	var err error
	if r.potential, err = r.g.Potential(r.x, r.bg); err != nil {
		return nil, err
	}

	// 3) ITERATE.
	for k := 1; k <= r.opts.MaxIter; k++ {
		it, err := r.iterate(k)
		if err != nil {
			return nil, err
		}
		res.Iterations = k
		res.Gap = it.Gap
		res.DualityGap = it.DualityGap

		if r.opts.Display >= 1 {
			r.log.Info("frank-wolfe iteration",
				"iteration", it.K,
				"step", it.Step,
				"gap", it.Gap,
				"duality_gap", it.DualityGap,
				"potential", it.Potential)
		}
		if r.opts.Observer != nil {
			r.opts.Observer(it)
		}
		if it.Gap < r.opts.Stop {
			res.Status = Converged
			break
		}
	}
	res.Potential = r.potential

	if r.opts.Display >= 1 {
		r.log.Info("frank-wolfe finished",
			"status", res.Status.String(),
			"iterations", res.Iterations,
			"gap", res.Gap)
	}

	return res, nil
}

// iterate performs iteration k and updates x in place.
func (r *runner) iterate(k int) (Iteration, error) {
	it := Iteration{K: k}

	// 1) Linearise: costs at the current total flow, then the AON target.
	if _, err := r.g.Costs(r.x, r.bg, r.c); err != nil {
		return it, err
	}
	if _, err := r.asg.Assign(r.c, r.y); err != nil {
		return it, fmt.Errorf("iteration %d: %w", k, err)
	}
	var err error
	if it.DualityGap, err = metrics.RelativeGap(r.c, r.x, r.y); err != nil {
		return it, err
	}

	// 2) Direction.
	if _, err = flow.Sub(r.w, r.y, r.x); err != nil {
		return it, err
	}
	if r.opts.Strategy == Fukushima {
		r.average()
	}

	// 3) Step.
	switch r.opts.Strategy {
	case Schedule:
		it.Step = 2 / float64(k+2)
		copy(r.trial, r.x)
		_ = flow.AddScaled(r.trial, it.Step, r.w)
		phi, err := r.g.Potential(r.trial, r.bg)
		if err != nil {
			return it, err
		}
		if phi > r.potential {
			it.Step = r.lineSearch()
			it.Fallback = true
		}
	default:
		it.Step = r.lineSearch()
	}

	// 4) Move and measure.
	copy(r.prev, r.x)
	_ = flow.AddScaled(r.x, it.Step, r.w)
	flow.ClampNonNegative(r.x)
	if it.Gap, err = metrics.RelativeChange(r.prev, r.x); err != nil {
		return it, err
	}
	if r.potential, err = r.g.Potential(r.x, r.bg); err != nil {
		return it, err
	}
	it.Potential = r.potential

	return it, nil
}

// average records the current target and, once Past targets are known,
// replaces w by mean(targets) − x when that direction descends more steeply
// per unit length.
func (r *runner) average() {
	p := r.opts.Past
	if r.past[r.pastNext] == nil {
		r.past[r.pastNext] = flow.Zeros(len(r.y))
	}
	copy(r.past[r.pastNext], r.y)
	r.pastNext = (r.pastNext + 1) % p
	if r.pastLen < p {
		r.pastLen++
		return
	}

	_, _ = flow.Sum(r.mean, r.past...)
	for i := range r.mean {
		r.mean[i] = r.mean[i]/float64(p) - r.x[i]
	}
	nw, nv := flow.Norm(r.w), flow.Norm(r.mean)
	if nw == 0 || nv == 0 {
		return
	}
	cw, _ := flow.Dot(r.c, r.w)
	cv, _ := flow.Dot(r.c, r.mean)
	if cv/nv < cw/nw {
		copy(r.w, r.mean)
	}
}
