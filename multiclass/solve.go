package multiclass

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/wardrop/aon"
	"github.com/katalvlaran/wardrop/flow"
	"github.com/katalvlaran/wardrop/frankwolfe"
	"github.com/katalvlaran/wardrop/metrics"
)

// Solve computes the joint equilibrium of classes.
//
// Validation (in order):
//  1. At least one class (ErrNoClasses), each with graph and demand (ErrNilClass).
//  2. All graphs share the topology of the first (ErrTopologyMismatch).
//  3. MaxIter ≥ 1, StopCycle ≥ 0, Relaxation ∈ (0, 1].
//
// Errors of a class solve are returned wrapped with the class name.
func Solve(classes []Class, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(classes, cfg); err != nil {
		return nil, err
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	o := &outer{classes: classes, opts: cfg}

	return o.run()
}

func validate(classes []Class, cfg Options) error {
	if len(classes) == 0 {
		return ErrNoClasses
	}
	for i, c := range classes {
		if c.Graph == nil || c.Demand == nil {
			return fmt.Errorf("%w: class %d (%q)", ErrNilClass, i, c.Name)
		}
		if i > 0 && !classes[0].Graph.SameTopology(c.Graph) {
			return fmt.Errorf("%w: class %d (%q)", ErrTopologyMismatch, i, c.Name)
		}
	}
	if cfg.MaxIter < 1 {
		return fmt.Errorf("%w: got %d", ErrBadMaxIter, cfg.MaxIter)
	}
	if math.IsNaN(cfg.StopCycle) || cfg.StopCycle < 0 {
		return fmt.Errorf("%w: got %g", ErrBadStopCycle, cfg.StopCycle)
	}
	if math.IsNaN(cfg.Relaxation) || cfg.Relaxation <= 0 || cfg.Relaxation > 1 {
		return fmt.Errorf("%w: got %g", ErrBadRelaxation, cfg.Relaxation)
	}

	return nil
}

// outer holds the state of the fixed-point loop.
type outer struct {
	classes []Class
	opts    Options
	flows   [][]float64
	prev    [][]float64
	total   []float64
}

func (o *outer) run() (*Result, error) {
	n := o.classes[0].Graph.NumLinks()
	o.flows = make([][]float64, len(o.classes))
	o.prev = make([][]float64, len(o.classes))
	for i := range o.classes {
		o.flows[i] = flow.Zeros(n)
		o.prev[i] = flow.Zeros(n)
	}
	o.total = flow.Zeros(n)

	res := &Result{Status: MaxIterReached, Change: math.Inf(1)}
	grow := 0
	for k := 1; k <= o.opts.MaxIter; k++ {
		for i := range o.flows {
			copy(o.prev[i], o.flows[i])
		}

		// 1) One sweep over the classes.
		var err error
		if o.opts.Scheme == Jacobi {
			err = o.jacobi(k)
		} else {
			err = o.gaussSeidel(k)
		}
		if err != nil {
			return nil, err
		}

		// 2) Outer change, from the second cycle on.
		cyc := Cycle{K: k, Change: math.Inf(1)}
		if k > 1 {
			if cyc.Change, err = o.change(); err != nil {
				return nil, err
			}
		}
		if cyc.Gap, err = o.gap(); err != nil {
			return nil, err
		}
		if k > 2 && cyc.Change > res.Change {
			grow++
		} else {
			grow = 0
		}
		res.Cycles, res.Change, res.Gap = k, cyc.Change, cyc.Gap

		if o.opts.Display >= 1 {
			o.opts.Logger.Info("multiclass cycle",
				"cycle", k,
				"scheme", o.opts.Scheme.String(),
				"change", cyc.Change,
				"gap", cyc.Gap)
		}
		if o.opts.Observer != nil {
			o.opts.Observer(cyc)
		}

		// 3) Terminal states.
		if k > 1 && cyc.Change < o.opts.StopCycle {
			res.Status = Converged
			break
		}
		if grow >= o.opts.Patience {
			res.Status = Diverged
			break
		}
	}

	res.Flows = o.flows
	res.Total = o.total
	if o.opts.Display >= 1 {
		o.opts.Logger.Info("multiclass finished",
			"status", res.Status.String(),
			"cycles", res.Cycles,
			"change", res.Change)
	}

	return res, nil
}

// gaussSeidel solves the classes in order against the running total.
func (o *outer) gaussSeidel(k int) error {
	bg := flow.Zeros(len(o.total))
	for i := range o.classes {
		background(bg, o.total, o.flows[i])
		f, err := o.solveClass(i, k, bg)
		if err != nil {
			return err
		}
		for a := range o.total {
			o.total[a] += f[a] - o.flows[i][a]
		}
		flow.ClampNonNegative(o.total)
		o.flows[i] = f
	}

	return nil
}

// jacobi solves every class against the frozen total, then damps and reduces.
func (o *outer) jacobi(k int) error {
	next := make([][]float64, len(o.classes))
	errs := make([]error, len(o.classes))
	solve := func(i int) {
		bg := flow.Zeros(len(o.total))
		background(bg, o.total, o.flows[i])
		next[i], errs[i] = o.solveClass(i, k, bg)
	}

	if o.opts.Parallel && len(o.classes) > 1 {
		var wg sync.WaitGroup
		for i := range o.classes {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				solve(i)
			}(i)
		}
		wg.Wait()
	} else {
		for i := range o.classes {
			solve(i)
		}
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	omega := o.opts.Relaxation
	for i, f := range next {
		if k > 1 && omega < 1 {
			_, _ = flow.Combine(f, o.prev[i], f, omega)
		}
		o.flows[i] = f
	}
	_, err := flow.Sum(o.total, o.flows...)

	return err
}

// solveClass runs the single-class solver for class i against bg.
func (o *outer) solveClass(i, k int, bg []float64) ([]float64, error) {
	c := o.classes[i]
	opts := make([]frankwolfe.Option, 0, len(o.opts.Inner)+4)
	opts = append(opts, o.opts.Inner...)
	opts = append(opts, frankwolfe.WithBackground(bg), frankwolfe.WithLogger(o.opts.Logger))
	if k > 1 {
		opts = append(opts, frankwolfe.WithInitialFlow(o.flows[i]))
	}
	if o.opts.Display >= 2 {
		opts = append(opts, frankwolfe.WithDisplay(o.opts.Display-1))
	}

	res, err := frankwolfe.Solve(c.Graph, c.Demand, opts...)
	if err != nil {
		return nil, fmt.Errorf("class %q: %w", c.Name, err)
	}

	return res.Flow, nil
}

// change returns the relative change of the stacked class flows
// (f₁, …, f_K) against the previous cycle.
func (o *outer) change() (float64, error) {
	return metrics.RelativeChange(stack(o.prev), stack(o.flows))
}

// gap returns the relative gap of the stacked class flows, with cᵢ the
// perceived costs of class i at the total flow and yᵢ its all-or-nothing
// response: Σᵢ cᵢ·(fᵢ − yᵢ) / Σᵢ cᵢ·fᵢ.
func (o *outer) gap() (float64, error) {
	costs := make([][]float64, len(o.classes))
	targets := make([][]float64, len(o.classes))
	for i, c := range o.classes {
		var err error
		if costs[i], err = c.Graph.Costs(o.total, nil, nil); err != nil {
			return 0, err
		}
		y, err := aon.Assign(c.Graph, costs[i], c.Demand)
		if err != nil {
			return 0, fmt.Errorf("class %q: %w", c.Name, err)
		}
		targets[i] = y.Flow
	}

	return metrics.RelativeGap(stack(costs), stack(o.flows), stack(targets))
}

// stack concatenates per-class vectors into one.
func stack(vs [][]float64) []float64 {
	n := 0
	for _, v := range vs {
		n += len(v)
	}
	out := make([]float64, 0, n)
	for _, v := range vs {
		out = append(out, v...)
	}

	return out
}

// background writes max(total − own, 0) into dst.
func background(dst, total, own []float64) {
	for a := range dst {
		dst[a] = total[a] - own[a]
	}
	flow.ClampNonNegative(dst)
}
