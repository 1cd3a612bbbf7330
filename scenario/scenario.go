package scenario

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wardrop/frankwolfe"
	"github.com/katalvlaran/wardrop/multiclass"
)

// Default returns a scenario whose solver sections carry the library
// defaults, so that keys absent from a document keep them.
func Default() Scenario {
	fw := frankwolfe.DefaultOptions()
	mc := multiclass.DefaultOptions()

	return Scenario{
		Solver: SolverConfig{
			Strategy:        Strategy(fw.Strategy),
			MaxIter:         fw.MaxIter,
			Stop:            fw.Stop,
			Q:               fw.BatchSize,
			Past:            fw.Past,
			Workers:         fw.Workers,
			LineSearchSteps: fw.LineSearchSteps,
			Display:         fw.Display,
		},
		Multiclass: MulticlassConfig{
			Scheme:     Scheme(mc.Scheme),
			MaxIter:    mc.MaxIter,
			StopCycle:  mc.StopCycle,
			Relaxation: mc.Relaxation,
			Parallel:   mc.Parallel,
			Patience:   mc.Patience,
		},
	}
}

// Parse decodes a YAML document over Default and checks the solver settings.
func Parse(data []byte) (*Scenario, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "decode scenario")
	}
	if len(s.Links) == 0 {
		return nil, ErrNoLinks
	}
	if err := s.check(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read scenario")
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "scenario %s", path)
	}

	return s, nil
}

// check rejects settings whose option constructors would panic.
func (s *Scenario) check() error {
	positive := []struct {
		key string
		val int
	}{
		{"solver.q", s.Solver.Q},
		{"solver.past", s.Solver.Past},
		{"solver.workers", s.Solver.Workers},
		{"solver.line-search-steps", s.Solver.LineSearchSteps},
		{"multiclass.patience", s.Multiclass.Patience},
	}
	for _, p := range positive {
		if p.val < 1 {
			return errors.Wrapf(ErrBadOption, "%s must be ≥ 1, got %d", p.key, p.val)
		}
	}

	return nil
}

// SolverOptions converts the solver section into frankwolfe options.
func (s *Scenario) SolverOptions() []frankwolfe.Option {
	c := s.Solver

	return []frankwolfe.Option{
		frankwolfe.WithStrategy(frankwolfe.Strategy(c.Strategy)),
		frankwolfe.WithMaxIter(c.MaxIter),
		frankwolfe.WithStop(c.Stop),
		frankwolfe.WithBatchSize(c.Q),
		frankwolfe.WithPast(c.Past),
		frankwolfe.WithWorkers(c.Workers),
		frankwolfe.WithLineSearchSteps(c.LineSearchSteps),
		frankwolfe.WithDisplay(c.Display),
	}
}

// MulticlassOptions converts the multiclass section into multiclass options.
// The solver section becomes the inner options and solver.display the
// outer verbosity; class solves log only from display 2 on.
func (s *Scenario) MulticlassOptions() []multiclass.Option {
	c := s.Multiclass
	inner := append(s.SolverOptions(), frankwolfe.WithDisplay(0))
	opts := []multiclass.Option{
		multiclass.WithScheme(multiclass.Scheme(c.Scheme)),
		multiclass.WithMaxIter(c.MaxIter),
		multiclass.WithStopCycle(c.StopCycle),
		multiclass.WithRelaxation(c.Relaxation),
		multiclass.WithPatience(c.Patience),
		multiclass.WithInner(inner...),
		multiclass.WithDisplay(s.Solver.Display),
	}
	if c.Parallel {
		opts = append(opts, multiclass.WithParallel())
	}

	return opts
}
