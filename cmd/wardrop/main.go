package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/wardrop/frankwolfe"
	"github.com/katalvlaran/wardrop/metrics"
	"github.com/katalvlaran/wardrop/multiclass"
	"github.com/katalvlaran/wardrop/scenario"
)

var (
	scenarioFile = flag.String("scenario", "scenario.yaml", "Filename of the YAML scenario (links, demand, classes, solver settings)")
	out          = flag.String("out", "flows.csv", "Filename of 'Comma-Separated Values' (CSV) formatted file with one row per link")
	display      = flag.Int("display", -1, "Override solver.display of the scenario: 0 silent, 1 iterations or cycles, 2 adds class solves")
	verbose      = flag.Bool("v", false, "Log at debug level")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger); err != nil {
		logger.Error("wardrop failed", "error", err.Error())
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	s, err := scenario.Load(*scenarioFile)
	if err != nil {
		return err
	}
	if *display >= 0 {
		s.Solver.Display = *display
	}
	m, err := s.Build()
	if err != nil {
		return errors.Wrap(err, "build scenario")
	}
	logger.Info("scenario loaded",
		"name", s.Name,
		"nodes", m.Graph.NumNodes(),
		"links", m.Graph.NumLinks(),
		"pairs", m.Demand.NumPairs(),
		"classes", len(m.Classes))

	sol, err := solve(s, m, logger)
	if err != nil {
		return err
	}

	sum, err := metrics.Summarize(m.Graph, sol.classes, m.Small)
	if err != nil {
		return errors.Wrap(err, "summarize")
	}
	for _, c := range sum.Classes {
		logger.Info("class summary",
			"class", c.Name,
			"demand", c.Demand,
			"average_cost", c.AverageCost,
			"small_share", c.SmallShare)
	}
	logger.Info("equilibrium",
		"status", sol.status,
		"iterations", sol.iterations,
		"total_cost", sum.TotalCost,
		"average_cost", sum.AverageCost)

	if err := writeFlows(*out, m.Graph, sol); err != nil {
		return err
	}
	logger.Info(fmt.Sprintf("flows written to %s", *out))

	return nil
}

// solution is the common view of single- and multi-class results.
type solution struct {
	total      []float64
	classes    []metrics.ClassFlow
	status     string
	iterations int
}

func solve(s *scenario.Scenario, m *scenario.Model, logger *slog.Logger) (*solution, error) {
	if !m.Multiclass() {
		opts := append(s.SolverOptions(), frankwolfe.WithLogger(logger))
		res, err := frankwolfe.Solve(m.Graph, m.Demand, opts...)
		if err != nil {
			return nil, errors.Wrap(err, "frank-wolfe")
		}
		return &solution{
			total:      res.Flow,
			classes:    []metrics.ClassFlow{{Name: "all", Flow: res.Flow, Demand: m.Demand.Total()}},
			status:     res.Status.String(),
			iterations: res.Iterations,
		}, nil
	}

	opts := append(s.MulticlassOptions(), multiclass.WithLogger(logger))
	res, err := multiclass.Solve(m.Classes, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "multiclass")
	}
	sol := &solution{total: res.Total, status: res.Status.String(), iterations: res.Cycles}
	for i, c := range m.Classes {
		sol.classes = append(sol.classes, metrics.ClassFlow{Name: c.Name, Flow: res.Flows[i], Demand: c.Demand.Total()})
	}

	return sol, nil
}
