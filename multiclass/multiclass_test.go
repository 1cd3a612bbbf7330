package multiclass_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/wardrop/aon"
	"github.com/katalvlaran/wardrop/frankwolfe"
	"github.com/katalvlaran/wardrop/latency"
	"github.com/katalvlaran/wardrop/multiclass"
	"github.com/katalvlaran/wardrop/network"
)

// routes builds 0→1 over t₁ = 10 + x (capacity cap1) and t₂ = 20 + x
// (capacity cap2).
func routes(t testing.TB, cap1, cap2 float64) *network.Graph {
	t.Helper()
	fast, err := latency.NewPolynomial(10, 1)
	require.NoError(t, err)
	slow, err := latency.NewPolynomial(20, 1)
	require.NoError(t, err)
	g, err := network.NewGraph([]network.Link{
		{From: 0, To: 1, Capacity: cap1, FreeFlowTime: 10, Latency: fast},
		{From: 0, To: 1, Capacity: cap2, FreeFlowTime: 20, Latency: slow},
	})
	require.NoError(t, err)

	return g
}

// halves splits a demand of 30 from 0 to 1 into two classes of 15.
func halves(t testing.TB, g *network.Graph) []multiclass.Class {
	t.Helper()
	d, err := network.NewDemand(g, []network.OD{{Origin: 0, Destination: 1, Volume: 30}})
	require.NoError(t, err)
	a, b, err := d.Split(0.5)
	require.NoError(t, err)

	return []multiclass.Class{
		{Name: "a", Graph: g, Demand: a},
		{Name: "b", Graph: g, Demand: b},
	}
}

// MulticlassSuite checks the outer schemes on two-route networks with known equilibria.
type MulticlassSuite struct {
	suite.Suite
}

// TestGaussSeidel: identical classes reach the single-class total (20, 10).
func (s *MulticlassSuite) TestGaussSeidel() {
	g := routes(s.T(), 100, 100)
	res, err := multiclass.Solve(halves(s.T(), g))
	require.NoError(s.T(), err)

	require.True(s.T(), res.Converged())
	require.Equal(s.T(), 2, res.Cycles)
	require.InDeltaSlice(s.T(), []float64{20, 10}, res.Total, 1e-6)
	require.InDelta(s.T(), 0, res.Gap, 1e-6)
	for _, f := range res.Flows {
		require.InDelta(s.T(), 15, f[0]+f[1], 1e-9)
	}

	// agrees with the single-class solve of the pooled demand
	d, err := network.NewDemand(g, []network.OD{{Origin: 0, Destination: 1, Volume: 30}})
	require.NoError(s.T(), err)
	single, err := frankwolfe.Solve(g, d)
	require.NoError(s.T(), err)
	require.InDeltaSlice(s.T(), single.Flow, res.Total, 1e-6)
}

// TestJacobiOscillates: plain Jacobi flips between (25, 5) and (15, 15).
func (s *MulticlassSuite) TestJacobiOscillates() {
	g := routes(s.T(), 100, 100)
	var cycles []multiclass.Cycle
	res, err := multiclass.Solve(halves(s.T(), g),
		multiclass.WithScheme(multiclass.Jacobi),
		multiclass.WithMaxIter(6),
		multiclass.WithObserver(func(c multiclass.Cycle) { cycles = append(cycles, c) }))
	require.NoError(s.T(), err)

	require.False(s.T(), res.Converged())
	require.Equal(s.T(), multiclass.MaxIterReached, res.Status)
	require.Equal(s.T(), 6, res.Cycles)
	require.Len(s.T(), cycles, 6)
	// even cycles end at (15, 15)
	require.InDeltaSlice(s.T(), []float64{15, 15}, res.Total, 1e-6)
	for _, c := range cycles[1:] {
		require.Greater(s.T(), c.Change, 0.5)
	}
}

// TestRelaxedJacobi: ω = 0.5 lands on the fixed point in cycle 2, confirmed by cycle 3.
func (s *MulticlassSuite) TestRelaxedJacobi() {
	g := routes(s.T(), 100, 100)
	for _, parallel := range []bool{false, true} {
		opts := []multiclass.Option{
			multiclass.WithScheme(multiclass.Jacobi),
			multiclass.WithRelaxation(0.5),
		}
		if parallel {
			opts = append(opts, multiclass.WithParallel())
		}
		res, err := multiclass.Solve(halves(s.T(), g), opts...)
		require.NoError(s.T(), err)
		require.True(s.T(), res.Converged())
		require.Equal(s.T(), 3, res.Cycles)
		require.InDeltaSlice(s.T(), []float64{20, 10}, res.Total, 1e-6)
	}
}

// TestDivergence: three Jacobi classes amplify the deviation each cycle
// until the flows hit their bounds.
func (s *MulticlassSuite) TestDivergence() {
	g := routes(s.T(), 100, 100)
	d, err := network.NewDemand(g, []network.OD{{Origin: 0, Destination: 1, Volume: 90}})
	require.NoError(s.T(), err)
	third, err := d.Scale(1.0 / 3)
	require.NoError(s.T(), err)
	classes := []multiclass.Class{
		{Name: "x", Graph: g, Demand: third},
		{Name: "y", Graph: g, Demand: third},
		{Name: "z", Graph: g, Demand: third},
	}

	res, err := multiclass.Solve(classes,
		multiclass.WithScheme(multiclass.Jacobi),
		multiclass.WithParallel(),
		multiclass.WithPatience(2),
		multiclass.WithMaxIter(20))
	require.NoError(s.T(), err)
	require.Equal(s.T(), multiclass.Diverged, res.Status)
	require.Equal(s.T(), 4, res.Cycles)

	// Gauss-Seidel on the same classes still finds (50, 40).
	res, err = multiclass.Solve(classes, multiclass.WithMaxIter(50), multiclass.WithStopCycle(1e-6))
	require.NoError(s.T(), err)
	require.True(s.T(), res.Converged())
	require.InDeltaSlice(s.T(), []float64{50, 40}, res.Total, 1e-3)
}

// TestCognitiveClassAvoidsSmallLinks: a class that penalises small links
// leaves them to the other class.
func (s *MulticlassSuite) TestCognitiveClassAvoidsSmallLinks() {
	// same latency on both links so only the penalty differs
	p, err := latency.NewPolynomial(10, 1)
	require.NoError(s.T(), err)
	g, err := network.NewGraph([]network.Link{
		{From: 0, To: 1, Capacity: 100, FreeFlowTime: 10, Latency: p},
		{From: 0, To: 1, Capacity: 5, FreeFlowTime: 10, Latency: p},
	})
	require.NoError(s.T(), err)
	averse, small, err := g.Perceived(network.Cognitive{Threshold: 50, Add: 100})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []bool{false, true}, small)

	classes := halves(s.T(), g)
	classes[1].Graph = averse

	res, err := multiclass.Solve(classes, multiclass.WithStopCycle(1e-9))
	require.NoError(s.T(), err)
	require.True(s.T(), res.Converged())
	require.InDeltaSlice(s.T(), []float64{0, 15}, res.Flows[0], 1e-6)
	require.InDeltaSlice(s.T(), []float64{15, 0}, res.Flows[1], 1e-6)
}

// TestDisplayLogs: Display 1 logs cycles only; Display 2 adds inner iterations.
func (s *MulticlassSuite) TestDisplayLogs() {
	g := routes(s.T(), 100, 100)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	res, err := multiclass.Solve(halves(s.T(), g), multiclass.WithDisplay(1), multiclass.WithLogger(logger))
	require.NoError(s.T(), err)
	require.Equal(s.T(), res.Cycles, bytes.Count(buf.Bytes(), []byte("multiclass cycle")))
	require.NotContains(s.T(), buf.String(), "frank-wolfe iteration")

	buf.Reset()
	_, err = multiclass.Solve(halves(s.T(), g), multiclass.WithDisplay(2), multiclass.WithLogger(logger))
	require.NoError(s.T(), err)
	require.Contains(s.T(), buf.String(), "frank-wolfe iteration")
}

// TestValidation covers configuration errors.
func (s *MulticlassSuite) TestValidation() {
	g := routes(s.T(), 100, 100)
	classes := halves(s.T(), g)

	_, err := multiclass.Solve(nil)
	require.ErrorIs(s.T(), err, multiclass.ErrNoClasses)
	_, err = multiclass.Solve([]multiclass.Class{{Name: "empty"}})
	require.ErrorIs(s.T(), err, multiclass.ErrNilClass)

	other, err := network.NewGraph([]network.Link{{From: 0, To: 1, Capacity: 1, FreeFlowTime: 1}})
	require.NoError(s.T(), err)
	_, err = multiclass.Solve([]multiclass.Class{classes[0], {Name: "other", Graph: other, Demand: classes[1].Demand}})
	require.ErrorIs(s.T(), err, multiclass.ErrTopologyMismatch)

	_, err = multiclass.Solve(classes, multiclass.WithMaxIter(0))
	require.ErrorIs(s.T(), err, multiclass.ErrBadMaxIter)
	_, err = multiclass.Solve(classes, multiclass.WithStopCycle(-1))
	require.ErrorIs(s.T(), err, multiclass.ErrBadStopCycle)
	_, err = multiclass.Solve(classes, multiclass.WithRelaxation(0))
	require.ErrorIs(s.T(), err, multiclass.ErrBadRelaxation)
	_, err = multiclass.Solve(classes, multiclass.WithRelaxation(1.5))
	require.ErrorIs(s.T(), err, multiclass.ErrBadRelaxation)
	require.Panics(s.T(), func() { multiclass.WithPatience(0) })

	// inner errors carry the class name
	_, err = multiclass.Solve(classes, multiclass.WithInner(frankwolfe.WithMaxIter(-1)))
	require.ErrorIs(s.T(), err, frankwolfe.ErrBadMaxIter)
	require.Contains(s.T(), err.Error(), `class "a"`)

	back, err := network.NewDemand(g, []network.OD{{Origin: 1, Destination: 0, Volume: 1}})
	require.NoError(s.T(), err)
	_, err = multiclass.Solve([]multiclass.Class{{Name: "lost", Graph: g, Demand: back}})
	require.ErrorIs(s.T(), err, aon.ErrUnreachable)
}

// TestSchemeNames round-trips the configuration names.
func (s *MulticlassSuite) TestSchemeNames() {
	for _, sc := range []multiclass.Scheme{multiclass.GaussSeidel, multiclass.Jacobi} {
		got, err := multiclass.SchemeFromString(sc.String())
		require.NoError(s.T(), err)
		require.Equal(s.T(), sc, got)
	}
	_, err := multiclass.SchemeFromString("newton")
	require.ErrorIs(s.T(), err, multiclass.ErrUnknownScheme)
}

func TestMulticlassSuite(t *testing.T) {
	suite.Run(t, new(MulticlassSuite))
}
