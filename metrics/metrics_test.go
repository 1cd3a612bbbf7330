package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wardrop/latency"
	"github.com/katalvlaran/wardrop/metrics"
	"github.com/katalvlaran/wardrop/network"
)

// pair builds two parallel links 0→1 with t₁ = 10 + x (capacity 100) and
// t₂ = 20 + x (capacity 10), plus a demand of 30.
func pair(t *testing.T) (*network.Graph, *network.Demand) {
	t.Helper()
	fast, err := latency.NewPolynomial(10, 1)
	require.NoError(t, err)
	slow, err := latency.NewPolynomial(20, 1)
	require.NoError(t, err)
	g, err := network.NewGraph([]network.Link{
		{From: 0, To: 1, Capacity: 100, FreeFlowTime: 10, Latency: fast},
		{From: 0, To: 1, Capacity: 10, FreeFlowTime: 20, Latency: slow},
	})
	require.NoError(t, err)
	d, err := network.NewDemand(g, []network.OD{{Origin: 0, Destination: 1, Volume: 30}})
	require.NoError(t, err)

	return g, d
}

func TestRelativeGap(t *testing.T) {
	// at equilibrium (20, 10) both links cost 30: no gap whichever link y uses
	gap, err := metrics.RelativeGap([]float64{30, 30}, []float64{20, 10}, []float64{30, 0})
	require.NoError(t, err)
	require.Zero(t, gap)

	// (30, 0): costs (40, 20), AON puts everything on link 2
	gap, err = metrics.RelativeGap([]float64{40, 20}, []float64{30, 0}, []float64{0, 30})
	require.NoError(t, err)
	require.InDelta(t, 0.5, gap, 1e-12)

	_, err = metrics.RelativeGap([]float64{1}, []float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, metrics.ErrLengthMismatch)
}

func TestRelativeChange(t *testing.T) {
	rc, err := metrics.RelativeChange([]float64{3, 4}, []float64{0, 4})
	require.NoError(t, err)
	require.InDelta(t, 0.6, rc, 1e-12)

	_, err = metrics.RelativeChange([]float64{1}, nil)
	require.ErrorIs(t, err, metrics.ErrLengthMismatch)
}

func TestLinkMetrics(t *testing.T) {
	g, _ := pair(t)
	x := []float64{20, 10}

	c, err := metrics.Cost(g, x)
	require.NoError(t, err)
	require.Equal(t, []float64{30, 30}, c)

	r, err := metrics.CostRatio(g, x)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{3, 1.5}, r, 1e-12)

	vc, err := metrics.VolumeCapacity(g, x)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.2, 1}, vc, 1e-12)

	_, err = metrics.Cost(nil, x)
	require.ErrorIs(t, err, metrics.ErrNilGraph)
	_, err = metrics.VolumeCapacity(g, []float64{1})
	require.ErrorIs(t, err, metrics.ErrLengthMismatch)
}

func TestClassShare(t *testing.T) {
	share, err := metrics.ClassShare([][]float64{{5, 0, 0}, {15, 10, 0}}, 0)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.25, 0, 0}, share, 1e-12)

	_, err = metrics.ClassShare([][]float64{{1}}, 1)
	require.ErrorIs(t, err, metrics.ErrBadClass)
	_, err = metrics.ClassShare([][]float64{{1}, {1, 2}}, 0)
	require.ErrorIs(t, err, metrics.ErrLengthMismatch)
}

func TestAggregates(t *testing.T) {
	g, d := pair(t)
	x := []float64{20, 10}

	tc, err := metrics.TotalCost(g, x)
	require.NoError(t, err)
	require.Equal(t, 900.0, tc)

	avg, err := metrics.AverageCost(g, x, d)
	require.NoError(t, err)
	require.Equal(t, 30.0, avg)

	ff, err := metrics.FreeFlowCost(g, d)
	require.NoError(t, err)
	require.Equal(t, 300.0, ff)

	empty, err := network.NewDemand(g, nil)
	require.NoError(t, err)
	avg, err = metrics.AverageCost(g, x, empty)
	require.NoError(t, err)
	require.Zero(t, avg)
}

func TestSummarize(t *testing.T) {
	g, _ := pair(t)
	_, small, err := g.Perceived(network.Cognitive{Threshold: 50})
	require.NoError(t, err)

	sum, err := metrics.Summarize(g, []metrics.ClassFlow{
		{Name: "regular", Flow: []float64{5, 10}, Demand: 15},
		{Name: "averse", Flow: []float64{15, 0}, Demand: 15},
	}, small)
	require.NoError(t, err)

	require.Len(t, sum.Classes, 2)
	require.Equal(t, "regular", sum.Classes[0].Name)
	require.InDelta(t, 30.0, sum.Classes[0].AverageCost, 1e-12)
	require.InDelta(t, 2.0/3, sum.Classes[0].SmallShare, 1e-12)
	require.Zero(t, sum.Classes[1].SmallShare)
	require.InDelta(t, 900.0, sum.TotalCost, 1e-9)
	require.InDelta(t, 30.0, sum.AverageCost, 1e-12)

	_, err = metrics.Summarize(g, []metrics.ClassFlow{{Name: "bad", Flow: []float64{1}}}, nil)
	require.ErrorIs(t, err, metrics.ErrLengthMismatch)
	_, err = metrics.Summarize(g, nil, []bool{true})
	require.ErrorIs(t, err, metrics.ErrLengthMismatch)
}
