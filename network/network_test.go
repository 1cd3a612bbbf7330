package network_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wardrop/latency"
	"github.com/katalvlaran/wardrop/network"
)

// twoRoutes builds 1→2 directly (capacity 100) and 1→3→2 (capacity 50 each).
func twoRoutes(t *testing.T) *network.Graph {
	t.Helper()
	g, err := network.NewGraph([]network.Link{
		{From: 1, To: 2, Capacity: 100, FreeFlowTime: 10},
		{From: 1, To: 3, Capacity: 50, FreeFlowTime: 4},
		{From: 3, To: 2, Capacity: 50, FreeFlowTime: 4},
	})
	require.NoError(t, err)

	return g
}

func TestNewGraph_Indexing(t *testing.T) {
	g := twoRoutes(t)
	require.Equal(t, 3, g.NumLinks())
	require.Equal(t, 3, g.NumNodes())

	v1, ok := g.NodeIndex(1)
	require.True(t, ok)
	require.Equal(t, 0, v1)
	require.Equal(t, 3, g.NodeID(2))

	// node 1 has two out-links in table order
	require.Equal(t, []int{0, 1}, g.OutLinks(v1))
	v3, _ := g.NodeIndex(3)
	require.Equal(t, []int{2}, g.OutLinks(v3))
	v2, _ := g.NodeIndex(2)
	require.Empty(t, g.OutLinks(v2))

	require.Equal(t, v3, g.Tail(2))
	require.Equal(t, v2, g.Head(2))

	// default latency is BPR
	_, isBPR := g.Link(0).Latency.(latency.BPR)
	require.True(t, isBPR)
}

func TestNewGraph_Validation(t *testing.T) {
	_, err := network.NewGraph(nil)
	require.ErrorIs(t, err, network.ErrEmptyGraph)

	_, err = network.NewGraph([]network.Link{{From: 1, To: 2, Capacity: -1, FreeFlowTime: 1}})
	require.ErrorIs(t, err, network.ErrNegativeCapacity)

	_, err = network.NewGraph([]network.Link{{From: 1, To: 2, Capacity: math.NaN(), FreeFlowTime: 1}})
	require.ErrorIs(t, err, network.ErrNegativeCapacity)

	_, err = network.NewGraph([]network.Link{{From: 1, To: 2, Capacity: 1, FreeFlowTime: -3}})
	require.ErrorIs(t, err, network.ErrBadFreeFlowTime)

	_, err = network.NewGraph([]network.Link{{
		From: 1, To: 2, Capacity: 1, FreeFlowTime: 1,
		Latency: latency.Polynomial{Coefficients: []float64{1, -2}},
	}})
	require.ErrorIs(t, err, network.ErrBadLatency)
}

func TestGraph_CostsWithBackground(t *testing.T) {
	g, err := network.NewGraph([]network.Link{
		{From: 0, To: 1, Latency: latency.Polynomial{Coefficients: []float64{10, 1}}},
		{From: 0, To: 1, Latency: latency.Polynomial{Coefficients: []float64{20, 2}}},
	})
	require.NoError(t, err)

	x := []float64{3, 4}
	c, err := g.Costs(x, nil, nil)
	require.NoError(t, err)
	require.Equal(t, []float64{13, 28}, c)

	c, err = g.Costs(x, []float64{1, 1}, c)
	require.NoError(t, err)
	require.Equal(t, []float64{14, 30}, c)

	d, err := g.Derivatives(x, nil, nil)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, d)

	// ∫₀³(10+s) + ∫₀⁴(20+2s) = 34.5 + 96
	p, err := g.Potential(x, nil)
	require.NoError(t, err)
	require.InDelta(t, 130.5, p, 1e-12)

	// ∫₁⁴(10+s) + ∫₁⁵(20+2s) = 37.5 + 104
	p, err = g.Potential(x, []float64{1, 1})
	require.NoError(t, err)
	require.InDelta(t, 141.5, p, 1e-12)

	require.Equal(t, []float64{10, 20}, g.FreeFlowCosts())

	_, err = g.Costs([]float64{1}, nil, nil)
	require.ErrorIs(t, err, network.ErrLengthMismatch)
	_, err = g.Potential(x, []float64{1})
	require.ErrorIs(t, err, network.ErrLengthMismatch)
}

func TestGraph_Perceived(t *testing.T) {
	g := twoRoutes(t)

	mul, small, err := g.Perceived(network.Cognitive{Threshold: 60, Multiply: 10})
	require.NoError(t, err)
	require.Equal(t, []bool{false, true, true}, small)
	require.True(t, g.SameTopology(mul))
	require.Equal(t, []float64{10, 40, 40}, mul.FreeFlowCosts())
	// the source graph is untouched
	require.Equal(t, []float64{10, 4, 4}, g.FreeFlowCosts())

	add, _, err := g.Perceived(network.Cognitive{Threshold: 60, Add: 5})
	require.NoError(t, err)
	require.Equal(t, []float64{10, 9, 9}, add.FreeFlowCosts())

	_, _, err = g.Perceived(network.Cognitive{Threshold: 60, Add: -1})
	require.ErrorIs(t, err, network.ErrBadPenalty)
}

func TestGraph_SameTopology(t *testing.T) {
	g := twoRoutes(t)
	h, err := network.NewGraph([]network.Link{
		{From: 1, To: 2, Capacity: 100, FreeFlowTime: 10},
		{From: 1, To: 3, Capacity: 50, FreeFlowTime: 4},
		{From: 2, To: 3, Capacity: 50, FreeFlowTime: 4},
	})
	require.NoError(t, err)
	require.False(t, g.SameTopology(h))
	require.False(t, g.SameTopology(nil))
}

func TestNewDemand(t *testing.T) {
	g := twoRoutes(t)
	d, err := network.NewDemand(g, []network.OD{
		{Origin: 1, Destination: 2, Volume: 30},
		{Origin: 3, Destination: 2, Volume: 5},
		{Origin: 1, Destination: 2, Volume: 20}, // merged
		{Origin: 1, Destination: 3, Volume: 0},  // dropped
		{Origin: 2, Destination: 2, Volume: 7},  // intrazonal, dropped
	})
	require.NoError(t, err)
	require.Equal(t, 55.0, d.Total())
	require.Equal(t, 2, d.NumPairs())
	require.Equal(t, 2, d.NumOrigins())
	require.Equal(t, 3, d.NumNodes())

	dests, vols := d.Destinations(0)
	v2, _ := g.NodeIndex(2)
	require.Equal(t, []int{v2}, dests)
	require.Equal(t, []float64{50}, vols)

	require.Equal(t, []network.OD{
		{Origin: 1, Destination: 2, Volume: 50},
		{Origin: 3, Destination: 2, Volume: 5},
	}, d.Pairs())
}

func TestNewDemand_Validation(t *testing.T) {
	g := twoRoutes(t)

	_, err := network.NewDemand(g, []network.OD{{Origin: 9, Destination: 2, Volume: 1}})
	require.ErrorIs(t, err, network.ErrUnknownNode)

	_, err = network.NewDemand(g, []network.OD{{Origin: 1, Destination: 9, Volume: 1}})
	require.ErrorIs(t, err, network.ErrUnknownNode)

	_, err = network.NewDemand(g, []network.OD{{Origin: 1, Destination: 2, Volume: -1}})
	require.ErrorIs(t, err, network.ErrBadVolume)

	_, err = network.NewDemand(g, []network.OD{{Origin: 1, Destination: 2, Volume: math.Inf(1)}})
	require.ErrorIs(t, err, network.ErrBadVolume)

	d, err := network.NewDemand(g, nil)
	require.NoError(t, err)
	require.Equal(t, 0.0, d.Total())
}

func TestDemand_SplitConservesVolume(t *testing.T) {
	g := twoRoutes(t)
	d, err := network.NewDemand(g, []network.OD{
		{Origin: 1, Destination: 2, Volume: 40},
		{Origin: 1, Destination: 3, Volume: 10},
	})
	require.NoError(t, err)

	rest, part, err := d.Split(0.25)
	require.NoError(t, err)
	require.InDelta(t, 37.5, rest.Total(), 1e-12)
	require.InDelta(t, 12.5, part.Total(), 1e-12)
	require.InDelta(t, d.Total(), rest.Total()+part.Total(), 1e-12)

	_, vols := part.Destinations(0)
	require.InDeltaSlice(t, []float64{10, 2.5}, vols, 1e-12)

	none, all, err := d.Split(1)
	require.NoError(t, err)
	require.Equal(t, 0.0, none.Total())
	require.Equal(t, 0, none.NumOrigins())
	require.Equal(t, d.Total(), all.Total())

	_, _, err = d.Split(1.5)
	require.ErrorIs(t, err, network.ErrBadShare)
}

func TestDemand_MatchesAndImbalance(t *testing.T) {
	g := twoRoutes(t)
	d, err := network.NewDemand(g, []network.OD{{Origin: 1, Destination: 2, Volume: 50}})
	require.NoError(t, err)

	require.True(t, d.Matches(g))
	mul, _, err := g.Perceived(network.Cognitive{Threshold: 60, Multiply: 2})
	require.NoError(t, err)
	require.True(t, d.Matches(mul))

	// same node count, other ids
	shifted, err := network.NewGraph([]network.Link{
		{From: 5, To: 6, Capacity: 100, FreeFlowTime: 10},
		{From: 5, To: 7, Capacity: 50, FreeFlowTime: 4},
		{From: 7, To: 6, Capacity: 50, FreeFlowTime: 4},
	})
	require.NoError(t, err)
	require.False(t, d.Matches(shifted))
	require.False(t, d.Matches(nil))

	gap, err := d.Imbalance(g, []float64{30, 20, 20})
	require.NoError(t, err)
	require.Zero(t, gap)

	gap, err = d.Imbalance(g, []float64{0, 0, 0})
	require.NoError(t, err)
	require.Equal(t, 50.0, gap)

	// flow leaves 1 over the detour but never reaches 2
	gap, err = d.Imbalance(g, []float64{30, 20, 0})
	require.NoError(t, err)
	require.Equal(t, 20.0, gap)

	_, err = d.Imbalance(g, []float64{1})
	require.ErrorIs(t, err, network.ErrLengthMismatch)
	_, err = d.Imbalance(shifted, []float64{30, 20, 20})
	require.ErrorIs(t, err, network.ErrUnknownNode)
}
