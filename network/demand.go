package network

import (
	"fmt"
	"math"
	"sort"
)

// Demand is a validated origin-destination matrix grouped by origin.
//
// Node references are internal indices of the Graph the Demand was built for.
// Any Graph with the same topology (for example one returned by Perceived) can
// consume it.
type Demand struct {
	nodeIDs []int       // internal index → external id, copied from the graph
	origins []int       // internal origin indices, ascending
	dests   [][]int     // per origin: internal destination indices, ascending
	volumes [][]float64 // per origin: volumes aligned with dests
	total   float64
	pairs   int
}

// NewDemand validates ods against g and builds a Demand.
//
// Rules:
//   - Origin and Destination must be nodes of g (ErrUnknownNode).
//   - Volume must be finite and ≥ 0 (ErrBadVolume).
//   - Duplicate pairs are summed; zero volumes and intrazonal pairs
//     (Origin == Destination) are dropped, since they load no link.
func NewDemand(g *Graph, ods []OD) (*Demand, error) {
	if g == nil {
		return nil, ErrEmptyGraph
	}

	// 1) Validate and aggregate by internal (origin, destination).
	type key struct{ o, d int }
	agg := make(map[key]float64, len(ods))
	for i, od := range ods {
		if math.IsNaN(od.Volume) || math.IsInf(od.Volume, 0) || od.Volume < 0 {
			return nil, fmt.Errorf("%w: entry %d (%d→%d) volume=%g", ErrBadVolume, i, od.Origin, od.Destination, od.Volume)
		}
		o, ok := g.NodeIndex(od.Origin)
		if !ok {
			return nil, fmt.Errorf("%w: origin %d (entry %d)", ErrUnknownNode, od.Origin, i)
		}
		d, ok := g.NodeIndex(od.Destination)
		if !ok {
			return nil, fmt.Errorf("%w: destination %d (entry %d)", ErrUnknownNode, od.Destination, i)
		}
		if o == d || od.Volume == 0 {
			continue
		}
		agg[key{o, d}] += od.Volume
	}

	// 2) Deterministic layout: origins ascending, destinations ascending.
	keys := make([]key, 0, len(agg))
	for k := range agg {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].o != keys[j].o {
			return keys[i].o < keys[j].o
		}
		return keys[i].d < keys[j].d
	})

	dm := &Demand{nodeIDs: append([]int(nil), g.nodes...)}
	for _, k := range keys {
		n := len(dm.origins)
		if n == 0 || dm.origins[n-1] != k.o {
			dm.origins = append(dm.origins, k.o)
			dm.dests = append(dm.dests, nil)
			dm.volumes = append(dm.volumes, nil)
			n++
		}
		v := agg[k]
		dm.dests[n-1] = append(dm.dests[n-1], k.d)
		dm.volumes[n-1] = append(dm.volumes[n-1], v)
		dm.total += v
		dm.pairs++
	}

	return dm, nil
}

// NumNodes returns the node count of the graph the demand was built for.
func (dm *Demand) NumNodes() int { return len(dm.nodeIDs) }

// Matches reports whether g has exactly the node table the demand was built
// for, so internal indices refer to the same external ids.
func (dm *Demand) Matches(g *Graph) bool {
	if g == nil || len(g.nodes) != len(dm.nodeIDs) {
		return false
	}
	for i, id := range dm.nodeIDs {
		if g.nodes[i] != id {
			return false
		}
	}

	return true
}

// Imbalance returns the largest violation of flow conservation of x on g:
// max over nodes of |(outflow − inflow) − (production − attraction)|.
// A flow that carries exactly this demand has imbalance 0.
func (dm *Demand) Imbalance(g *Graph, x []float64) (float64, error) {
	if g == nil {
		return 0, ErrEmptyGraph
	}
	if err := g.checkLength(x, nil); err != nil {
		return 0, err
	}
	if !dm.Matches(g) {
		return 0, fmt.Errorf("%w: demand built for another node table", ErrUnknownNode)
	}

	net := make([]float64, len(g.nodes))
	for i, v := range x {
		net[g.tail[i]] += v
		net[g.head[i]] -= v
	}
	for k, o := range dm.origins {
		for j, d := range dm.dests[k] {
			net[o] -= dm.volumes[k][j]
			net[d] += dm.volumes[k][j]
		}
	}
	var worst float64
	for _, v := range net {
		worst = math.Max(worst, math.Abs(v))
	}

	return worst, nil
}

// NumOrigins returns the number of origins with positive demand.
func (dm *Demand) NumOrigins() int { return len(dm.origins) }

// NumPairs returns the number of OD pairs with positive demand.
func (dm *Demand) NumPairs() int { return dm.pairs }

// Total returns the total demand volume.
func (dm *Demand) Total() float64 { return dm.total }

// Origin returns the internal index of the k-th origin.
func (dm *Demand) Origin(k int) int { return dm.origins[k] }

// Destinations returns the internal destination indices and volumes of the
// k-th origin. The returned slices must not be modified.
func (dm *Demand) Destinations(k int) ([]int, []float64) { return dm.dests[k], dm.volumes[k] }

// Pairs returns the demand as OD triples in external node ids.
func (dm *Demand) Pairs() []OD {
	out := make([]OD, 0, dm.pairs)
	for k, o := range dm.origins {
		for j, d := range dm.dests[k] {
			out = append(out, OD{Origin: dm.nodeIDs[o], Destination: dm.nodeIDs[d], Volume: dm.volumes[k][j]})
		}
	}

	return out
}

// Scale returns a copy with every volume multiplied by f (f ≥ 0).
func (dm *Demand) Scale(f float64) (*Demand, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return nil, fmt.Errorf("%w: scale=%g", ErrBadVolume, f)
	}
	out := &Demand{nodeIDs: dm.nodeIDs}
	if f == 0 {
		return out, nil
	}
	out.origins = append([]int(nil), dm.origins...)
	out.dests = dm.dests
	out.volumes = make([][]float64, len(dm.volumes))
	for k, vs := range dm.volumes {
		out.volumes[k] = make([]float64, len(vs))
		for j, v := range vs {
			out.volumes[k][j] = v * f
			out.total += v * f
		}
	}
	out.pairs = dm.pairs

	return out, nil
}

// Split divides the demand between two traveler classes: the first receives
// (1-share) of every volume, the second receives share.
func (dm *Demand) Split(share float64) (*Demand, *Demand, error) {
	if math.IsNaN(share) || share < 0 || share > 1 {
		return nil, nil, fmt.Errorf("%w: share=%g", ErrBadShare, share)
	}
	rest, err := dm.Scale(1 - share)
	if err != nil {
		return nil, nil, err
	}
	part, err := dm.Scale(share)
	if err != nil {
		return nil, nil, err
	}

	return rest, part, nil
}
