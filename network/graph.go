package network

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/wardrop/latency"
)

// Graph is an immutable, indexed road network.
//
// Link i of every flow or cost vector refers to g.Link(i). A Graph is safe for
// concurrent reads.
type Graph struct {
	links []Link      // ordered link table; Latency always non-nil
	nodes []int       // internal index → external id, ascending
	index map[int]int // external id → internal index
	tail  []int       // link → internal tail index
	head  []int       // link → internal head index
	first []int       // CSR offsets, len(nodes)+1
	out   []int       // link indices grouped by tail node
}

// NewGraph validates links and builds the indexed graph.
//
// Validation (in order, per link):
//  1. Capacity must be ≥ 0 and not NaN (ErrNegativeCapacity).
//  2. FreeFlowTime must be finite and ≥ 0 (ErrBadFreeFlowTime).
//  3. Latency (or the default BPR) must validate (ErrBadLatency).
//
// The input slice is copied; later changes to it do not affect the Graph.
func NewGraph(links []Link) (*Graph, error) {
	// 1) Reject an empty link table.
	if len(links) == 0 {
		return nil, ErrEmptyGraph
	}

	// 2) Validate each row and resolve default latencies.
	rows := make([]Link, len(links))
	ids := make(map[int]struct{}, len(links))
	for i, l := range links {
		if math.IsNaN(l.Capacity) || l.Capacity < 0 {
			return nil, fmt.Errorf("%w: link %d (%d→%d) capacity=%g", ErrNegativeCapacity, i, l.From, l.To, l.Capacity)
		}
		if math.IsNaN(l.FreeFlowTime) || math.IsInf(l.FreeFlowTime, 0) || l.FreeFlowTime < 0 {
			return nil, fmt.Errorf("%w: link %d (%d→%d) fftt=%g", ErrBadFreeFlowTime, i, l.From, l.To, l.FreeFlowTime)
		}
		if l.Latency == nil {
			l.Latency = latency.NewBPR(l.FreeFlowTime, l.Capacity)
		}
		if err := l.Latency.Validate(); err != nil {
			return nil, fmt.Errorf("%w: link %d (%d→%d): %v", ErrBadLatency, i, l.From, l.To, err)
		}
		rows[i] = l
		ids[l.From] = struct{}{}
		ids[l.To] = struct{}{}
	}

	// 3) Dense node index in ascending external id order.
	nodes := make([]int, 0, len(ids))
	for id := range ids {
		nodes = append(nodes, id)
	}
	sort.Ints(nodes)
	index := make(map[int]int, len(nodes))
	for i, id := range nodes {
		index[id] = i
	}

	g := &Graph{
		links: rows,
		nodes: nodes,
		index: index,
		tail:  make([]int, len(rows)),
		head:  make([]int, len(rows)),
		first: make([]int, len(nodes)+1),
		out:   make([]int, len(rows)),
	}

	// 4) CSR out-adjacency; links keep their table order inside a node.
	for i, l := range rows {
		g.tail[i] = index[l.From]
		g.head[i] = index[l.To]
		g.first[g.tail[i]+1]++
	}
	for v := 0; v < len(nodes); v++ {
		g.first[v+1] += g.first[v]
	}
	next := append([]int(nil), g.first[:len(nodes)]...)
	for i := range rows {
		v := g.tail[i]
		g.out[next[v]] = i
		next[v]++
	}

	return g, nil
}

// NumLinks returns the number of links, i.e. the length of every flow vector.
func (g *Graph) NumLinks() int { return len(g.links) }

// NumNodes returns the number of distinct nodes.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// Link returns link i.
func (g *Graph) Link(i int) Link { return g.links[i] }

// Links returns a copy of the link table.
func (g *Graph) Links() []Link { return append([]Link(nil), g.links...) }

// NodeIndex resolves an external node id.
func (g *Graph) NodeIndex(id int) (int, bool) {
	v, ok := g.index[id]
	return v, ok
}

// NodeID returns the external id of internal node v.
func (g *Graph) NodeID(v int) int { return g.nodes[v] }

// Tail returns the internal tail node of link i.
func (g *Graph) Tail(i int) int { return g.tail[i] }

// Head returns the internal head node of link i.
func (g *Graph) Head(i int) int { return g.head[i] }

// OutLinks returns the indices of links leaving internal node v.
// The returned slice must not be modified.
func (g *Graph) OutLinks(v int) []int { return g.out[g.first[v]:g.first[v+1]] }

// SameTopology reports whether h has the same link endpoints in the same order.
// Class-specific graphs produced by Perceived always share the topology of their source.
func (g *Graph) SameTopology(h *Graph) bool {
	if g == nil || h == nil || len(g.links) != len(h.links) || len(g.nodes) != len(h.nodes) {
		return false
	}
	for i := range g.links {
		if g.links[i].From != h.links[i].From || g.links[i].To != h.links[i].To {
			return false
		}
	}

	return true
}

// Perceived returns a copy of g where each link with Capacity < c.Threshold is
// perceived through latency.Penalized{Add: c.Add, Scale: c.Multiply}, and the
// mask of those small-capacity links.
func (g *Graph) Perceived(c Cognitive) (*Graph, []bool, error) {
	scale := c.Multiply
	if scale == 0 {
		scale = 1
	}
	if math.IsNaN(c.Threshold) || math.IsNaN(c.Add) || math.IsInf(c.Add, 0) || c.Add < 0 ||
		math.IsNaN(scale) || math.IsInf(scale, 0) || scale < 0 {
		return nil, nil, fmt.Errorf("%w: threshold=%g add=%g multiply=%g", ErrBadPenalty, c.Threshold, c.Add, c.Multiply)
	}

	// Topology arrays are immutable and shared; only the link table is copied.
	h := *g
	h.links = append([]Link(nil), g.links...)
	small := make([]bool, len(g.links))
	for i, l := range h.links {
		if l.Capacity >= c.Threshold {
			continue
		}
		small[i] = true
		h.links[i].Latency = latency.Penalized{Base: l.Latency, Add: c.Add, Scale: scale}
	}

	return &h, small, nil
}
