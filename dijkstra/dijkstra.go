// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// network.Graph whose link costs change between calls.
//
// Complexity:
//
//   - Time:  O((V + E) log V) per source.
//   - Space: O(V + E); a Searcher reuses its O(V) buffers across sources.
//
// Notes on implementation choices:
//
//   - Costs are validated once per cost vector (Reset), not once per source:
//     the all-or-nothing oracle searches from every origin with the same costs.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries.
//   - Ties are broken by the first relaxation that reaches a node, which follows
//     link-table order, so trees are deterministic.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/wardrop/network"
)

// Dijkstra computes a shortest-path tree from Options.Source under the given
// per-link costs. It accepts functional options (Source, WithTargets,
// WithMaxDistance).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. costs must have g.NumLinks() entries (ErrCostLength).
//  3. No cost may be negative or NaN (ErrNegativeWeight).
//  4. Source and targets must be valid node indices (ErrVertexNotFound).
func Dijkstra(g *network.Graph, costs []float64, opts ...Option) (*Tree, error) {
	s := NewSearcher(g)
	if err := s.Reset(costs); err != nil {
		return nil, err
	}
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}

	t, err := s.search(cfg)
	if err != nil {
		return nil, err
	}

	// The searcher's buffers are private to this call; hand them out directly.
	return t, nil
}

// Searcher runs repeated searches over one graph, reusing its buffers.
// A Searcher is not safe for concurrent use; use one per goroutine.
type Searcher struct {
	g       *network.Graph
	costs   []float64
	dist    []float64
	pred    []int
	visited []bool
	target  []int // generation stamp: target[v] == gen marks v as a target
	gen     int
	pq      nodePQ
	tree    Tree
}

// NewSearcher allocates a Searcher for g. A nil g yields a Searcher whose
// Reset returns ErrNilGraph.
func NewSearcher(g *network.Graph) *Searcher {
	s := &Searcher{g: g}
	if g == nil {
		return s
	}
	n := g.NumNodes()
	s.dist = make([]float64, n)
	s.pred = make([]int, n)
	s.visited = make([]bool, n)
	s.target = make([]int, n)
	s.pq = make(nodePQ, 0, n)

	return s
}

// Reset binds a new cost vector after validating it (O(E)).
// The slice is retained, not copied; callers must not modify it while searching.
func (s *Searcher) Reset(costs []float64) error {
	if s.g == nil {
		return ErrNilGraph
	}
	if len(costs) != s.g.NumLinks() {
		return fmt.Errorf("%w: got %d, want %d", ErrCostLength, len(costs), s.g.NumLinks())
	}
	for i, c := range costs {
		if c < 0 || math.IsNaN(c) {
			l := s.g.Link(i)
			return fmt.Errorf("%w: link %d (%d→%d) cost=%g", ErrNegativeWeight, i, l.From, l.To, c)
		}
	}
	s.costs = costs

	return nil
}

// From searches from source until every target is settled (all nodes when no
// target is given). The returned Tree aliases the Searcher's buffers and is
// valid until the next call.
func (s *Searcher) From(source int, targets ...int) (*Tree, error) {
	if s.g == nil {
		return nil, ErrNilGraph
	}
	if s.costs == nil {
		return nil, fmt.Errorf("%w: no costs bound", ErrCostLength)
	}
	cfg := DefaultOptions(source)
	cfg.Targets = targets

	return s.search(cfg)
}

// search validates the node arguments and runs the main loop.
func (s *Searcher) search(cfg Options) (*Tree, error) {
	n := s.g.NumNodes()

	// 1) Validate Source and targets.
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, cfg.Source)
	}
	s.gen++
	remaining := 0
	for _, v := range cfg.Targets {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("%w: target %d", ErrVertexNotFound, v)
		}
		if s.target[v] != s.gen {
			s.target[v] = s.gen
			remaining++
		}
	}

	// 2) Initialize dist[v] = +∞, pred[v] = -1, visited[v] = false.
	for v := 0; v < n; v++ {
		s.dist[v] = math.Inf(1)
		s.pred[v] = -1
		s.visited[v] = false
	}
	s.dist[cfg.Source] = 0
	s.pq = s.pq[:0]
	heap.Push(&s.pq, nodeItem{id: cfg.Source, dist: 0})

	// 3) Main loop: pop the closest unsettled node and relax its out-links.
	limited := remaining > 0
	for s.pq.Len() > 0 {
		item := heap.Pop(&s.pq).(nodeItem)
		u := item.id
		if s.visited[u] {
			continue // stale entry
		}
		if item.dist > cfg.MaxDistance {
			break
		}
		s.visited[u] = true

		if limited && s.target[u] == s.gen {
			remaining--
			if remaining == 0 {
				break
			}
		}
		s.relax(u, cfg.MaxDistance)
	}

	// 4) Nodes that were discovered but never settled are not part of the tree.
	for v := 0; v < n; v++ {
		if !s.visited[v] {
			s.dist[v] = math.Inf(1)
			s.pred[v] = -1
		}
	}

	s.tree = Tree{Source: cfg.Source, Dist: s.dist, PredLink: s.pred}

	return &s.tree, nil
}

// relax examines each link leaving u and improves the head's distance when
// a strictly shorter path is found.
func (s *Searcher) relax(u int, maxDist float64) {
	du := s.dist[u]
	for _, e := range s.g.OutLinks(u) {
		v := s.g.Head(e)
		if s.visited[v] {
			continue
		}
		nd := du + s.costs[e]
		if nd > maxDist || nd >= s.dist[v] {
			continue
		}
		s.dist[v] = nd
		s.pred[v] = e
		heap.Push(&s.pq, nodeItem{id: v, dist: nd})
	}
}

// PathLinks returns the link indices of the tree path from Source to v, in
// travel order, or nil when v is unreached or is the source.
func (t *Tree) PathLinks(g *network.Graph, v int) []int {
	if !t.Reached(v) || v == t.Source {
		return nil
	}
	var rev []int
	for u := v; u != t.Source; {
		e := t.PredLink[u]
		rev = append(rev, e)
		u = g.Tail(e)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by dist, with ties broken by node
// index so that pop order never depends on heap layout.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
