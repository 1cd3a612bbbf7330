package aon

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/wardrop/dijkstra"
	"github.com/katalvlaran/wardrop/network"
)

// Assigner performs repeated all-or-nothing assignments of one demand on one
// graph topology. It is not safe for concurrent use.
type Assigner struct {
	g       *network.Graph
	d       *network.Demand
	opts    Options
	batches int
	workers []*worker
}

// worker owns the private state of one goroutine.
type worker struct {
	s    *dijkstra.Searcher
	flow []float64
	cost float64
	err  error
}

// New validates g and d and prepares per-worker buffers.
// Workers is capped at the number of batches.
func New(g *network.Graph, d *network.Demand, opts ...Option) (*Assigner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if d == nil {
		return nil, ErrNilDemand
	}
	if !d.Matches(g) {
		return nil, fmt.Errorf("%w: demand has %d nodes, graph has %d", ErrDemandMismatch, d.NumNodes(), g.NumNodes())
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &Assigner{g: g, d: d, opts: cfg}
	a.batches = (d.NumOrigins() + cfg.BatchSize - 1) / cfg.BatchSize
	n := cfg.Workers
	if n > a.batches {
		n = a.batches
	}
	if n < 1 {
		n = 1
	}
	a.workers = make([]*worker, n)
	for w := range a.workers {
		a.workers[w] = &worker{
			s:    dijkstra.NewSearcher(g),
			flow: make([]float64, g.NumLinks()),
		}
	}

	return a, nil
}

// Assign loads the demand on shortest paths under costs, overwriting dst, and
// returns the total shortest path cost.
func (a *Assigner) Assign(costs, dst []float64) (float64, error) {
	if len(dst) != a.g.NumLinks() {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrFlowLength, len(dst), a.g.NumLinks())
	}

	// 1) Bind the costs to every searcher; the first Reset reports bad costs.
	for _, w := range a.workers {
		if err := w.s.Reset(costs); err != nil {
			return 0, err
		}
	}

	// 2) Run batches. A single worker stays on the calling goroutine.
	if len(a.workers) == 1 {
		a.run(0)
	} else {
		var wg sync.WaitGroup
		for w := range a.workers {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				a.run(w)
			}(w)
		}
		wg.Wait()
	}

	// 3) Reduce in worker order.
	for i := range dst {
		dst[i] = 0
	}
	var total float64
	for _, w := range a.workers {
		if w.err != nil {
			return 0, w.err
		}
		for i, v := range w.flow {
			dst[i] += v
		}
		total += w.cost
	}

	return total, nil
}

// run processes batches w, w+n, w+2n, ... into worker w's buffer.
func (a *Assigner) run(w int) {
	wk := a.workers[w]
	for i := range wk.flow {
		wk.flow[i] = 0
	}
	wk.cost, wk.err = 0, nil

	n := len(a.workers)
	q := a.opts.BatchSize
	for b := w; b < a.batches; b += n {
		end := (b + 1) * q
		if end > a.d.NumOrigins() {
			end = a.d.NumOrigins()
		}
		for k := b * q; k < end; k++ {
			if err := a.load(wk, k); err != nil {
				wk.err = err
				return
			}
		}
	}
}

// load searches from the k-th origin and adds each destination's volume
// along its tree path.
func (a *Assigner) load(wk *worker, k int) error {
	o := a.d.Origin(k)
	dests, vols := a.d.Destinations(k)
	tree, err := wk.s.From(o, dests...)
	if err != nil {
		return err
	}
	for j, dv := range dests {
		if !tree.Reached(dv) {
			return fmt.Errorf("%w: origin %d destination %d", ErrUnreachable, a.g.NodeID(o), a.g.NodeID(dv))
		}
		vol := vols[j]
		wk.cost += vol * tree.Dist[dv]
		for u := dv; u != o; {
			e := tree.PredLink[u]
			wk.flow[e] += vol
			u = a.g.Tail(e)
		}
	}

	return nil
}

// Assign is a convenience wrapper that builds an Assigner and runs it once.
func Assign(g *network.Graph, costs []float64, d *network.Demand, opts ...Option) (*Result, error) {
	a, err := New(g, d, opts...)
	if err != nil {
		return nil, err
	}
	res := &Result{Flow: make([]float64, g.NumLinks())}
	if res.PathCost, err = a.Assign(costs, res.Flow); err != nil {
		return nil, err
	}

	return res, nil
}
