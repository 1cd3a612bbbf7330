// Package dijkstra defines core types and configuration options
// for shortest-path trees over a network.Graph with per-link float costs.
//
// Options:
//
//	– Source:      internal index of the root node (must be in [0, NumNodes)).
//	– Targets:     optional node set; the search stops once all of them are settled.
//	– MaxDistance: optional cap on distances to explore; farther nodes stay unreached.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source or a target index is out of range.
//	– ErrCostLength      if the cost vector does not have one entry per link.
//	– ErrNegativeWeight  if a cost is negative or NaN.
//	– ErrBadMaxDistance  if MaxDistance < 0.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *network.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or a target index is out of range.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrCostLength indicates a cost vector whose length differs from the link count.
	ErrCostLength = errors.New("dijkstra: cost vector length does not match link count")

	// ErrNegativeWeight indicates that a negative (or NaN) link cost was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative link cost encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures a single shortest-path search.
//
// Source      – internal node index of the root.
// Targets     – if non-empty, the search ends as soon as all targets are settled.
// MaxDistance – nodes farther than this are not explored. Default +Inf.
type Options struct {
	Source      int
	Targets     []int
	MaxDistance float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the root node (internal index).
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithTargets limits the search to the given nodes. Distances of nodes not
// settled before the last target are left at +Inf.
func WithTargets(targets ...int) Option {
	return func(o *Options) {
		o.Targets = targets
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options for the given source with no targets and no
// distance cap.
func DefaultOptions(source int) Options {
	return Options{
		Source:      source,
		MaxDistance: math.Inf(1),
	}
}

// Tree is a shortest-path tree rooted at Source.
//
// Dist[v] is the minimum cost from Source to v (+Inf if unreached).
// PredLink[v] is the index of the last link on one shortest path to v,
// or -1 for the source and for unreached nodes.
type Tree struct {
	Source   int
	Dist     []float64
	PredLink []int
}

// Reached reports whether v was settled with a finite distance.
func (t *Tree) Reached(v int) bool {
	return v >= 0 && v < len(t.Dist) && !math.IsInf(t.Dist[v], 1)
}
