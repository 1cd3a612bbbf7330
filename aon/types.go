package aon

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the assignment oracle.
var (
	// ErrNilGraph indicates that a nil *network.Graph was passed.
	ErrNilGraph = errors.New("aon: graph is nil")

	// ErrNilDemand indicates that a nil *network.Demand was passed.
	ErrNilDemand = errors.New("aon: demand is nil")

	// ErrDemandMismatch indicates a demand built for a graph with another node table.
	ErrDemandMismatch = errors.New("aon: demand does not match graph")

	// ErrFlowLength indicates a destination flow vector whose length differs from NumLinks.
	ErrFlowLength = errors.New("aon: flow vector length does not match link count")

	// ErrUnreachable indicates an OD pair with positive demand and no path.
	ErrUnreachable = errors.New("aon: destination unreachable from origin")
)

// Options configures an Assigner.
//
// BatchSize – origins per batch (q); must be ≥ 1. Default 1.
// Workers   – number of goroutines that process batches; must be ≥ 1. Default 1.
type Options struct {
	BatchSize int
	Workers   int
}

// Option represents a functional option for configuring an Assigner.
type Option func(*Options)

// DefaultOptions returns the sequential configuration: one origin per batch,
// one worker.
func DefaultOptions() Options {
	return Options{BatchSize: 1, Workers: 1}
}

// WithBatchSize sets the number of origins per batch. Panics if q < 1.
func WithBatchSize(q int) Option {
	if q < 1 {
		panic(fmt.Sprintf("aon: WithBatchSize(%d): batch size must be ≥ 1", q))
	}
	return func(o *Options) {
		o.BatchSize = q
	}
}

// WithWorkers sets the number of parallel workers. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("aon: WithWorkers(%d): worker count must be ≥ 1", n))
	}
	return func(o *Options) {
		o.Workers = n
	}
}

// Result is the outcome of a one-shot assignment.
//
// Flow[i] is the volume loaded on link i. PathCost is Σ volume × shortest path
// cost over all OD pairs, which equals costs·Flow.
type Result struct {
	Flow     []float64
	PathCost float64
}
