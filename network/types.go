package network

import (
	"errors"

	"github.com/katalvlaran/wardrop/latency"
)

// Sentinel errors for network construction and evaluation.
var (
	// ErrEmptyGraph indicates a graph without links.
	ErrEmptyGraph = errors.New("network: graph has no links")

	// ErrNegativeCapacity indicates a link with negative or NaN capacity.
	ErrNegativeCapacity = errors.New("network: negative capacity")

	// ErrBadFreeFlowTime indicates a link with negative or non-finite free-flow time.
	ErrBadFreeFlowTime = errors.New("network: invalid free-flow time")

	// ErrBadLatency indicates a link whose volume-delay function failed validation.
	ErrBadLatency = errors.New("network: invalid latency function")

	// ErrUnknownNode indicates a demand entry referencing a node absent from the graph.
	ErrUnknownNode = errors.New("network: unknown node")

	// ErrBadVolume indicates a negative or non-finite demand volume.
	ErrBadVolume = errors.New("network: invalid demand volume")

	// ErrLengthMismatch indicates a flow or cost vector whose length differs from NumLinks.
	ErrLengthMismatch = errors.New("network: vector length does not match link count")

	// ErrBadPenalty indicates an invalid cognitive-cost transform.
	ErrBadPenalty = errors.New("network: invalid cognitive penalty")

	// ErrBadShare indicates a demand share outside [0, 1].
	ErrBadShare = errors.New("network: demand share must lie in [0, 1]")
)

// Link is one directed road segment.
//
// A nil Latency is resolved by NewGraph to latency.NewBPR(FreeFlowTime, Capacity).
type Link struct {
	From         int          // external id of the tail node
	To           int          // external id of the head node
	Capacity     float64      // practical capacity, ≥ 0
	FreeFlowTime float64      // travel time at zero flow, ≥ 0
	Latency      latency.Func // volume-delay function
}

// OD is one origin-destination demand entry, expressed in external node ids.
type OD struct {
	Origin      int
	Destination int
	Volume      float64
}

// Cognitive describes a class-specific perception of low-capacity links.
//
// Links with Capacity < Threshold are perceived as Multiply·t(x) + Add.
// A zero Multiply means 1 (no scaling).
type Cognitive struct {
	Threshold float64
	Add       float64
	Multiply  float64
}
