// Package builder defines shared constants used by network builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodParallel is the canonical name for the Parallel constructor.
	MethodParallel = "Parallel"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodBraess is the canonical name for the Braess constructor.
	MethodBraess = "Braess"
	// MethodAllToAll is the canonical name for the AllToAll demand helper.
	MethodAllToAll = "AllToAll"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinPathNodes is the smallest meaningful size for a path.
// A path of fewer than 2 nodes has no links.
const MinPathNodes = 2

// MinCycleNodes is the smallest meaningful size for a ring road.
const MinCycleNodes = 3

// MinParallelLinks is the smallest number of routes in a Parallel network.
const MinParallelLinks = 1

// MinGridDim is the smallest allowed dimension (rows or cols) for a Grid.
// A 1×1 grid emits no links; BuildNetwork rejects it unless another
// constructor contributes links.
const MinGridDim = 1

// MinCompleteNodes is the smallest meaningful size for a complete network.
const MinCompleteNodes = 2

//-----------------------------------------------------------------------------
// Default Link Attributes and Probability Bounds
//-----------------------------------------------------------------------------

// DefaultCapacity is the link capacity used when no capacity sampler is set.
const DefaultCapacity = 100.0

// DefaultFreeFlowTime is the free-flow time used when no sampler is set.
const DefaultFreeFlowTime = 1.0

// MinProbability is the lower bound for p in RandomSparse, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for p in RandomSparse, inclusive.
const MaxProbability = 1.0
