// SPDX-License-Identifier: MIT
// Package: wardrop/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildNetwork(bopts, cons...). Resolves cfg, runs cons in order
//     over a shared link table, then validates it through network.NewGraph.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical link tables.
//   - Safety: never panic; constructors return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wardrop/network"
)

// Links is the link table shared by the constructors of one BuildNetwork call.
// Constructors only append; table order is emission order.
type Links struct {
	list []network.Link
}

// Len returns the number of links emitted so far.
func (l *Links) Len() int { return len(l.list) }

func (l *Links) add(link network.Link) { l.list = append(l.list, link) }

// Constructor appends links to the shared table using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit links in a stable, documented order.
//   - Preserve determinism for the same config and call order.
type Constructor func(l *Links, cfg builderConfig) error

// BuildNetwork resolves the builder configuration from bopts, applies all
// constructors in order and builds a network.Graph from the resulting table.
// Any constructor error is wrapped with the context "BuildNetwork: %w".
//
// Constructors share node ids: Path(3) followed by Path(3) emits the same
// links twice (parallel links). Use WithFirstID to offset a sub-network.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor + O(L) graph build.
func BuildNetwork(bopts []BuilderOption, cons ...Constructor) (*network.Graph, error) {
	cfg := newBuilderConfig(bopts...)

	links := &Links{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(links, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}
	if links.Len() == 0 {
		return nil, fmt.Errorf("BuildNetwork: no links emitted: %w", ErrConstructFailed)
	}

	g, err := network.NewGraph(links.list)
	if err != nil {
		return nil, fmt.Errorf("BuildNetwork: %w: %w", ErrConstructFailed, err)
	}

	return g, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Node ids are cfg.firstID + local index. Every generated link carries
// sampled capacity and free-flow time and a BPR latency with the configured
// shape, except Braess whose latencies are fixed polynomials.

// Path builds links 0→1→…→n-1 (n ≥ 2); WithTwoWay adds the reverse links.
// Complexity: O(n).
//func Path(n int) Constructor

// Cycle builds the ring 0→1→…→n-1→0 (n ≥ 3); WithTwoWay adds the reverse ring.
// Complexity: O(n).
//func Cycle(n int) Constructor

// Parallel builds k links from node 0 to node 1 (k ≥ 1).
// Complexity: O(k).
//func Parallel(k int) Constructor

// Grid builds an R×C grid with links both ways between 4-neighbours.
// Complexity: O(R*C).
//func Grid(rows, cols int) Constructor

// Complete builds links for every ordered pair of distinct nodes (n ≥ 2).
// Complexity: O(n^2).
//func Complete(n int) Constructor

// RandomSparse includes every ordered pair of distinct nodes with probability p.
// Requires cfg.rng != nil when 0 < p < 1.
// Complexity: O(n^2) Bernoulli trials.
//func RandomSparse(n int, p float64) Constructor

// Braess builds the four-node Braess paradox network.
// Complexity: O(1).
//func Braess() Constructor

// =============================================================================
// Demand helpers - implemented in demand.go
// =============================================================================

// AllToAll returns volume between every ordered pair of distinct nodes of g.
//func AllToAll(g *network.Graph, volume float64) (*network.Demand, error)
