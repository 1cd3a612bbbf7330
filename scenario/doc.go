// Package scenario decodes a self-contained YAML traffic scenario (links,
// demand, traveler classes, solver settings) and builds the network,
// demand, classes and solver options the equilibrium packages consume.
//
// A minimal scenario:
//
//	solver:
//	  strategy: line-search
//	  max-iter: 200
//	links:
//	  - {from: 1, to: 2, capacity: 100, fftt: 10}
//	  - {from: 1, to: 2, capacity: 50, fftt: 20, coefficients: [20, 1]}
//	demand:
//	  - {origin: 1, destination: 2, volume: 30}
//
// Links without coefficients use a BPR curve with the link's alpha and beta
// (defaults 0.15 and 4). Without a classes section the scenario is
// single-class. Each class takes either a share of the base demand or its
// own demand list, and may perceive small links through a cognitive penalty.
package scenario
