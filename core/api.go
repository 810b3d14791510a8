// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade exposing constructors and read-only counters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// NewOrderedGraph creates a Graph over a builtin ordered key type (ints, strings, floats),
// ordered by cmp.Compare.
//
// Implementation:
//   - Stage 1: Instantiate cmp.Compare for K.
//   - Stage 2: Delegate to NewGraph so construction logic stays centralized.
//
// Complexity:
//   - Time O(len(opts)), Space O(1).
func NewOrderedGraph[K constraints.Ordered](opts ...GraphOption) *Graph[K] {
	return NewGraph[K](cmp.Compare[K], opts...)
}

// NodeCount returns the number of registered nodes.
// Complexity: O(1).
func (g *Graph[K]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of undirected node pairs joined by an edge.
// Self loops count once.
// Complexity: O(1).
func (g *Graph[K]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Compare orders two node values with the graph's CompareFunc.
func (g *Graph[K]) Compare(a, b K) int {
	return g.compare(a, b)
}
