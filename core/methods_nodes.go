// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns values sorted ascending by the graph's CompareFunc.
//
// Concurrency:
//   - Node arena and intern table protected by mu.

package core

import (
	"fmt"
	"slices"
)

// AddNode registers a new node keyed by value.
//
// Implementation:
//   - Stage 1: Under mu write lock, check the intern table.
//   - Stage 2: Append the node to the arena and bootstrap its adjacency bucket.
//
// Errors:
//   - ErrDuplicateNode: if value is already registered.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[K]) AddNode(value K) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.index[value]; exists {
		return fmt.Errorf("%w: %v", ErrDuplicateNode, value)
	}

	idx := len(g.nodes)
	g.nodes = append(g.nodes, Node[K]{Value: value, Index: idx})
	g.index[value] = idx
	g.adj = append(g.adj, make(map[int]int64))

	return nil
}

// HasNode reports whether value is registered.
// Complexity: O(1).
func (g *Graph[K]) HasNode(value K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.index[value]

	return ok
}

// Node returns the node registered for value.
//
// Errors:
//   - ErrNodeNotFound: if value was never added.
//
// Complexity: O(1).
func (g *Graph[K]) Node(value K) (Node[K], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	idx, ok := g.index[value]
	if !ok {
		return Node[K]{}, fmt.Errorf("%w: %v", ErrNodeNotFound, value)
	}

	return g.nodes[idx], nil
}

// Nodes returns every node value, sorted ascending by the graph's CompareFunc.
// The returned slice is a fresh copy.
//
// Complexity: O(V log V).
func (g *Graph[K]) Nodes() []K {
	g.mu.RLock()
	out := make([]K, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.Value
	}
	g.mu.RUnlock()

	slices.SortFunc(out, g.compare)

	return out
}

// IndexOf returns the arena index of value and whether it exists.
// Algorithms use indices to keep their per-run state in flat slices.
func (g *Graph[K]) IndexOf(value K) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	idx, ok := g.index[value]

	return idx, ok
}

// ValueAt returns the value stored at arena index idx.
// It panics if idx is out of range, like a slice access.
func (g *Graph[K]) ValueAt(idx int) K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes[idx].Value
}
