// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, EachNeighbor).
// Determinism:
//   - Neighbors() sorts by neighbor value ascending.
//   - EachNeighbor() visits in map order; callers must not depend on it.

package core

import (
	"fmt"
	"slices"
)

// Neighbors returns the (weight, neighbor) pairs adjacent to value.
//
// Behavior highlights:
//   - Sorted by neighbor value (graph CompareFunc) for reproducible output.
//   - An isolated node yields an empty, non-nil slice.
//
// Errors:
//   - ErrNodeNotFound: if value is not registered.
//
// Complexity: O(d log d), d = degree.
func (g *Graph[K]) Neighbors(value K) ([]Neighbor[K], error) {
	g.mu.RLock()
	u, ok := g.index[value]
	if !ok {
		g.mu.RUnlock()
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, value)
	}
	out := make([]Neighbor[K], 0, len(g.adj[u]))
	for v, w := range g.adj[u] {
		out = append(out, Neighbor[K]{Weight: w, Node: g.nodes[v].Value})
	}
	g.mu.RUnlock()

	slices.SortFunc(out, func(x, y Neighbor[K]) int { return g.compare(x.Node, y.Node) })

	return out, nil
}

// EachNeighbor calls fn(v, w) for every neighbor index v of arena index u with
// edge weight w, under the graph's read lock. fn must not mutate the graph.
// Iteration stops early when fn returns false.
//
// This is the allocation-free path used by the shortest-path engine.
func (g *Graph[K]) EachNeighbor(u int, fn func(v int, w int64) bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for v, w := range g.adj[u] {
		if !fn(v, w) {
			return
		}
	}
}
