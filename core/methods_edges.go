// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edge.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import "fmt"

// AddEdge joins a and b with an undirected edge of the given weight.
//
// Steps:
//  1. Reject negative weights (ErrNegativeWeight).
//  2. Lock mu, resolve both endpoints (ErrNodeNotFound if either is missing).
//  3. Store the weight in both adjacency directions; an existing pair is overwritten.
//
// Complexity: O(1) amortized.
func (g *Graph[K]) AddEdge(a, b K, weight int64) error {
	if weight < 0 {
		return fmt.Errorf("%w: %v---%d---%v", ErrNegativeWeight, a, weight, b)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	u, ok := g.index[a]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNodeNotFound, a)
	}
	v, ok := g.index[b]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNodeNotFound, b)
	}

	if _, exists := g.adj[u][v]; !exists {
		g.edges++
	}
	g.adj[u][v] = weight
	g.adj[v][u] = weight

	return nil
}

// HasEdge reports whether a and b are adjacent. Missing nodes yield false.
// Complexity: O(1).
func (g *Graph[K]) HasEdge(a, b K) bool {
	_, err := g.Edge(a, b)

	return err == nil
}

// Edge returns the edge between a and b.
//
// Errors:
//   - ErrNodeNotFound: if either endpoint is missing.
//   - ErrEdgeNotFound: if both exist but are not adjacent.
//
// Complexity: O(1).
func (g *Graph[K]) Edge(a, b K) (Edge[K], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	u, ok := g.index[a]
	if !ok {
		return Edge[K]{}, fmt.Errorf("%w: %v", ErrNodeNotFound, a)
	}
	v, ok := g.index[b]
	if !ok {
		return Edge[K]{}, fmt.Errorf("%w: %v", ErrNodeNotFound, b)
	}
	w, ok := g.adj[u][v]
	if !ok {
		return Edge[K]{}, fmt.Errorf("%w: %v---%v", ErrEdgeNotFound, a, b)
	}

	return Edge[K]{From: a, To: b, Weight: w}, nil
}
