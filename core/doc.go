// Package core provides a thread-safe, generic in-memory undirected weighted
// Graph with a minimal, composable API surface.
//
// The Graph G = (V,E) is keyed by any comparable value K:
//
//   - Nodes are unique per value; a second AddNode(v) fails with ErrDuplicateNode.
//   - Edges are undirected and stored symmetrically: AddEdge(a, b, w) makes
//     b reachable from a and a from b with the same weight.
//   - Re-adding an edge between the same pair overwrites its weight (no multigraph).
//   - Weights are non-negative int64 values.
//
// Storage is an arena: nodes occupy integer slots and adjacency is kept as
// adj[u][v] = weight over those slots. Nodes never point at each other, which
// keeps equality and hashing down to the key itself and lets algorithms hold
// per-run state in flat slices indexed by slot (see IndexOf, ValueAt, EachNeighbor).
//
// Ordering:
//
//	A CompareFunc supplied at construction orders node values. It drives the
//	deterministic output of Nodes() and Neighbors() and nothing else.
//	NewOrderedGraph covers builtin ordered keys; composite keys such as grid
//	coordinates pass their own Compare method.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(value K) error                // O(1)
//	HasNode(value K) bool                 // O(1)
//	Node(value K) (Node[K], error)        // O(1)
//	Nodes() []K                           // O(V log V), sorted
//
//	// Edge lifecycle
//	AddEdge(a, b K, weight int64) error   // O(1)
//	HasEdge(a, b K) bool                  // O(1)
//	Edge(a, b K) (Edge[K], error)         // O(1)
//
//	// Neighborhood
//	Neighbors(value K) ([]Neighbor[K], error) // O(d log d), sorted
//
// Errors:
//
//	ErrDuplicateNode  - AddNode with a value already present.
//	ErrNodeNotFound   - edge or query references an unregistered value.
//	ErrEdgeNotFound   - Edge(a, b) on non-adjacent nodes.
//	ErrNegativeWeight - AddEdge with weight < 0.
//
// Concurrency:
//
//	A single sync.RWMutex guards the arena, intern table and adjacency.
//	Graphs are built once and then queried; concurrent readers are safe.
package core
