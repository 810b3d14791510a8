// Package core defines the central Graph, Node, and Edge types,
// and provides thread-safe primitives for building and querying graphs.
//
// This file declares Node, Edge, Neighbor, Graph, GraphOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrDuplicateNode  - node value already registered.
//	ErrNodeNotFound   - requested node does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrNegativeWeight - edge weight below zero.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateNode indicates an attempt to register a node value twice.
	ErrDuplicateNode = errors.New("core: node already in graph")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not in graph")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not in graph")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: edge weight must be non-negative")
)

// Node is a registered graph node.
//
// Value uniquely identifies the Node within its Graph; Index is the arena
// slot assigned at insertion time and never changes afterwards.
type Node[K comparable] struct {
	// Value is the caller-supplied identity of the node.
	Value K

	// Index is the position of the node in the graph's arena.
	Index int
}

// Edge is an undirected connection between two nodes.
type Edge[K comparable] struct {
	// From and To are the endpoint values, in the order they were queried.
	From, To K

	// Weight is the non-negative cost of traversing the edge.
	Weight int64
}

// Neighbor is a (weight, node) pair adjacent to some node.
type Neighbor[K comparable] struct {
	Weight int64
	Node   K
}

// CompareFunc orders node values: negative if a < b, zero if equal, positive if a > b.
// It is used only for deterministic iteration, never for correctness.
type CompareFunc[K comparable] func(a, b K) int

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(o *graphOptions)

type graphOptions struct {
	capacity int
}

// WithCapacity preallocates arena storage for n nodes.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(o *graphOptions) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// Graph is the core in-memory undirected weighted graph.
//
// Nodes live in an arena (nodes) and are interned by value (index); adjacency
// is keyed by arena index, so no node holds a reference to another node.
// mu guards all fields; a built graph may be queried concurrently.
type Graph[K comparable] struct {
	mu sync.RWMutex

	compare CompareFunc[K]

	// Storage
	nodes []Node[K]       // arena slot → Node
	index map[K]int       // value → arena slot
	adj   []map[int]int64 // adj[u][v] = weight; mirrored for v→u
	edges int             // number of undirected pairs
}

// NewGraph creates an empty Graph ordered by compare.
// Complexity: O(1) plus any preallocation requested via WithCapacity.
func NewGraph[K comparable](compare CompareFunc[K], opts ...GraphOption) *Graph[K] {
	var o graphOptions
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph[K]{
		compare: compare,
		nodes:   make([]Node[K], 0, o.capacity),
		index:   make(map[K]int, o.capacity),
		adj:     make([]map[int]int64, 0, o.capacity),
	}
}
