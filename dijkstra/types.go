// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; nodes beyond this are not settled.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrNodeNotFound    if the source or target value does not exist in the graph.
//	– ErrNoPath          if UniquePath finds the target unreachable.
//	– ErrAmbiguousPath   if UniquePath finds more than one shortest path.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"
	"math"
)

// Inf is the distance reported for nodes the source cannot reach.
const Inf int64 = math.MaxInt64

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that the source or target does not exist in the graph.
	// Returned errors also wrap core.ErrNodeNotFound.
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")

	// ErrNoPath indicates that a unique path was requested but the target is unreachable.
	ErrNoPath = errors.New("dijkstra: target unreachable from source")

	// ErrAmbiguousPath indicates that a unique path was requested but several
	// co-optimal paths exist.
	ErrAmbiguousPath = errors.New("dijkstra: more than one shortest path")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – optional cap on distances to explore (nodes beyond are left at Inf).
//
//	Must be ≥ 0. Default is Inf (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is Inf (no obstacles).
type Options struct {
	MaxDistance      int64 // Maximum distance to explore
	InfEdgeThreshold int64 // Weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable. Edges with weight ≥ threshold are skipped entirely.
// Must pass a positive value; zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - MaxDistance:      Inf (no distance limit; explore all reachable).
//   - InfEdgeThreshold: Inf (no edges treated as impassable).
func DefaultOptions() Options {
	return Options{
		MaxDistance:      Inf,
		InfEdgeThreshold: Inf,
	}
}

// Result holds the outcome of ShortestPaths from one source.
//
//   - Dist:  node → shortest distance from the source (Inf if unreachable).
//   - Paths: node → every shortest path from the source to that node, each a
//     sequence starting at the source. Unreachable nodes map to an empty set.
type Result[K comparable] struct {
	Source K
	Dist   map[K]int64
	Paths  map[K][][]K
}

// DistanceTo returns the shortest distance to v, or Inf if v is unknown or unreachable.
func (r *Result[K]) DistanceTo(v K) int64 {
	d, ok := r.Dist[v]
	if !ok {
		return Inf
	}
	return d
}

// PathsTo returns all shortest paths to v (nil if unreachable or unknown).
func (r *Result[K]) PathsTo(v K) [][]K {
	return r.Paths[v]
}
