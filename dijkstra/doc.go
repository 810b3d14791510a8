// Package dijkstra provides Dijkstra's shortest-path algorithm on core.Graph
// values with non-negative edge weights, including recovery of every
// co-optimal path.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source node to all
//     reachable nodes in O((V + E) log V) time, where V = |nodes| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest node.
//   - Supports early exit at a target, all-shortest-paths tracking, distance caps,
//     and “impassable” edge thresholds.
//
// Entry points:
//
//	ShortestDistances(g, source, opts...)        (map[K]int64, error)
//	ShortestDistance(g, source, target, opts...) (int64, error)
//	ShortestPaths(g, source, opts...)            (*Result[K], error)
//	ShortestPathsTo(g, source, target, opts...)  (int64, [][]K, error)
//	UniquePath(g, source, target, opts...)       ([]K, int64, error)
//
// The distance and path variants share one relaxation core:
//
//   - The heap is seeded with (0, source); popped entries whose distance is
//     greater than the recorded best are stale and skipped (lazy deletion).
//   - A neighbor is pushed again only on strict improvement. Ties are never
//     pushed; in the path variant a tie appends the current node's paths,
//     extended by the neighbor, to the neighbor's path set.
//   - A node is marked settled after its edges are relaxed and is never relaxed again.
//   - With a target, the run stops when the target is popped.
//
// Path sets are kept as persistent linked trails that share prefixes, and are
// only copied into slices when results are returned.
//
// Unreachable targets:
//
//	Not an error. Distances report Inf (math.MaxInt64) and path sets are empty.
//	UniquePath is the exception: its contract is "exactly one path", so it returns
//	ErrNoPath or ErrAmbiguousPath when that precondition does not hold.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil *core.Graph.
//   - ErrNodeNotFound:    source or target not in the graph; also matches core.ErrNodeNotFound.
//   - ErrNoPath:          UniquePath on an unreachable target.
//   - ErrAmbiguousPath:   UniquePath with several shortest paths.
//   - ErrBadMaxDistance:  (via panic) WithMaxDistance with a negative value.
//   - ErrBadInfThreshold: (via panic) WithInfEdgeThreshold with a non-positive value.
//
// Thread safety:
//
//   - Every call allocates its own state; nothing is cached across calls, so
//     repeated calls with the same inputs return identical results.
//   - Concurrent calls on the same graph are safe as long as nobody mutates it.
package dijkstra
