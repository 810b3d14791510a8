package dijkstra

import (
	"fmt"

	"github.com/steeplejack/advent-of-code/core"
)

// ShortestPaths computes, from source, the shortest distance to every node and
// every shortest path achieving it.
//
// On a strict improvement a neighbor's path set is replaced by the current
// node's paths extended by the neighbor; on a tie those extensions are appended,
// so no co-optimal path is dropped. Completeness holds for positive weights;
// zero-weight edges between equidistant nodes may hide some co-optimal paths.
//
// The number of shortest paths can grow exponentially on open grids; callers
// running this on large unconstrained areas should prefer ShortestDistances.
func ShortestPaths[K comparable](g *core.Graph[K], source K, opts ...Option) (*Result[K], error) {
	r, err := newRunner(g, source, nil, true, opts)
	if err != nil {
		return nil, err
	}
	r.process()

	nodes := g.Nodes()
	res := &Result[K]{
		Source: source,
		Dist:   make(map[K]int64, len(nodes)),
		Paths:  make(map[K][][]K, len(nodes)),
	}
	for _, v := range nodes {
		idx, _ := g.IndexOf(v)
		res.Dist[v] = r.dist[idx]
		res.Paths[v] = r.materialize(r.trails[idx])
	}

	return res, nil
}

// ShortestPathsTo computes the shortest distance from source to target and every
// path achieving it, returning as soon as target is settled.
// An unreachable target yields (Inf, empty set, nil).
func ShortestPathsTo[K comparable](g *core.Graph[K], source, target K, opts ...Option) (int64, [][]K, error) {
	r, err := newRunner(g, source, &target, true, opts)
	if err != nil {
		return Inf, nil, err
	}
	r.process()

	if r.dist[r.target] == Inf {
		return Inf, [][]K{}, nil
	}

	return r.dist[r.target], r.materialize(r.trails[r.target]), nil
}

// UniquePath returns the single shortest path from source to target and its length.
//
// Errors:
//   - ErrNoPath:        target is unreachable.
//   - ErrAmbiguousPath: more than one shortest path exists. Analyses that are only
//     defined over one simple path must not pick one arbitrarily.
//   - any error from ShortestPathsTo.
func UniquePath[K comparable](g *core.Graph[K], source, target K, opts ...Option) ([]K, int64, error) {
	d, paths, err := ShortestPathsTo(g, source, target, opts...)
	if err != nil {
		return nil, Inf, err
	}
	switch {
	case d == Inf:
		return nil, Inf, fmt.Errorf("%w: %v → %v", ErrNoPath, source, target)
	case len(paths) != 1:
		return nil, d, fmt.Errorf("%w: %v → %v has %d", ErrAmbiguousPath, source, target, len(paths))
	}

	return paths[0], d, nil
}

// trail is one shortest path stored back to front. Extending a path allocates a
// single link and shares the whole prefix, so co-optimal paths cost O(1) per
// extension instead of a copy of the prefix.
type trail struct {
	node int    // arena slot of the last node
	prev *trail // path without its last node; nil at the source
	size int    // number of nodes on the path
}

// extend appends, for every trail in from, a copy ending at node v onto dst.
func extend(from []*trail, v int, dst []*trail) []*trail {
	if dst == nil {
		dst = make([]*trail, 0, len(from))
	}
	for _, t := range from {
		dst = append(dst, &trail{node: v, prev: t, size: t.size + 1})
	}

	return dst
}

// materialize converts trails into value sequences from source to end.
// An empty or nil trail set yields an empty, non-nil result.
func (r *runner[K]) materialize(ts []*trail) [][]K {
	out := make([][]K, len(ts))
	for i, t := range ts {
		path := make([]K, t.size)
		for j, cur := len(path)-1, t; cur != nil; j, cur = j-1, cur.prev {
			path[j] = r.g.ValueAt(cur.node)
		}
		out[i] = path
	}

	return out
}
