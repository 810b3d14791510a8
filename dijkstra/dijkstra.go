// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source node to all
// other reachable nodes in a graph with non-negative edge weights.
// It processes nodes in order of increasing distance using a min-heap priority queue,
// relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - Per-run state lives in slices indexed by the graph's arena slots, not in maps.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - With a target, we return as soon as the target is popped: nodes are popped in
//     non-decreasing final-distance order, so the first pop is final.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/steeplejack/advent-of-code/core"
)

// ShortestDistances computes the shortest distance from source to every node of g.
//
// Returns:
//
//   - map from every node value to its minimum distance (Inf if unreachable).
//   - ErrNilGraph, or ErrNodeNotFound if source is not in g. Validation happens
//     before any queue processing.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestDistances[K comparable](g *core.Graph[K], source K, opts ...Option) (map[K]int64, error) {
	r, err := newRunner(g, source, nil, false, opts)
	if err != nil {
		return nil, err
	}
	r.process()

	return r.distanceMap(), nil
}

// ShortestDistance computes the shortest distance from source to target, returning
// as soon as target is settled. An unreachable target yields Inf and a nil error:
// absence of a path is a valid outcome, not a failure.
func ShortestDistance[K comparable](g *core.Graph[K], source, target K, opts ...Option) (int64, error) {
	r, err := newRunner(g, source, &target, false, opts)
	if err != nil {
		return Inf, err
	}
	r.process()

	return r.dist[r.target], nil
}

// runner holds the mutable state for a single Dijkstra execution.
// All slices are indexed by arena slot (core.Graph.IndexOf).
type runner[K comparable] struct {
	g       *core.Graph[K] // The input graph; read-only within Dijkstra.
	options Options        // Configuration options (thresholds).
	source  int            // Arena slot of the source.
	target  int            // Arena slot of the target, or -1 when exploring everything.
	dist    []int64        // Slot → current best distance from source.
	visited []bool         // Tracks if a slot's distance is finalized.
	trails  [][]*trail     // Slot → every shortest trail ending there; nil unless tracking paths.
	pq      nodePQ         // Min-heap of *nodeItem for lazy priority queue.
}

// newRunner validates the inputs and builds the initial state.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source (ErrNodeNotFound).
//  3. g must contain target, when one is given (ErrNodeNotFound).
func newRunner[K comparable](g *core.Graph[K], source K, target *K, trackPaths bool, opts []Option) (*runner[K], error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	src, err := g.Node(source)
	if err != nil {
		return nil, fmt.Errorf("%w: source: %w", ErrNodeNotFound, err)
	}
	dst := -1
	if target != nil {
		t, err := g.Node(*target)
		if err != nil {
			return nil, fmt.Errorf("%w: target: %w", ErrNodeNotFound, err)
		}
		dst = t.Index
	}

	n := g.NodeCount()
	r := &runner[K]{
		g:       g,
		options: cfg,
		source:  src.Index,
		target:  dst,
		dist:    make([]int64, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	if trackPaths {
		r.trails = make([][]*trail, n)
	}
	r.init()

	return r, nil
}

// init sets dist[v] = +∞ for every node, dist[source] = 0, and pushes the source.
func (r *runner[K]) init() {
	for i := range r.dist {
		r.dist[i] = Inf
	}
	r.dist[r.source] = 0
	if r.trails != nil {
		r.trails[r.source] = []*trail{{node: r.source, size: 1}}
	}

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{idx: r.source, dist: 0})
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the node
// with the minimum distance from the source and relaxes its edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable nodes processed).
//   - The target (if any) is popped.
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner[K]) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.idx, item.dist

		// Stale entry: a shorter distance was recorded after this push.
		if r.visited[u] || d > r.dist[u] {
			continue
		}

		if d > r.options.MaxDistance {
			break
		}

		if u == r.target {
			return
		}

		r.relax(u)
		r.visited[u] = true
	}
}

// relax examines every edge of u and attempts to improve distances to its unvisited neighbors.
//
// Strictly shorter candidates replace the neighbor's distance (and trail set) and
// push a new heap entry. Equal candidates are never pushed again; when paths are
// tracked they extend the neighbor's trail set instead.
//
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner[K]) relax(u int) {
	du := r.dist[u]
	r.g.EachNeighbor(u, func(v int, w int64) bool {
		if v == u || r.visited[v] || w >= r.options.InfEdgeThreshold {
			return true
		}

		newDist := du + w
		if newDist > r.options.MaxDistance {
			return true
		}

		switch {
		case newDist < r.dist[v]:
			r.dist[v] = newDist
			if r.trails != nil {
				r.trails[v] = extend(r.trails[u], v, nil)
			}
			heap.Push(&r.pq, &nodeItem{idx: v, dist: newDist})
		case newDist == r.dist[v] && r.trails != nil:
			r.trails[v] = extend(r.trails[u], v, r.trails[v])
		}

		return true
	})
}

// distanceMap converts the slot-indexed distances into a value-keyed map,
// initialized over all nodes in their sorted order.
func (r *runner[K]) distanceMap() map[K]int64 {
	nodes := r.g.Nodes()
	out := make(map[K]int64, len(nodes))
	for _, v := range nodes {
		idx, _ := r.g.IndexOf(v)
		out[v] = r.dist[idx]
	}

	return out
}

// nodeItem represents a node slot and its distance from the source at push time.
type nodeItem struct {
	idx  int   // arena slot
	dist int64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, idx) ascending.
// Ordering by slot on equal distances makes pop order, and therefore the
// order of merged path sets, reproducible.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].idx < pq[j].idx
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
