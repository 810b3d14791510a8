// Package bfs provides breadth-first search over a core.Graph,
// returning fewest-edge distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/steeplejack/advent-of-code/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem[K comparable] struct {
	node  K
	depth int
}

// walker encapsulates mutable BFS state.
type walker[K comparable] struct {
	graph *core.Graph[K]
	opts  Options
	ctx   context.Context
	queue []queueItem[K]
	res   *Result[K]
}

// BFS runs breadth-first search on g starting from start.
// Edge weights are ignored: depth counts edges, which equals the weighted
// distance on unit-weight graphs such as gridgraph track graphs.
// Returns ErrGraphNil, ErrOptionViolation or ErrStartNotFound for invalid
// input, and ctx.Err() on cancellation.
func BFS[K comparable](g *core.Graph[K], start K, opts ...Option) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}

	n := g.NodeCount()
	w := &walker[K]{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem[K], 0, n),
		res: &Result[K]{
			Order:  make([]K, 0, n),
			Depth:  make(map[K]int, n),
			Parent: make(map[K]K, n),
		},
	}

	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem[K]{node: start})

	return w.res, w.loop()
}

// loop processes the queue until empty or cancellation.
func (w *walker[K]) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.node)

		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// enqueueNeighbors enqueues each unseen neighbor of item in value order,
// honouring MaxDepth.
func (w *walker[K]) enqueueNeighbors(item queueItem[K]) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	nbs, err := w.graph.Neighbors(item.node)
	if err != nil {
		return err
	}
	for _, nb := range nbs {
		if _, seen := w.res.Depth[nb.Node]; seen {
			continue
		}
		w.res.Depth[nb.Node] = next
		w.res.Parent[nb.Node] = item.node
		w.queue = append(w.queue, queueItem[K]{node: nb.Node, depth: next})
	}
	return nil
}
