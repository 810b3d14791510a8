// SPDX-License-Identifier: MIT

package cheat

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/steeplejack/advent-of-code/dijkstra"
	"github.com/steeplejack/advent-of-code/gridgraph"
)

// Analyzer answers shortcut queries against one track, described by the
// position of every track cell along the start → end path.
//
// An Analyzer is safe for concurrent use: the score map is never mutated
// after construction and the offset cache is mutex-guarded.
type Analyzer struct {
	scores map[gridgraph.Point]int
	track  []gridgraph.Point // scores keys, row-major
	log    *slog.Logger

	mu      sync.Mutex
	offsets map[int][]gridgraph.Point
}

// NewAnalyzer wraps a precomputed score map (see Scores).
// The map is copied; later changes by the caller are not observed.
func NewAnalyzer(scores map[gridgraph.Point]int, opts ...Option) (*Analyzer, error) {
	if scores == nil {
		return nil, ErrNilScores
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return newAnalyzer(maps.Clone(scores), o.Logger), nil
}

// FromGrid runs the whole pipeline on a racetrack grid: build the track
// graph, find the single shortest path from 'S' to 'E', and score it.
//
// Errors from gridgraph and dijkstra are returned wrapped; a track with
// several shortest routes yields dijkstra.ErrAmbiguousPath, since cheat
// savings are only meaningful along one path.
func FromGrid(gr *gridgraph.Grid, opts ...Option) (*Analyzer, error) {
	if gr == nil {
		return nil, ErrNilGrid
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	start, err := gr.Start()
	if err != nil {
		return nil, err
	}
	end, err := gr.End()
	if err != nil {
		return nil, err
	}
	g, err := gr.ToGraph()
	if err != nil {
		return nil, fmt.Errorf("cheat: build graph: %w", err)
	}
	o.Logger.Debug("track graph built", "nodes", g.NodeCount(), "edges", g.EdgeCount())

	path, dist, err := dijkstra.UniquePath(g, start, end, o.Dijkstra...)
	if err != nil {
		return nil, fmt.Errorf("cheat: race path %v → %v: %w", start, end, err)
	}
	o.Logger.Debug("race path found", "start", start, "end", end, "length", dist)

	scores, err := Scores(path)
	if err != nil {
		return nil, err
	}

	return newAnalyzer(scores, o.Logger), nil
}

func newAnalyzer(scores map[gridgraph.Point]int, log *slog.Logger) *Analyzer {
	return &Analyzer{
		scores:  scores,
		track:   slices.SortedFunc(maps.Keys(scores), gridgraph.ComparePoints),
		log:     log,
		offsets: make(map[int][]gridgraph.Point),
	}
}

// Score returns the position of p along the path.
func (a *Analyzer) Score(p gridgraph.Point) (int, bool) {
	s, ok := a.scores[p]
	return s, ok
}

// PathLength returns the number of steps of the race path.
func (a *Analyzer) PathLength() int {
	return len(a.scores) - 1
}

// WallSaving returns the steps saved by tunnelling through wall for one
// picosecond: the difference between the latest and earliest path cells
// orthogonally adjacent to it, less the two steps the tunnel itself costs.
// Walls touching fewer than two path cells save nothing.
func (a *Analyzer) WallSaving(wall gridgraph.Point) int {
	lo, hi, n := 0, 0, 0
	for _, nb := range wall.Neighbors4() {
		s, ok := a.scores[nb]
		if !ok {
			continue
		}
		if n == 0 || s < lo {
			lo = s
		}
		if n == 0 || s > hi {
			hi = s
		}
		n++
	}
	if n < 2 {
		return 0
	}
	return hi - lo - 2
}

// WallHistogram maps each saving to the number of walls yielding it.
// Walls that save nothing are counted under 0.
func (a *Analyzer) WallHistogram(walls []gridgraph.Point) map[int]int {
	out := make(map[int]int)
	for _, w := range walls {
		out[a.WallSaving(w)]++
	}
	return out
}

// CountWallCheats counts the walls whose saving is at least cutoff.
func (a *Analyzer) CountWallCheats(walls []gridgraph.Point, cutoff int) int {
	n := 0
	for _, w := range walls {
		if a.WallSaving(w) >= cutoff {
			n++
		}
	}
	a.log.Debug("wall cheats counted", "walls", len(walls), "cutoff", cutoff, "count", n)
	return n
}

// CountCheats counts the ordered pairs (p, q) of path cells with
// Manhattan(p, q) ≤ radius whose jump saves at least cutoff steps, where
// the saving is score(q) - score(p) - Manhattan(p, q).
//
// A cutoff of zero or less also counts non-improving pairs, including
// each cell paired with itself.
func (a *Analyzer) CountCheats(radius, cutoff int) (int, error) {
	return a.countCheats(context.Background(), radius, cutoff)
}

// CheatHistogram maps each positive saving reachable within radius to the
// number of pairs yielding it.
func (a *Analyzer) CheatHistogram(radius int) (map[int]int, error) {
	out := make(map[int]int)
	err := a.scan(context.Background(), radius, func(saving int) {
		if saving > 0 {
			out[saving]++
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CountCheatsByRadius runs CountCheats for every radius concurrently and
// returns radius → count. The first failure, or ctx cancellation, aborts
// the remaining scans.
func (a *Analyzer) CountCheatsByRadius(ctx context.Context, cutoff int, radii ...int) (map[int]int, error) {
	for _, r := range radii {
		if r < 0 {
			return nil, fmt.Errorf("%w: %d", ErrBadRadius, r)
		}
	}

	counts := make([]int, len(radii))
	g, ctx := errgroup.WithContext(ctx)
	for i, r := range radii {
		g.Go(func() error {
			n, err := a.countCheats(ctx, r, cutoff)
			counts[i] = n
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[int]int, len(radii))
	for i, r := range radii {
		out[r] = counts[i]
	}
	return out, nil
}

func (a *Analyzer) countCheats(ctx context.Context, radius, cutoff int) (int, error) {
	n := 0
	err := a.scan(ctx, radius, func(saving int) {
		if saving >= cutoff {
			n++
		}
	})
	if err != nil {
		return 0, err
	}
	a.log.Debug("cheats counted", "radius", radius, "cutoff", cutoff, "count", n)
	return n, nil
}

// scan calls visit with the saving of every ordered pair of path cells
// within radius of each other. ctx is checked once per start cell.
func (a *Analyzer) scan(ctx context.Context, radius int, visit func(saving int)) error {
	if radius < 0 {
		return fmt.Errorf("%w: %d", ErrBadRadius, radius)
	}
	offsets := a.offsetsFor(radius)

	for _, p := range a.track {
		if err := ctx.Err(); err != nil {
			return err
		}
		sp := a.scores[p]
		for _, d := range offsets {
			q := p.Add(d)
			sq, ok := a.scores[q]
			if !ok {
				continue
			}
			visit(sq - sp - p.Manhattan(q))
		}
	}
	return nil
}

func (a *Analyzer) offsetsFor(radius int) []gridgraph.Point {
	a.mu.Lock()
	defer a.mu.Unlock()

	off, ok := a.offsets[radius]
	if !ok {
		off = Offsets(radius)
		a.offsets[radius] = off
	}
	return off
}
