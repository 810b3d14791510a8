// Package gridgraph provides utilities to treat a 2D character grid of walls
// and track cells as a graph. It supports:
//
//   - Validation and defensive copying of the input rows
//   - Locating the designated start ('S') and end ('E') cells
//   - Enumerating interior walls and track cells
//   - Conversion to an undirected, unit-weight *core.Graph[Point]
//
// Cells equal to Wall ('#') are blocked; every other cell is passable.
package gridgraph

import (
	"fmt"

	"github.com/steeplejack/advent-of-code/core"
)

// NewGrid constructs a Grid from a non-empty, rectangular slice of rows.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	gr := &Grid{Width: w, Height: h, cells: make([][]byte, h)}
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
		gr.cells[r] = []byte(row)
		for c := 0; c < w; c++ {
			switch row[c] {
			case Start:
				if !gr.hasStart {
					gr.start, gr.hasStart = Point{r, c}, true
				}
			case End:
				if !gr.hasEnd {
					gr.end, gr.hasEnd = Point{r, c}, true
				}
			}
		}
	}

	return gr, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (gr *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < gr.Height && p.Col >= 0 && p.Col < gr.Width
}

// At returns the byte stored at p. It panics if p is out of bounds.
func (gr *Grid) At(p Point) byte {
	return gr.cells[p.Row][p.Col]
}

// IsWall reports whether p is a wall. Out-of-bounds points count as walls.
func (gr *Grid) IsWall(p Point) bool {
	return !gr.InBounds(p) || gr.cells[p.Row][p.Col] == Wall
}

// Start returns the first 'S' cell, or ErrNoStart.
func (gr *Grid) Start() (Point, error) {
	if !gr.hasStart {
		return Point{}, ErrNoStart
	}
	return gr.start, nil
}

// End returns the first 'E' cell, or ErrNoEnd.
func (gr *Grid) End() (Point, error) {
	if !gr.hasEnd {
		return Point{}, ErrNoEnd
	}
	return gr.end, nil
}

// Walls returns every wall cell strictly inside the outer border, row-major.
// The border is excluded: tunnelling through it never leads back onto the track.
func (gr *Grid) Walls() []Point {
	return gr.interior(func(b byte) bool { return b == Wall })
}

// Track returns every passable cell strictly inside the outer border, row-major.
func (gr *Grid) Track() []Point {
	return gr.interior(func(b byte) bool { return b != Wall })
}

func (gr *Grid) interior(keep func(byte) bool) []Point {
	var out []Point
	for r := 1; r < gr.Height-1; r++ {
		for c := 1; c < gr.Width-1; c++ {
			if keep(gr.cells[r][c]) {
				out = append(out, Point{r, c})
			}
		}
	}
	return out
}

// ToGraph converts the Grid into a weighted, undirected *core.Graph[Point].
//
// Every passable cell becomes a node keyed by its Point. Scanning row-major,
// each passable cell is joined with a unit edge to its right and down
// neighbors when those are passable too; edges are symmetric, so every
// adjacent pair is visited exactly once from its upper/left side.
//
// The scan stops one row and one column short of the far edges: the outer
// border is assumed to be wall, so no lookup ever leaves the grid.
//
// Complexity: O(W×H) time and memory.
func (gr *Grid) ToGraph() (*core.Graph[Point], error) {
	g := core.NewGraph[Point](ComparePoints, core.WithCapacity(gr.Width*gr.Height))
	ensure := func(p Point) error {
		if g.HasNode(p) {
			return nil
		}
		return g.AddNode(p)
	}

	for r := 0; r < gr.Height-1; r++ {
		for c := 0; c < gr.Width-1; c++ {
			cur := Point{r, c}
			if gr.cells[r][c] == Wall {
				continue
			}
			if err := ensure(cur); err != nil {
				return nil, err
			}
			for _, next := range [2]Point{{r, c + 1}, {r + 1, c}} {
				if gr.cells[next.Row][next.Col] == Wall {
					continue
				}
				if err := ensure(next); err != nil {
					return nil, err
				}
				if err := g.AddEdge(cur, next, 1); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}
