// Package gridgraph defines core types for the gridgraph subpackage:
// grid coordinates, cell kinds, and the immutable Grid.
package gridgraph

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Cell kinds recognised by the grid. Any other byte is track.
const (
	Wall  byte = '#'
	Start byte = 'S'
	End   byte = 'E'
)

// Point is a (row, column) grid coordinate. Points are ordered row-major.
type Point struct {
	Row, Col int
}

// Cardinal offsets in N, E, S, W order.
var cardinals = [4]Point{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Neighbors4 returns the four orthogonal neighbors of p in N, E, S, W order.
// Bounds are not checked.
func (p Point) Neighbors4() [4]Point {
	var out [4]Point
	for i, d := range cardinals {
		out[i] = p.Add(d)
	}
	return out
}

// Manhattan returns the L1 distance between p and q.
func (p Point) Manhattan(q Point) int {
	return AbsDiff(p.Row, q.Row) + AbsDiff(p.Col, q.Col)
}

// Compare orders points row-major: -1, 0 or +1.
func (p Point) Compare(q Point) int {
	switch {
	case p.Row < q.Row:
		return -1
	case p.Row > q.Row:
		return 1
	case p.Col < q.Col:
		return -1
	case p.Col > q.Col:
		return 1
	}
	return 0
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// ComparePoints is Point.Compare as a core.CompareFunc.
func ComparePoints(a, b Point) int {
	return a.Compare(b)
}

// AbsDiff returns |x - y|.
func AbsDiff[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Grid is an immutable rectangular character grid.
// Width and Height define dimensions; cells[r][c] holds the original byte.
// start and end are the first 'S' and 'E' cells in row-major order, if any.
type Grid struct {
	Width, Height int

	cells    [][]byte
	start    Point
	end      Point
	hasStart bool
	hasEnd   bool
}
