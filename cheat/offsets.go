package cheat

import (
	"slices"

	"github.com/steeplejack/advent-of-code/gridgraph"
)

var quadrants = [4]gridgraph.Point{{Row: -1, Col: -1}, {Row: -1, Col: 1}, {Row: 1, Col: -1}, {Row: 1, Col: 1}}

// Offsets returns every integer offset whose Manhattan norm is at most
// radius, the zero offset included, sorted row-major. A radius of r yields
// 2r²+2r+1 offsets. Negative radii yield nil.
func Offsets(radius int) []gridgraph.Point {
	if radius < 0 {
		return nil
	}

	seen := make(map[gridgraph.Point]struct{}, 2*radius*radius+2*radius+1)
	for i := 0; i <= radius; i++ {
		for j := 0; j <= radius-i; j++ {
			for _, q := range quadrants {
				seen[gridgraph.Point{Row: i * q.Row, Col: j * q.Col}] = struct{}{}
			}
		}
	}

	out := make([]gridgraph.Point, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	slices.SortFunc(out, gridgraph.ComparePoints)

	return out
}
