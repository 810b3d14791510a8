// Package gridgraph treats a 2D grid of wall and track cells as a graph,
// the input shape of racetrack-style shortest-path and shortcut analysis.
//
// What:
//
//   - Grid wraps a rectangular []string where '#' is wall, 'S' and 'E' mark
//     the start and end, and anything else is track.
//   - Point is the (row, column) key used for graph nodes, with Manhattan
//     distance and row-major ordering.
//   - ToGraph builds an undirected, unit-weight *core.Graph[Point] over the
//     passable cells with 4-neighbor adjacency.
//
// Assumptions:
//
//   - The outer border is wall. The graph builder never looks past one cell
//     inward from the far edges, and Walls/Track only report interior cells.
//
// Complexity:
//
//   - NewGrid:  O(W×H), Memory: O(W×H).
//   - ToGraph:  O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNoStart / ErrNoEnd: the grid has no 'S' / 'E' cell.
package gridgraph
