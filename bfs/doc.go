// Package bfs provides breadth-first search over a core.Graph, returning
// fewest-edge distances, parent links, and visit order.
//
// On unit-weight graphs, which is what gridgraph.Grid.ToGraph builds, BFS
// depths equal Dijkstra distances, so BFS is the cheap oracle for checking
// shortest-path results on racetracks.
//
// Determinism
//
//	core.Graph.Neighbors returns neighbors sorted by value and BFS enqueues
//	them in that order, so Order and Parent are fully reproducible.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O(V + E log E) (neighbor lists are sorted per visit)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil, ErrStartNotFound, ErrOptionViolation: invalid input.
//   - ctx.Err(): the context passed with WithContext was cancelled.
//   - ErrNoPath: Result.PathTo on a node that was not reached.
package bfs
