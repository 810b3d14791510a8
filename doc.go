// Package adventofcode is a small, in-memory toolkit for grid racetracks:
// parse a wall/track grid, turn it into a weighted graph, find its shortest
// routes, and measure how much brief wall-phasing "cheats" would save.
//
// Layout:
//
//	core/      — generic, thread-safe undirected Graph[K] with non-negative int64 weights
//	dijkstra/  — shortest distances, every co-optimal path, early exit at a target
//	gridgraph/ — Grid parsing ('#' wall, 'S' start, 'E' end), Point helpers, ToGraph
//	cheat/     — path scores, one-wall savings, bounded-radius jump savings
//
// Quick example:
//
//	gr, _ := gridgraph.NewGrid(rows)
//	a, _ := cheat.FromGrid(gr)
//	n, _ := a.CountCheats(20, 100)
//
// Everything runs synchronously per call, except cheat.Analyzer's
// CountCheatsByRadius, which scans several radii concurrently.
package adventofcode
