// Package cheat measures how much a racer saves by briefly passing through
// walls on a single-route racetrack.
//
// A race path is scored by position (Scores): the start scores 0 and each
// step adds 1. Two kinds of shortcut are analysed on top of those scores:
//
//   - Wall cheats (radius 1): tunnelling through one wall cell joins the
//     earliest and latest path cells around it. WallSaving reports
//     max − min − 2 over the wall's in-path orthogonal neighbors.
//   - Jump cheats (radius r): any ordered pair of path cells (p, q) within
//     Manhattan distance r saves score(q) − score(p) − Manhattan(p, q).
//     CountCheats counts pairs whose saving reaches a cutoff, scanning each
//     path cell against every offset of norm ≤ r (Offsets).
//
// FromGrid wires the full pipeline: gridgraph → dijkstra.UniquePath → Scores.
//
// Errors:
//
//   - ErrRepeatedNode:    Scores on a path that revisits a node.
//   - ErrBadRadius:       negative cheat radius.
//   - ErrNilScores / ErrNilGrid: nil constructor input.
//   - ErrOptionViolation: invalid Option (e.g. nil logger).
//
// Logging goes through log/slog at Debug level and is discarded unless
// WithLogger is given.
package cheat
