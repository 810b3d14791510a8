package cheat

import "fmt"

// Scores maps every node of path to its position along it, so the first
// node scores 0 and the last scores len(path)-1. A path that visits a node
// twice has no well-defined score and yields ErrRepeatedNode.
func Scores[K comparable](path []K) (map[K]int, error) {
	out := make(map[K]int, len(path))
	for i, v := range path {
		if j, seen := out[v]; seen {
			return nil, fmt.Errorf("%w: %v at %d and %d", ErrRepeatedNode, v, j, i)
		}
		out[v] = i
	}
	return out, nil
}
