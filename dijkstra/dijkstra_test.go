// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate distances, early exit, all-shortest-paths tracking,
// MaxDistance, InfEdgeThreshold, and the documented error cases.
package dijkstra_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steeplejack/advent-of-code/core"
	"github.com/steeplejack/advent-of-code/dijkstra"
)

type wedge struct {
	a, b string
	w    int64
}

// buildGraph registers every endpoint once and adds the weighted edges.
func buildGraph(t *testing.T, nodes []string, edges []wedge) *core.Graph[string] {
	t.Helper()
	g := core.NewOrderedGraph[string]()
	for _, n := range nodes {
		require.NoError(t, g.AddNode(n))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.a, e.b, e.w))
	}

	return g
}

// lineGraph is A—B—C with unit weights.
func lineGraph(t *testing.T) *core.Graph[string] {
	return buildGraph(t, []string{"A", "B", "C"}, []wedge{{"A", "B", 1}, {"B", "C", 1}})
}

// diamondGraph is A—B—D and A—C—D with unit weights.
func diamondGraph(t *testing.T) *core.Graph[string] {
	return buildGraph(t, []string{"A", "B", "C", "D"}, []wedge{
		{"A", "B", 1}, {"B", "D", 1}, {"A", "C", 1}, {"C", "D", 1},
	})
}

// ladderGraph is a 2×n grid of unit edges; it has many co-optimal paths.
func ladderGraph(t *testing.T, n int) *core.Graph[string] {
	var nodes []string
	var edges []wedge
	id := func(r, c int) string { return fmt.Sprintf("%d:%d", r, c) }
	for c := 0; c < n; c++ {
		nodes = append(nodes, id(0, c), id(1, c))
	}
	for c := 0; c < n; c++ {
		edges = append(edges, wedge{id(0, c), id(1, c), 1})
		if c+1 < n {
			edges = append(edges, wedge{id(0, c), id(0, c+1), 1}, wedge{id(1, c), id(1, c+1), 1})
		}
	}

	return buildGraph(t, nodes, edges)
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, err := dijkstra.ShortestDistances[string](nil, "A")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.ShortestPathsTo[string](nil, "A", "B")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := lineGraph(t)

	_, err := dijkstra.ShortestDistances(g, "X")
	assert.ErrorIs(t, err, dijkstra.ErrNodeNotFound)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = dijkstra.ShortestDistance(g, "X", "A")
	assert.ErrorIs(t, err, dijkstra.ErrNodeNotFound)

	_, err = dijkstra.ShortestPaths(g, "X")
	assert.ErrorIs(t, err, dijkstra.ErrNodeNotFound)
}

func TestDijkstra_TargetNotFound(t *testing.T) {
	g := lineGraph(t)

	_, err := dijkstra.ShortestDistance(g, "A", "X")
	assert.ErrorIs(t, err, dijkstra.ErrNodeNotFound)

	_, _, err = dijkstra.ShortestPathsTo(g, "A", "X")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestDijkstra_BadOptionsPanic(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		dijkstra.WithMaxDistance(-1)(&dijkstra.Options{})
	})
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() {
		dijkstra.WithInfEdgeThreshold(0)(&dijkstra.Options{})
	})
}

// ------------------------------------------------------------------------
// 2. Distances
// ------------------------------------------------------------------------

func TestShortestDistance_Line(t *testing.T) {
	g := lineGraph(t)

	d, err := dijkstra.ShortestDistance(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, int64(2), d)

	d, err = dijkstra.ShortestDistance(g, "B", "B")
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestShortestDistances_Triangle(t *testing.T) {
	// A—B(1), B—C(2), A—C(5): C is cheaper via B.
	g := buildGraph(t, []string{"A", "B", "C"}, []wedge{{"A", "B", 1}, {"B", "C", 2}, {"A", "C", 5}})

	dist, err := dijkstra.ShortestDistances(g, "A")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 3}, dist)
}

func TestShortestDistances_Unreachable(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "Z"}, []wedge{{"A", "B", 4}})

	dist, err := dijkstra.ShortestDistances(g, "A")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Inf, dist["Z"])
	assert.Equal(t, int64(4), dist["B"])

	d, err := dijkstra.ShortestDistance(g, "A", "Z")
	require.NoError(t, err, "an unreachable target is not an error")
	assert.Equal(t, dijkstra.Inf, d)
}

func TestShortestDistances_Invariants(t *testing.T) {
	g := buildGraph(t,
		[]string{"A", "B", "C", "D", "E", "F"},
		[]wedge{{"A", "B", 7}, {"A", "C", 9}, {"A", "F", 14}, {"B", "C", 10}, {"B", "D", 15},
			{"C", "D", 11}, {"C", "F", 2}, {"D", "E", 6}, {"E", "F", 9}})

	dist, err := dijkstra.ShortestDistances(g, "A")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "B": 7, "C": 9, "D": 20, "E": 20, "F": 11}, dist)

	// Distance monotonicity and triangle relaxation over every edge.
	assert.Zero(t, dist["A"])
	for _, u := range g.Nodes() {
		assert.GreaterOrEqual(t, dist[u], int64(0))
		nbs, err := g.Neighbors(u)
		require.NoError(t, err)
		for _, nb := range nbs {
			assert.LessOrEqual(t, dist[nb.Node], dist[u]+nb.Weight, "%s—%s", u, nb.Node)
		}
	}
}

func TestShortestDistances_Idempotent(t *testing.T) {
	g := ladderGraph(t, 6)

	first, err := dijkstra.ShortestDistances(g, "0:0")
	require.NoError(t, err)
	second, err := dijkstra.ShortestDistances(g, "0:0")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	d1, err := dijkstra.ShortestDistance(g, "0:0", "1:5")
	require.NoError(t, err)
	d2, err := dijkstra.ShortestDistance(g, "0:0", "1:5")
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
	assert.Equal(t, int64(6), d1)
}

func TestShortestDistances_MaxDistance(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C", "D"}, []wedge{{"A", "B", 1}, {"B", "C", 1}, {"C", "D", 1}})

	dist, err := dijkstra.ShortestDistances(g, "A", dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, int64(2), dist["C"])
	assert.Equal(t, dijkstra.Inf, dist["D"], "nodes beyond the cap stay unexplored")
}

func TestShortestDistances_InfEdgeThreshold(t *testing.T) {
	// The direct A—C edge is a wall under threshold 10, forcing the detour.
	g := buildGraph(t, []string{"A", "B", "C"}, []wedge{{"A", "C", 10}, {"A", "B", 6}, {"B", "C", 6}})

	dist, err := dijkstra.ShortestDistances(g, "A", dijkstra.WithInfEdgeThreshold(10))
	require.NoError(t, err)
	assert.Equal(t, int64(12), dist["C"])
}

func TestShortestDistances_SelfLoopIgnored(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"}, []wedge{{"A", "A", 0}, {"A", "B", 2}})

	dist, err := dijkstra.ShortestDistances(g, "A")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "B": 2}, dist)
}

// ------------------------------------------------------------------------
// 3. Paths
// ------------------------------------------------------------------------

func TestShortestPathsTo_Line(t *testing.T) {
	d, paths, err := dijkstra.ShortestPathsTo(lineGraph(t), "A", "C")
	require.NoError(t, err)
	assert.Equal(t, int64(2), d)
	assert.Equal(t, [][]string{{"A", "B", "C"}}, paths)
}

func TestShortestPathsTo_Diamond(t *testing.T) {
	d, paths, err := dijkstra.ShortestPathsTo(diamondGraph(t), "A", "D")
	require.NoError(t, err)
	assert.Equal(t, int64(2), d)
	assert.ElementsMatch(t, [][]string{{"A", "B", "D"}, {"A", "C", "D"}}, paths)
}

func TestShortestPathsTo_Unreachable(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "Z"}, []wedge{{"A", "B", 1}})

	d, paths, err := dijkstra.ShortestPathsTo(g, "A", "Z")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Inf, d)
	assert.NotNil(t, paths)
	assert.Empty(t, paths)
}

func TestShortestPaths_FullMap(t *testing.T) {
	g := diamondGraph(t)
	require.NoError(t, g.AddNode("Z"))

	res, err := dijkstra.ShortestPaths(g, "A")
	require.NoError(t, err)
	assert.Equal(t, "A", res.Source)
	assert.Equal(t, [][]string{{"A"}}, res.PathsTo("A"))
	assert.Equal(t, [][]string{{"A", "B"}}, res.PathsTo("B"))
	assert.Len(t, res.PathsTo("D"), 2)
	assert.Empty(t, res.PathsTo("Z"))
	assert.Equal(t, dijkstra.Inf, res.DistanceTo("Z"))
	assert.Equal(t, dijkstra.Inf, res.DistanceTo("not-a-node"))
}

func TestShortestPaths_Completeness(t *testing.T) {
	// A 2×4 ladder from corner to corner has C(4,1) = 4 monotone shortest paths.
	g := ladderGraph(t, 4)

	d, paths, err := dijkstra.ShortestPathsTo(g, "0:0", "1:3")
	require.NoError(t, err)
	assert.Equal(t, int64(4), d)
	assert.Len(t, paths, 4)
	assertValidPaths(t, g, "0:0", "1:3", d, paths)

	seen := map[string]bool{}
	for _, p := range paths {
		key := fmt.Sprint(p)
		assert.False(t, seen[key], "duplicate path %v", p)
		seen[key] = true
	}
}

func TestShortestPaths_WeightedTie(t *testing.T) {
	// A→D directly costs 3; A→B→D costs 1+2. Both must be reported.
	g := buildGraph(t, []string{"A", "B", "C", "D"}, []wedge{{"A", "D", 3}, {"A", "B", 1}, {"B", "D", 2}, {"A", "C", 2}, {"C", "D", 2}})

	d, paths, err := dijkstra.ShortestPathsTo(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, int64(3), d)
	assert.ElementsMatch(t, [][]string{{"A", "D"}, {"A", "B", "D"}}, paths)
	assertValidPaths(t, g, "A", "D", d, paths)
}

func TestShortestPaths_AgreesWithDistances(t *testing.T) {
	g := ladderGraph(t, 5)

	dist, err := dijkstra.ShortestDistances(g, "0:2")
	require.NoError(t, err)
	res, err := dijkstra.ShortestPaths(g, "0:2")
	require.NoError(t, err)
	assert.Equal(t, dist, res.Dist)
	for v, ps := range res.Paths {
		assertValidPaths(t, g, "0:2", v, res.Dist[v], ps)
	}
}

func TestUniquePath(t *testing.T) {
	path, d, err := dijkstra.UniquePath(lineGraph(t), "A", "C")
	require.NoError(t, err)
	assert.Equal(t, int64(2), d)
	assert.Equal(t, []string{"A", "B", "C"}, path)

	_, _, err = dijkstra.UniquePath(diamondGraph(t), "A", "D")
	assert.ErrorIs(t, err, dijkstra.ErrAmbiguousPath)

	g := buildGraph(t, []string{"A", "Z"}, nil)
	_, _, err = dijkstra.UniquePath(g, "A", "Z")
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)

	_, _, err = dijkstra.UniquePath(g, "Q", "Z")
	assert.ErrorIs(t, err, dijkstra.ErrNodeNotFound)
}

// assertValidPaths checks that every path starts at src, ends at dst, visits
// distinct adjacent nodes, and weighs exactly want.
func assertValidPaths(t *testing.T, g *core.Graph[string], src, dst string, want int64, paths [][]string) {
	t.Helper()
	for _, p := range paths {
		require.NotEmpty(t, p)
		assert.Equal(t, src, p[0])
		assert.Equal(t, dst, p[len(p)-1])

		seen := map[string]bool{}
		var total int64
		for i, v := range p {
			assert.False(t, seen[v], "repeated node %s in %v", v, p)
			seen[v] = true
			if i == 0 {
				continue
			}
			e, err := g.Edge(p[i-1], v)
			require.NoError(t, err, "non-adjacent step in %v", p)
			total += e.Weight
		}
		assert.Equal(t, want, total, "weight of %v", p)
	}
}
