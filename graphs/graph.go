package graphs

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// ErrEdgeRange reports an edge endpoint outside the declared vertex range.
var ErrEdgeRange = errors.New("edge endpoint out of range")

// Edge is an ordered pair of vertex indices.
type Edge struct {
	U, V int
}

// Graph is a directed graph on vertices 0..n-1. The edge set is fixed
// at construction; permutation operations return new graphs.
type Graph struct {
	n     int
	edges map[Edge]struct{}
}

// NewGraph builds a graph on n vertices from the given edges.
// Duplicates collapse. Every endpoint must lie in [0, n); otherwise the
// returned error wraps ErrEdgeRange and no graph is built.
func NewGraph(n int, edges []Edge) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraph: vertex count %d is negative", n)
	}
	set := make(map[Edge]struct{}, len(edges))
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("NewGraph: edge (%d,%d) on %d vertices: %w", e.U, e.V, n, ErrEdgeRange)
		}
		set[e] = struct{}{}
	}
	return &Graph{n: n, edges: set}, nil
}

// N returns the vertex count.
func (g *Graph) N() int { return g.n }

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasEdge reports whether the edge (u,v) is present.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.edges[Edge{U: u, V: v}]
	return ok
}

// Edges returns the edge set as a freshly allocated sorted slice.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})
	return out
}

// Adjacency returns the successor set of every vertex, derived from the
// edge set. Inspection and rendering only.
func (g *Graph) Adjacency() [][]int {
	adj := make([][]int, g.n)
	for e := range g.edges {
		adj[e.U] = append(adj[e.U], e.V)
	}
	for u := range adj {
		sort.Ints(adj[u])
	}
	return adj
}

// Equal reports edge-set equality. Vertex counts are not compared on
// their own; every endpoint is bounded by its graph's count, so equal
// edge sets agree wherever it matters.
func (g *Graph) Equal(h *Graph) bool {
	if len(g.edges) != len(h.edges) {
		return false
	}
	for e := range g.edges {
		if _, ok := h.edges[e]; !ok {
			return false
		}
	}
	return true
}

// Permute returns the graph whose edge set is {(sigma[u], sigma[v])}
// over g's edges. sigma must be a bijection on g's vertex set; Permute
// panics otherwise.
func (g *Graph) Permute(sigma Permutation) *Graph {
	if !sigma.Valid(g.n) {
		panic("graphs: Permute: not a bijection on the vertex set")
	}
	set := make(map[Edge]struct{}, len(g.edges))
	for e := range g.edges {
		set[Edge{U: sigma[e.U], V: sigma[e.V]}] = struct{}{}
	}
	return &Graph{n: g.n, edges: set}
}

// RandomPermutation draws a uniform bijection and applies it. The
// result is isomorphic to g but carries no trace of which graph it was
// derived from.
func (g *Graph) RandomPermutation(rng *rand.Rand) *Graph {
	return g.Permute(NewRandomPermutation(g.n, rng))
}

// String renders the adjacency listing, one vertex per line.
func (g *Graph) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "graph on %d vertices", g.n)
	for u, succ := range g.Adjacency() {
		fmt.Fprintf(&b, "\n  %d -> %v", u, succ)
	}
	return b.String()
}

// GraphPair is the proof instance (g0, g1). Both roles of a run hold
// the same pair and never mutate it.
type GraphPair struct {
	G0, G1 *Graph
}

// Pick returns G1 when bit is set, G0 otherwise.
func (p GraphPair) Pick(bit bool) *Graph {
	if bit {
		return p.G1
	}
	return p.G0
}
