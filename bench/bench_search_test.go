package bench

import (
	"math/rand"
	"testing"

	graphs "Graph-ZKP/graphs"
	prng "Graph-ZKP/internal/prng"
)

func benchRNG(label string) *rand.Rand {
	return prng.NewSeededRand([]byte(label))
}

func randGraphForBench(b *testing.B, rng *rand.Rand, n int) *graphs.Graph {
	b.Helper()
	var edges []graphs.Edge
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Intn(2) == 1 {
				edges = append(edges, graphs.Edge{U: u, V: v})
			}
		}
	}
	g, err := graphs.NewGraph(n, edges)
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func BenchmarkFindIsomorphism(b *testing.B) {
	rng := benchRNG("bench-search")
	g0 := randGraphForBench(b, rng, 8)
	g1 := g0.RandomPermutation(rng)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := graphs.FindIsomorphism(g0, g1); !ok {
			b.Fatal("no witness for a relabeled copy")
		}
	}
}

func BenchmarkFindIsomorphismAbsent(b *testing.B) {
	cycle, err := graphs.NewGraph(6, []graphs.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 5}, {U: 5, V: 0},
	})
	if err != nil {
		b.Fatal(err)
	}
	triangles, err := graphs.NewGraph(6, []graphs.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}, {U: 3, V: 4}, {U: 4, V: 5}, {U: 5, V: 3},
	})
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := graphs.FindIsomorphism(cycle, triangles); ok {
			b.Fatal("witness found between non-isomorphic graphs")
		}
	}
}

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := graphs.Parse("4: 0-1, 1-2, 1-3, 0-3"); err != nil {
			b.Fatal(err)
		}
	}
}
