package graphs

// Canned proof instances shared by the demo commands and tests.

func mustGraph(n int, edges []Edge) *Graph {
	g, err := NewGraph(n, edges)
	if err != nil {
		panic(err)
	}
	return g
}

func sampleBase() *Graph {
	return mustGraph(4, []Edge{{0, 1}, {1, 2}, {1, 3}, {0, 3}, {3, 0}})
}

// IsomorphicSample returns a pair with G1 obtained from G0 by a fixed
// relabeling, together with the witnessing bijection.
func IsomorphicSample() (GraphPair, Permutation) {
	sigma := Permutation{2, 1, 0, 3}
	g0 := sampleBase()
	return GraphPair{G0: g0, G1: g0.Permute(sigma)}, sigma
}

// NonIsomorphicSample returns a pair with matching vertex and edge
// counts whose members are not isomorphic (the out-degree profiles
// differ), so only the full search can tell them apart.
func NonIsomorphicSample() GraphPair {
	g1 := mustGraph(4, []Edge{{0, 2}, {2, 3}, {1, 3}, {2, 1}, {3, 0}})
	return GraphPair{G0: sampleBase(), G1: g1}
}
