package graphs

// FindIsomorphism searches all n! relabelings of a for one mapping its
// edge set exactly onto b's, returning the first witness found. The
// second return value distinguishes "no isomorphism exists" from a
// witness; absence is a legitimate outcome, not an error.
func FindIsomorphism(a, b *Graph) (Permutation, bool) {
	if a.n != b.n || len(a.edges) != len(b.edges) {
		return nil, false
	}
	var witness Permutation
	found := false
	permutations(a.n, func(p Permutation) bool {
		// A bijection maps distinct edges to distinct edges, so with
		// equal edge counts a subset check decides equality.
		for e := range a.edges {
			if _, ok := b.edges[Edge{U: p[e.U], V: p[e.V]}]; !ok {
				return true
			}
		}
		witness = append(make(Permutation, 0, a.n), p...)
		found = true
		return false
	})
	return witness, found
}

// AreIsomorphic reports whether some relabeling of a yields exactly b.
func AreIsomorphic(a, b *Graph) bool {
	_, ok := FindIsomorphism(a, b)
	return ok
}
