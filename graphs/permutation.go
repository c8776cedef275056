package graphs

import "math/rand"

// Permutation relabels vertices: position i holds the new label of
// vertex i.
type Permutation []int

// Identity returns the identity relabeling on n vertices.
func Identity(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// NewRandomPermutation draws a uniform bijection on 0..n-1.
func NewRandomPermutation(n int, rng *rand.Rand) Permutation {
	return Permutation(rng.Perm(n))
}

// Valid reports whether p is a bijection on 0..n-1 of length n.
func (p Permutation) Valid(n int) bool {
	if len(p) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range p {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// Inverse returns the reverse mapping: Inverse()[p[i]] = i.
func (p Permutation) Inverse() Permutation {
	inv := make(Permutation, len(p))
	for i, v := range p {
		inv[v] = i
	}
	return inv
}

// Compose returns the relabeling "q after p": vertex i moves to
// q[p[i]].
func (p Permutation) Compose(q Permutation) Permutation {
	out := make(Permutation, len(p))
	for i, v := range p {
		out[i] = q[v]
	}
	return out
}

// permutations visits every bijection on 0..n-1 in lexicographic
// order until visit returns false. The slice passed to visit is reused
// between calls; callers that retain it must copy.
func permutations(n int, visit func(p Permutation) bool) {
	p := Identity(n)
	for {
		if !visit(p) {
			return
		}
		i := n - 2
		for i >= 0 && p[i] >= p[i+1] {
			i--
		}
		if i < 0 {
			return
		}
		j := n - 1
		for p[j] <= p[i] {
			j--
		}
		p[i], p[j] = p[j], p[i]
		for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
			p[l], p[r] = p[r], p[l]
		}
	}
}
