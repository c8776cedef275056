package graphs

import (
	"math/rand"
	"testing"
	"time"
)

func TestAreIsomorphic_RandomRelabeling(t *testing.T) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for trial := 0; trial < 30; trial++ {
		n := 1 + rng.Intn(5)
		g := randomGraph(t, rng, n, rng.Intn(2*n))
		if !AreIsomorphic(g, g.RandomPermutation(rng)) {
			t.Fatalf("graph not isomorphic to its own relabeling:\n%v", g)
		}
	}
}

func TestAreIsomorphic_RejectsNonIsomorphicPair(t *testing.T) {
	pair := NonIsomorphicSample()
	if pair.G0.N() != pair.G1.N() || pair.G0.EdgeCount() != pair.G1.EdgeCount() {
		t.Fatal("sample pair must agree on counts so the full search decides")
	}
	if AreIsomorphic(pair.G0, pair.G1) {
		t.Fatal("non-isomorphic sample pair reported isomorphic")
	}
}

func TestAreIsomorphic_CheapRejections(t *testing.T) {
	a, _ := NewGraph(3, []Edge{{0, 1}})
	b, _ := NewGraph(4, []Edge{{0, 1}})
	if AreIsomorphic(a, b) {
		t.Fatal("vertex count mismatch not rejected")
	}
	c, _ := NewGraph(3, []Edge{{0, 1}, {1, 2}})
	if AreIsomorphic(a, c) {
		t.Fatal("edge count mismatch not rejected")
	}
}

func TestFindIsomorphism_WitnessMapsExactly(t *testing.T) {
	pair, _ := IsomorphicSample()
	w, ok := FindIsomorphism(pair.G0, pair.G1)
	if !ok {
		t.Fatal("no witness found for isomorphic sample pair")
	}
	if !w.Valid(pair.G0.N()) {
		t.Fatalf("witness is not a bijection: %v", w)
	}
	if !pair.G0.Permute(w).Equal(pair.G1) {
		t.Fatalf("witness does not map G0 onto G1: %v", w)
	}
}

func TestFindIsomorphism_AbsentResult(t *testing.T) {
	pair := NonIsomorphicSample()
	w, ok := FindIsomorphism(pair.G0, pair.G1)
	if ok || w != nil {
		t.Fatalf("expected explicit absence, got (%v, %v)", w, ok)
	}
}

func TestFindIsomorphism_EmptyGraphs(t *testing.T) {
	a, _ := NewGraph(0, nil)
	b, _ := NewGraph(0, nil)
	w, ok := FindIsomorphism(a, b)
	if !ok {
		t.Fatal("empty graphs must be isomorphic")
	}
	if len(w) != 0 {
		t.Fatalf("witness for empty graphs: got=%v want empty", w)
	}
}
