package graphs

import (
	"fmt"
	"math/rand"
	"testing"
	"time"
)

func TestPermutation_InverseTwiceIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for trial := 0; trial < 100; trial++ {
		n := rng.Intn(10)
		sigma := NewRandomPermutation(n, rng)
		back := sigma.Inverse().Inverse()
		for i := range sigma {
			if back[i] != sigma[i] {
				t.Fatalf("double inverse differs at %d: got=%d want=%d (sigma=%v)", i, back[i], sigma[i], sigma)
			}
		}
	}
}

func TestPermutation_ComposeWithInverseIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for trial := 0; trial < 100; trial++ {
		n := rng.Intn(10)
		sigma := NewRandomPermutation(n, rng)
		id := sigma.Compose(sigma.Inverse())
		for i, v := range id {
			if v != i {
				t.Fatalf("sigma∘sigma⁻¹ not identity at %d: got=%d (sigma=%v)", i, v, sigma)
			}
		}
	}
}

func TestPermutation_ValidRejectsMalformed(t *testing.T) {
	cases := []struct {
		p Permutation
		n int
	}{
		{Permutation{0, 1}, 3},
		{Permutation{0, 0, 2}, 3},
		{Permutation{0, 1, 3}, 3},
		{Permutation{0, -1, 2}, 3},
	}
	for _, c := range cases {
		if c.p.Valid(c.n) {
			t.Fatalf("Valid accepted %v for n=%d", c.p, c.n)
		}
	}
	if !Identity(4).Valid(4) {
		t.Fatal("Valid rejected the identity")
	}
	if !Identity(0).Valid(0) {
		t.Fatal("Valid rejected the empty permutation")
	}
}

func TestPermutations_EnumeratesAllBijections(t *testing.T) {
	seen := make(map[string]bool)
	permutations(4, func(p Permutation) bool {
		if !p.Valid(4) {
			t.Fatalf("generator produced a non-bijection: %v", p)
		}
		seen[fmt.Sprint(p)] = true
		return true
	})
	if len(seen) != 24 {
		t.Fatalf("distinct permutations of 4: got=%d want=24", len(seen))
	}
}

func TestPermutations_EarlyExit(t *testing.T) {
	visits := 0
	permutations(5, func(p Permutation) bool {
		visits++
		return visits < 7
	})
	if visits != 7 {
		t.Fatalf("visits after early exit: got=%d want=7", visits)
	}
}

func TestPermutations_EmptyDomain(t *testing.T) {
	visits := 0
	permutations(0, func(p Permutation) bool {
		if len(p) != 0 {
			t.Fatalf("expected the empty permutation, got %v", p)
		}
		visits++
		return true
	})
	if visits != 1 {
		t.Fatalf("visits for n=0: got=%d want=1", visits)
	}
}
