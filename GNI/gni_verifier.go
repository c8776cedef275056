package gni

import (
	"fmt"
	"math/rand"

	graphs "Graph-ZKP/graphs"
	prng "Graph-ZKP/internal/prng"
	proofs "Graph-ZKP/proofs"
)

// Verifier relabels a secretly chosen graph of the pair and accepts
// only the prover naming the chosen one.
type Verifier struct {
	pair graphs.GraphPair
	rng  *rand.Rand
	b    bool
	done bool
}

// NewVerifier returns a verifier bound to pair. A nil rng gets a fresh
// system-seeded source.
func NewVerifier(pair graphs.GraphPair, rng *rand.Rand) *Verifier {
	if rng == nil {
		rng = prng.NewRand()
	}
	return &Verifier{pair: pair, rng: rng}
}

// Init draws the secret bit and opens with a random relabeling of the
// chosen graph.
func (v *Verifier) Init() proofs.Message {
	v.b = v.rng.Intn(2) == 1
	return Challenge{G: v.pair.Pick(v.b).RandomPermutation(v.rng)}
}

func (v *Verifier) Handle(msg proofs.Message) (proofs.Message, bool, error) {
	if v.done {
		return nil, false, fmt.Errorf("GNIVerifier.Handle: protocol already finished: %w", proofs.ErrProtocolViolation)
	}
	g, ok := msg.(Guess)
	if !ok {
		return nil, false, fmt.Errorf("GNIVerifier.Handle: unexpected %T: %w", msg, proofs.ErrProtocolViolation)
	}
	v.done = true
	return proofs.Empty{}, g.B == v.b, nil
}
