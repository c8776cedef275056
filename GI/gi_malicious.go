package gi

import (
	"fmt"
	"math"
	"math/rand"

	graphs "Graph-ZKP/graphs"
	prng "Graph-ZKP/internal/prng"
	proofs "Graph-ZKP/proofs"
)

// MaliciousProver knows no isomorphism between the pair's graphs. It
// guesses the verifier's bit up front, commits a relabeling of the
// guessed graph, and afterwards can only reveal the inverse of its own
// relabeling, so it succeeds exactly when the guess matched the secret
// bit.
type MaliciousProver struct {
	pair  graphs.GraphPair
	rng   *rand.Rand
	bias  float64
	round int
	perm  graphs.Permutation
}

// NewMaliciousProver returns a prover guessing 1 with probability
// bias. Panics unless bias lies in [0, 1]. A nil rng gets a fresh
// system-seeded source.
func NewMaliciousProver(pair graphs.GraphPair, bias float64, rng *rand.Rand) *MaliciousProver {
	if math.IsNaN(bias) || bias < 0 || bias > 1 {
		panic("gi: invalid guess bias")
	}
	if rng == nil {
		rng = prng.NewRand()
	}
	return &MaliciousProver{pair: pair, bias: bias, rng: rng}
}

func (p *MaliciousProver) Handle(msg proofs.Message) (proofs.Message, bool, error) {
	switch p.round {
	case 0:
		if _, ok := msg.(proofs.Empty); !ok {
			return nil, false, fmt.Errorf("GIMaliciousProver.Handle: round 0: unexpected %T: %w", msg, proofs.ErrProtocolViolation)
		}
		p.round++
		guess := p.rng.Float64() < p.bias
		g := p.pair.Pick(guess)
		p.perm = graphs.NewRandomPermutation(g.N(), p.rng)
		return Commit{G: g.Permute(p.perm)}, false, nil
	case 1:
		if _, ok := msg.(Challenge); !ok {
			return nil, false, fmt.Errorf("GIMaliciousProver.Handle: round 1: unexpected %T: %w", msg, proofs.ErrProtocolViolation)
		}
		p.round++
		// The challenge bit is ignored: the inverse of its own
		// relabeling is the only bijection this prover can produce.
		return Reveal{Iso: p.perm.Inverse()}, false, nil
	default:
		return proofs.Empty{}, true, nil
	}
}
