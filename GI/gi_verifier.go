package gi

import (
	"fmt"
	"math/rand"

	graphs "Graph-ZKP/graphs"
	prng "Graph-ZKP/internal/prng"
	proofs "Graph-ZKP/proofs"
)

// Verifier records the prover's commitment, challenges it with a
// secret uniform bit, and accepts only a bijection mapping the
// commitment exactly onto the chosen graph.
type Verifier struct {
	pair   graphs.GraphPair
	rng    *rand.Rand
	round  int
	b      bool
	commit *graphs.Graph
}

// NewVerifier returns a verifier bound to pair. A nil rng gets a fresh
// system-seeded source.
func NewVerifier(pair graphs.GraphPair, rng *rand.Rand) *Verifier {
	if rng == nil {
		rng = prng.NewRand()
	}
	return &Verifier{pair: pair, rng: rng}
}

// Init opens with the empty placeholder; the prover commits first.
func (v *Verifier) Init() proofs.Message { return proofs.Empty{} }

func (v *Verifier) Handle(msg proofs.Message) (proofs.Message, bool, error) {
	switch v.round {
	case 0:
		c, ok := msg.(Commit)
		if !ok {
			return nil, false, fmt.Errorf("GIVerifier.Handle: round 0: unexpected %T: %w", msg, proofs.ErrProtocolViolation)
		}
		if c.G == nil {
			return nil, false, fmt.Errorf("GIVerifier.Handle: round 0: empty commitment: %w", proofs.ErrProtocolViolation)
		}
		v.round++
		v.commit = c.G
		v.b = v.rng.Intn(2) == 1
		return Challenge{B: v.b}, false, nil
	case 1:
		r, ok := msg.(Reveal)
		if !ok {
			return nil, false, fmt.Errorf("GIVerifier.Handle: round 1: unexpected %T: %w", msg, proofs.ErrProtocolViolation)
		}
		if !r.Iso.Valid(v.commit.N()) {
			return nil, false, fmt.Errorf("GIVerifier.Handle: reveal is not a bijection on %d vertices: %w", v.commit.N(), proofs.ErrProtocolViolation)
		}
		v.round++
		accept := v.commit.Permute(r.Iso).Equal(v.pair.Pick(v.b))
		return proofs.Empty{}, accept, nil
	default:
		return nil, false, fmt.Errorf("GIVerifier.Handle: round %d: protocol already finished: %w", v.round, proofs.ErrProtocolViolation)
	}
}
