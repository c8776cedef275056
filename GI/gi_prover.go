package gi

import (
	"fmt"
	"math/rand"

	graphs "Graph-ZKP/graphs"
	prng "Graph-ZKP/internal/prng"
	proofs "Graph-ZKP/proofs"
)

// Prover is the honest prover. It can recover an isomorphism between
// its commitment and either graph of the pair, so it answers any
// challenge bit.
type Prover struct {
	pair   graphs.GraphPair
	rng    *rand.Rand
	round  int
	commit *graphs.Graph
}

// NewProver returns an honest prover bound to pair. A nil rng gets a
// fresh system-seeded source.
func NewProver(pair graphs.GraphPair, rng *rand.Rand) *Prover {
	if rng == nil {
		rng = prng.NewRand()
	}
	return &Prover{pair: pair, rng: rng}
}

// Handle advances the prover one round: on the opening message it
// commits a random relabeling of G0, on the challenge it reveals the
// witnessing bijection, afterwards it terminates the run.
func (p *Prover) Handle(msg proofs.Message) (proofs.Message, bool, error) {
	switch p.round {
	case 0:
		if _, ok := msg.(proofs.Empty); !ok {
			return nil, false, fmt.Errorf("GIProver.Handle: round 0: unexpected %T: %w", msg, proofs.ErrProtocolViolation)
		}
		p.round++
		p.commit = p.pair.G0.RandomPermutation(p.rng)
		return Commit{G: p.commit}, false, nil
	case 1:
		ch, ok := msg.(Challenge)
		if !ok {
			return nil, false, fmt.Errorf("GIProver.Handle: round 1: unexpected %T: %w", msg, proofs.ErrProtocolViolation)
		}
		p.round++
		iso, found := graphs.FindIsomorphism(p.commit, p.pair.Pick(ch.B))
		if !found {
			return nil, false, fmt.Errorf("GIProver.Handle: no isomorphism from the commitment onto the challenged graph (b=%v)", ch.B)
		}
		return Reveal{Iso: iso}, false, nil
	default:
		return proofs.Empty{}, true, nil
	}
}
