package gni

import (
	"fmt"

	graphs "Graph-ZKP/graphs"
	proofs "Graph-ZKP/proofs"
)

// Prover is the honest prover. When the pair is truly non-isomorphic
// the challenge is isomorphic to exactly one graph of the pair, so
// testing it against G1 recovers the verifier's secret bit.
type Prover struct {
	pair      graphs.GraphPair
	sentGuess bool
}

// NewProver returns an honest prover bound to pair.
func NewProver(pair graphs.GraphPair) *Prover {
	return &Prover{pair: pair}
}

// Handle answers the challenge with the index of the pair graph it is
// isomorphic to, then terminates the run on the verdict round.
func (p *Prover) Handle(msg proofs.Message) (proofs.Message, bool, error) {
	if p.sentGuess {
		return proofs.Empty{}, true, nil
	}
	ch, ok := msg.(Challenge)
	if !ok {
		return nil, false, fmt.Errorf("GNIProver.Handle: unexpected %T: %w", msg, proofs.ErrProtocolViolation)
	}
	if ch.G == nil {
		return nil, false, fmt.Errorf("GNIProver.Handle: empty challenge: %w", proofs.ErrProtocolViolation)
	}
	p.sentGuess = true
	return Guess{B: graphs.AreIsomorphic(ch.G, p.pair.G1)}, false, nil
}
