package gni

import (
	"fmt"

	graphs "Graph-ZKP/graphs"
)

// Messages of the one-round non-isomorphism proof: the verifier opens
// with a random relabeling of a secretly chosen graph of the pair, the
// prover replies with its guess of which graph was relabeled.

// Challenge carries the verifier's relabeling of the secret graph.
type Challenge struct {
	G *graphs.Graph
}

func (m Challenge) String() string {
	if m.G == nil {
		return "challenge (empty)"
	}
	return fmt.Sprintf("challenge with a %d-vertex graph", m.G.N())
}

// Guess carries the prover's answer: true names G1, false names G0.
type Guess struct {
	B bool
}

func (m Guess) String() string { return fmt.Sprintf("guess b=%v", m.B) }
