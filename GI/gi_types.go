package gi

import (
	"fmt"

	graphs "Graph-ZKP/graphs"
)

// Messages of the two-round isomorphism proof. Round one exchanges a
// committed relabeling for a secret challenge bit; round two reveals
// the bijection mapping that commitment onto the chosen graph.

// Commit carries the prover's committed random relabeling.
type Commit struct {
	G *graphs.Graph
}

func (m Commit) String() string {
	if m.G == nil {
		return "commit (empty)"
	}
	return fmt.Sprintf("commit of a %d-vertex graph", m.G.N())
}

// Challenge asks the prover to reveal an isomorphism from its
// commitment onto G1 when B is set, onto G0 otherwise.
type Challenge struct {
	B bool
}

func (m Challenge) String() string { return fmt.Sprintf("challenge b=%v", m.B) }

// Reveal carries the bijection answering a Challenge.
type Reveal struct {
	Iso graphs.Permutation
}

func (m Reveal) String() string { return fmt.Sprintf("reveal of a %d-point bijection", len(m.Iso)) }
