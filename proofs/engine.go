package proofs

import (
	"errors"
	"fmt"
)

// Message is a protocol payload carried between roles. Concrete shapes
// live in the protocol packages; String is diagnostic only.
type Message interface {
	String() string
}

// Empty is the structurally empty placeholder sent when a role must
// speak without having anything to say.
type Empty struct{}

func (Empty) String() string { return "empty" }

// Prover reacts to verifier messages. Handle returns the reply and a
// done flag; once done is set the run ends and the reply is discarded.
type Prover interface {
	Handle(msg Message) (Message, bool, error)
}

// Verifier opens the interaction and judges prover messages. Init
// produces the first message of every run, an Empty placeholder when
// the prover is the one with something to commit. Handle returns the
// next verifier message and this round's accept flag.
type Verifier interface {
	Init() Message
	Handle(msg Message) (Message, bool, error)
}

// ErrProtocolViolation tags errors caused by a message whose shape the
// receiving role does not expect in its current round. Fatal to the
// run it occurs in, harmless to concurrent runs.
var ErrProtocolViolation = errors.New("protocol violation")

// Run drives a single interactive proof and returns the verifier's
// verdict. The verifier speaks first. The prover owns termination: a
// reply carrying the done flag ends the run immediately and is never
// delivered. Each verifier verdict overwrites the previous one, so the
// last delivered round decides.
func Run(p Prover, v Verifier) (bool, error) {
	vmsg := v.Init()
	accept := false
	for {
		pmsg, done, err := p.Handle(vmsg)
		if err != nil {
			return false, fmt.Errorf("Run: prover: %w", err)
		}
		if done {
			return accept, nil
		}
		vmsg, accept, err = v.Handle(pmsg)
		if err != nil {
			return false, fmt.Errorf("Run: verifier: %w", err)
		}
	}
}
