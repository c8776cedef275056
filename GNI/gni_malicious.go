package gni

import (
	"math"
	"math/rand"

	prng "Graph-ZKP/internal/prng"
	proofs "Graph-ZKP/proofs"
)

// MaliciousProver never inspects the challenge: it answers with a
// biased coin flip in place of an isomorphism test.
type MaliciousProver struct {
	rng       *rand.Rand
	bias      float64
	sentGuess bool
}

// NewMaliciousProver returns a prover guessing 1 with probability
// bias. Panics unless bias lies in [0, 1]. A nil rng gets a fresh
// system-seeded source.
func NewMaliciousProver(bias float64, rng *rand.Rand) *MaliciousProver {
	if math.IsNaN(bias) || bias < 0 || bias > 1 {
		panic("gni: invalid guess bias")
	}
	if rng == nil {
		rng = prng.NewRand()
	}
	return &MaliciousProver{bias: bias, rng: rng}
}

func (p *MaliciousProver) Handle(msg proofs.Message) (proofs.Message, bool, error) {
	if p.sentGuess {
		return proofs.Empty{}, true, nil
	}
	p.sentGuess = true
	return Guess{B: p.rng.Float64() < p.bias}, false, nil
}
