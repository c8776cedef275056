package gni

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	gi "Graph-ZKP/GI"
	graphs "Graph-ZKP/graphs"
	proofs "Graph-ZKP/proofs"
)

func TestGNI_HonestProverAlwaysAcceptedOnNonIsomorphicPair(t *testing.T) {
	pair := graphs.NonIsomorphicSample()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for run := 0; run < 200; run++ {
		ok, err := proofs.Run(NewProver(pair), NewVerifier(pair, rng))
		if err != nil {
			t.Fatalf("run %d: %v", run, err)
		}
		if !ok {
			t.Fatalf("honest run %d rejected", run)
		}
	}
}

func TestGNI_MessageFlow(t *testing.T) {
	pair := graphs.NonIsomorphicSample()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	p := NewProver(pair)
	v := NewVerifier(pair, rng)

	vmsg := v.Init()
	if _, ok := vmsg.(Challenge); !ok {
		t.Fatalf("opening message: got %T, want Challenge", vmsg)
	}
	gm, done, err := p.Handle(vmsg)
	if err != nil || done {
		t.Fatalf("guess round: done=%v err=%v", done, err)
	}
	if _, ok := gm.(Guess); !ok {
		t.Fatalf("prover sent %T, want Guess", gm)
	}
	final, accept, err := v.Handle(gm)
	if err != nil {
		t.Fatal(err)
	}
	if !accept {
		t.Fatal("verifier rejected an honest guess on a non-isomorphic pair")
	}
	if _, done, _ := p.Handle(final); !done {
		t.Fatal("prover did not terminate after the verdict round")
	}
}

func TestGNI_SoundnessOnIsomorphicPair(t *testing.T) {
	pair, _ := graphs.IsomorphicSample()
	rep, err := proofs.RunBatch(proofs.BatchOpts{
		Runs:    1000,
		Workers: 4,
		Seed:    []byte("gni-soundness"),
		New: func(rng *rand.Rand) (proofs.Prover, proofs.Verifier) {
			return NewProver(pair), NewVerifier(pair, rng)
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if rep.Accepted == rep.Runs {
		t.Fatalf("honest strategy accepted on all %d runs of an isomorphic pair", rep.Runs)
	}
	if rep.Accepted < 400 || rep.Accepted > 600 {
		t.Fatalf("acceptance far from one half: %d of %d", rep.Accepted, rep.Runs)
	}
}

func TestGNI_MaliciousProverNearHalf(t *testing.T) {
	pair, _ := graphs.IsomorphicSample()
	rep, err := proofs.RunBatch(proofs.BatchOpts{
		Runs:    1000,
		Workers: 4,
		Seed:    []byte("gni-malicious-bias-half"),
		New: func(rng *rand.Rand) (proofs.Prover, proofs.Verifier) {
			return NewMaliciousProver(0.5, rng), NewVerifier(pair, rng)
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if rep.Accepted == rep.Runs {
		t.Fatalf("malicious prover accepted on all %d runs", rep.Runs)
	}
	if rep.Accepted < 400 || rep.Accepted > 600 {
		t.Fatalf("acceptance far from one half: %d of %d", rep.Accepted, rep.Runs)
	}
}

func TestGNIMaliciousProver_IgnoresPayload(t *testing.T) {
	p := NewMaliciousProver(1, nil)
	msg, done, err := p.Handle(Guess{B: false})
	if err != nil || done {
		t.Fatalf("guess round: done=%v err=%v", done, err)
	}
	g, ok := msg.(Guess)
	if !ok {
		t.Fatalf("prover sent %T, want Guess", msg)
	}
	if !g.B {
		t.Fatal("bias 1 must always guess 1")
	}
	if _, done, _ := p.Handle(proofs.Empty{}); !done {
		t.Fatal("prover did not terminate after the verdict round")
	}
}

func TestGNIProver_RejectsUnexpectedShapes(t *testing.T) {
	pair := graphs.NonIsomorphicSample()
	if _, _, err := NewProver(pair).Handle(Guess{B: true}); !errors.Is(err, proofs.ErrProtocolViolation) {
		t.Fatalf("guess shape not flagged: %v", err)
	}
	if _, _, err := NewProver(pair).Handle(Challenge{}); !errors.Is(err, proofs.ErrProtocolViolation) {
		t.Fatalf("empty challenge not flagged: %v", err)
	}
}

func TestGNIVerifier_RejectsUnexpectedShapes(t *testing.T) {
	pair := graphs.NonIsomorphicSample()
	v := NewVerifier(pair, nil)
	ch := v.Init().(Challenge)
	if _, _, err := v.Handle(ch); !errors.Is(err, proofs.ErrProtocolViolation) {
		t.Fatalf("challenge shape not flagged: %v", err)
	}
	if _, _, err := v.Handle(Guess{B: true}); err != nil {
		t.Fatal(err)
	}
	if _, _, err := v.Handle(Guess{B: false}); !errors.Is(err, proofs.ErrProtocolViolation) {
		t.Fatalf("guess after the verdict not flagged: %v", err)
	}
}

func TestGNI_MismatchedRolesAbort(t *testing.T) {
	pair := graphs.NonIsomorphicSample()
	_, err := proofs.Run(NewProver(pair), gi.NewVerifier(pair, nil))
	if !errors.Is(err, proofs.ErrProtocolViolation) {
		t.Fatalf("mismatched roles not flagged: %v", err)
	}
}

func TestNewMaliciousProver_PanicsOnBadBias(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on bias outside [0,1]")
		}
	}()
	_ = NewMaliciousProver(-0.1, nil)
}
