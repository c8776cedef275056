package bench

import (
	"math/rand"
	"testing"

	gi "Graph-ZKP/GI"
	gni "Graph-ZKP/GNI"
	graphs "Graph-ZKP/graphs"
	proofs "Graph-ZKP/proofs"
)

func BenchmarkGIRun(b *testing.B) {
	pair, _ := graphs.IsomorphicSample()
	rng := benchRNG("bench-gi-run")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ok, err := proofs.Run(gi.NewProver(pair, rng), gi.NewVerifier(pair, rng))
		if err != nil {
			b.Fatal(err)
		}
		if !ok {
			b.Fatal("honest prover rejected")
		}
	}
}

func BenchmarkGNIRun(b *testing.B) {
	pair := graphs.NonIsomorphicSample()
	rng := benchRNG("bench-gni-run")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ok, err := proofs.Run(gni.NewProver(pair), gni.NewVerifier(pair, rng))
		if err != nil {
			b.Fatal(err)
		}
		if !ok {
			b.Fatal("honest prover rejected")
		}
	}
}

func BenchmarkGIBatch(b *testing.B) {
	pair, _ := graphs.IsomorphicSample()
	opts := proofs.BatchOpts{
		Runs:    128,
		Workers: 4,
		Seed:    []byte("bench-gi-batch"),
		New: func(rng *rand.Rand) (proofs.Prover, proofs.Verifier) {
			return gi.NewProver(pair, rng), gi.NewVerifier(pair, rng)
		},
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rep, err := proofs.RunBatch(opts)
		if err != nil {
			b.Fatal(err)
		}
		if rep.Accepted != rep.Runs {
			b.Fatalf("accepted %d of %d runs", rep.Accepted, rep.Runs)
		}
	}
}
