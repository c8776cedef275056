package proofs

import (
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	prng "Graph-ZKP/internal/prng"
	prof "Graph-ZKP/prof"
)

const runSeedLabel = "proofs-run"

// ErrInvalidOpts reports unusable batch options.
var ErrInvalidOpts = errors.New("invalid batch options")

// BatchOpts configures repeated independent runs of one protocol.
type BatchOpts struct {
	Runs    int    `json:"runs"`
	Workers int    `json:"workers"`
	Seed    []byte `json:"seed,omitempty"`

	// New builds a fresh prover/verifier pair for one run. Both roles
	// may share the supplied rng; a single run is strictly sequential.
	New func(rng *rand.Rand) (Prover, Verifier) `json:"-"`
}

func defaultBatchOpts() BatchOpts {
	return BatchOpts{
		Runs:    1,
		Workers: runtime.NumCPU(),
	}
}

func (o *BatchOpts) applyDefaults() {
	def := defaultBatchOpts()
	if o.Runs <= 0 {
		o.Runs = def.Runs
	}
	if o.Workers <= 0 {
		o.Workers = def.Workers
	}
}

// BatchReport aggregates the verdicts and timings of one batch.
type BatchReport struct {
	Runs         int              `json:"runs"`
	Accepted     int              `json:"accepted"`
	Rejected     int              `json:"rejected"`
	AcceptRate   float64          `json:"accept_rate"`
	ElapsedUS    int64            `json:"elapsed_us"`
	TimingsUS    map[string]int64 `json:"timings_us"`
	TimingCounts map[string]int   `json:"timing_counts"`
}

// RunBatch executes o.Runs independent proof runs, in parallel up to
// o.Workers, and aggregates the verdicts. Every run gets a fresh role
// pair from o.New on its own rng, seeded by expanding the root seed
// with the run index, so a batch is reproducible from its seed alone.
// The first failed run aborts the batch.
func RunBatch(o BatchOpts) (BatchReport, error) {
	o.applyDefaults()
	if o.New == nil {
		return BatchReport{}, fmt.Errorf("%w: missing role factory", ErrInvalidOpts)
	}
	root := o.Seed
	if len(root) == 0 {
		root = prng.FreshSeed()
	}

	var accepted atomic.Int64
	start := time.Now()
	var g errgroup.Group
	g.SetLimit(o.Workers)
	for i := 0; i < o.Runs; i++ {
		i := i // per-iteration copy: the go directive predates Go 1.22 loopvar scoping
		g.Go(func() error {
			rng := prng.NewSeededRand(prng.DeriveSeed(root, runSeedLabel, uint64(i)))
			p, v := o.New(rng)
			t0 := time.Now()
			ok, err := Run(p, v)
			prof.Track(t0, "proofs.Run")
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			if ok {
				accepted.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// drop partial timings so the next batch starts clean
		prof.SnapshotAndReset()
		return BatchReport{}, fmt.Errorf("RunBatch: %w", err)
	}
	elapsed := time.Since(start)

	entries := prof.SnapshotAndReset()
	tims, counts := prof.AggregateUS(entries)
	tims["__total__"] = elapsed.Microseconds()
	counts["__total__"] = len(entries)

	acc := int(accepted.Load())
	return BatchReport{
		Runs:         o.Runs,
		Accepted:     acc,
		Rejected:     o.Runs - acc,
		AcceptRate:   float64(acc) / float64(o.Runs),
		ElapsedUS:    elapsed.Microseconds(),
		TimingsUS:    tims,
		TimingCounts: counts,
	}, nil
}
