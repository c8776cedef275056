package main

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/xid"

	gi "Graph-ZKP/GI"
	gni "Graph-ZKP/GNI"
	graphs "Graph-ZKP/graphs"
	prng "Graph-ZKP/internal/prng"
	proofs "Graph-ZKP/proofs"
)

const progressBarWidth = 40

const (
	defaultJSONLPath    = "Additionnals/proof_sweep.jsonl"
	defaultCSVPath      = "Additionnals/proof_sweep.csv"
	defaultScenarioSpec = "gi-honest,gi-malicious,gni-honest,gni-sound,gni-malicious"
	defaultBiasSpec     = "0,0.25,0.5,0.75,1"
)

type Runner struct {
	jsonFile         *os.File
	jsonBuf          *bufio.Writer
	jsonEnc          *json.Encoder
	csvFile          *os.File
	csvWriter        *csv.Writer
	csvHeaderWritten bool
}

type record struct {
	Stage  string                 `json:"stage"`
	Meta   map[string]interface{} `json:"meta,omitempty"`
	Report proofs.BatchReport     `json:"report"`
}

type finalResult struct {
	Stage  string
	Report proofs.BatchReport
}

// scenario names one prover/verifier pairing over a sample pair: the
// honest strategies, the biased-guess strategies, and the honest
// non-isomorphism strategy run on an isomorphic pair (gni-sound).
type scenario struct {
	name     string
	usesBias bool
	iso      bool
	roles    func(pair graphs.GraphPair, bias float64) func(rng *rand.Rand) (proofs.Prover, proofs.Verifier)
}

type sweepPoint struct {
	Scenario scenario
	Bias     float64
	Pair     graphs.GraphPair
}

type progressBar struct {
	total int
	start time.Time
}

var scenarios = []scenario{
	{
		name: "gi-honest",
		iso:  true,
		roles: func(pair graphs.GraphPair, _ float64) func(*rand.Rand) (proofs.Prover, proofs.Verifier) {
			return func(rng *rand.Rand) (proofs.Prover, proofs.Verifier) {
				return gi.NewProver(pair, rng), gi.NewVerifier(pair, rng)
			}
		},
	},
	{
		name:     "gi-malicious",
		usesBias: true,
		iso:      true,
		roles: func(pair graphs.GraphPair, bias float64) func(*rand.Rand) (proofs.Prover, proofs.Verifier) {
			return func(rng *rand.Rand) (proofs.Prover, proofs.Verifier) {
				return gi.NewMaliciousProver(pair, bias, rng), gi.NewVerifier(pair, rng)
			}
		},
	},
	{
		name: "gni-honest",
		roles: func(pair graphs.GraphPair, _ float64) func(*rand.Rand) (proofs.Prover, proofs.Verifier) {
			return func(rng *rand.Rand) (proofs.Prover, proofs.Verifier) {
				return gni.NewProver(pair), gni.NewVerifier(pair, rng)
			}
		},
	},
	{
		name: "gni-sound",
		iso:  true,
		roles: func(pair graphs.GraphPair, _ float64) func(*rand.Rand) (proofs.Prover, proofs.Verifier) {
			return func(rng *rand.Rand) (proofs.Prover, proofs.Verifier) {
				return gni.NewProver(pair), gni.NewVerifier(pair, rng)
			}
		},
	},
	{
		name:     "gni-malicious",
		usesBias: true,
		iso:      true,
		roles: func(pair graphs.GraphPair, bias float64) func(*rand.Rand) (proofs.Prover, proofs.Verifier) {
			return func(rng *rand.Rand) (proofs.Prover, proofs.Verifier) {
				return gni.NewMaliciousProver(bias, rng), gni.NewVerifier(pair, rng)
			}
		},
	},
}

func newRunner(jsonPath, csvPath string) (*Runner, error) {
	r := &Runner{}
	if jsonPath != "" {
		if err := os.MkdirAll(dirOf(jsonPath), 0o755); err != nil && !os.IsExist(err) {
			return nil, fmt.Errorf("create json dir: %w", err)
		}
		f, err := os.Create(jsonPath)
		if err != nil {
			return nil, fmt.Errorf("open json output: %w", err)
		}
		buf := bufio.NewWriter(f)
		r.jsonFile = f
		r.jsonBuf = buf
		r.jsonEnc = json.NewEncoder(buf)
	}
	if csvPath != "" {
		if err := os.MkdirAll(dirOf(csvPath), 0o755); err != nil && !os.IsExist(err) {
			return nil, fmt.Errorf("create csv dir: %w", err)
		}
		f, err := os.Create(csvPath)
		if err != nil {
			return nil, fmt.Errorf("open csv output: %w", err)
		}
		r.csvFile = f
		r.csvWriter = csv.NewWriter(f)
	}
	return r, nil
}

func (r *Runner) Close() {
	if r.jsonBuf != nil {
		_ = r.jsonBuf.Flush()
	}
	if r.jsonFile != nil {
		_ = r.jsonFile.Close()
	}
	if r.csvWriter != nil {
		r.csvWriter.Flush()
	}
	if r.csvFile != nil {
		_ = r.csvFile.Close()
	}
}

func main() {
	jsonPath := flag.String("jsonl", defaultJSONLPath, "JSONL output path")
	csvPath := flag.String("csv", defaultCSVPath, "CSV output path")
	runs := flag.Int("runs", 1000, "independent proof runs per sweep point")
	workers := flag.Int("workers", 0, "parallel workers per batch (0 = one per CPU)")
	seed := flag.String("seed", "", "root seed for reproducible batches (empty = fresh randomness)")
	scenarioSpec := flag.String("scenarios", defaultScenarioSpec, "comma list of scenarios to sweep")
	biasSpec := flag.String("bias", defaultBiasSpec, "guess-bias grid for the malicious provers (comma list in [0,1])")
	g0Spec := flag.String("g0", "", "override pair: first graph, e.g. \"4: 0-1,1-2,2-3\"")
	g1Spec := flag.String("g1", "", "override pair: second graph")
	flag.Parse()

	selected, err := parseScenarioList(*scenarioSpec)
	if err != nil {
		exitErr("parse scenarios: %v", err)
	}
	biases, err := parseFloatList(*biasSpec)
	if err != nil {
		exitErr("parse bias: %v", err)
	}
	override, err := parsePairOverride(*g0Spec, *g1Spec)
	if err != nil {
		exitErr("parse pair override: %v", err)
	}

	runner, err := newRunner(*jsonPath, *csvPath)
	if err != nil {
		exitErr("init runner: %v", err)
	}
	defer runner.Close()

	session := xid.New().String()
	points := enumeratePoints(selected, biases, override)
	fmt.Printf("Enumerated %d sweep points (session %s)\n", len(points), session)

	bar := newProgressBar(len(points))
	finals := []finalResult{}
	failures := 0
	for idx, pt := range points {
		stage := pt.Scenario.name
		if pt.Scenario.usesBias {
			stage = fmt.Sprintf("%s/p%.2f", pt.Scenario.name, pt.Bias)
		}
		meta := map[string]interface{}{
			"session":  session,
			"scenario": pt.Scenario.name,
			"workers":  *workers,
		}
		if pt.Scenario.usesBias {
			meta["bias"] = pt.Bias
		}
		opts := proofs.BatchOpts{
			Runs:    *runs,
			Workers: *workers,
			New:     pt.Scenario.roles(pt.Pair, pt.Bias),
		}
		if *seed != "" {
			opts.Seed = prng.DeriveSeed([]byte(*seed), pt.Scenario.name, uint64(idx))
		}
		rep, err := runner.Run(stage, opts, meta)
		bar.Update(idx + 1)
		if err != nil {
			fmt.Fprintf(os.Stderr, "\n%s failed: %v\n", stage, err)
			failures++
			continue
		}
		finals = append(finals, finalResult{Stage: stage, Report: rep})
	}

	fmt.Println()
	if failures > 0 {
		fmt.Printf("%d sweep points failed\n", failures)
	}
	runner.PrintFinalSummary(finals)
}

func enumeratePoints(selected []scenario, biases []float64, override *graphs.GraphPair) []sweepPoint {
	isoPair, _ := graphs.IsomorphicSample()
	nonIsoPair := graphs.NonIsomorphicSample()
	points := []sweepPoint{}
	for _, sc := range selected {
		pair := nonIsoPair
		if sc.iso {
			pair = isoPair
		}
		if override != nil {
			pair = *override
		}
		if !sc.usesBias {
			points = append(points, sweepPoint{Scenario: sc, Pair: pair})
			continue
		}
		for _, bias := range biases {
			points = append(points, sweepPoint{Scenario: sc, Bias: bias, Pair: pair})
		}
	}
	return points
}

func safeRunBatch(opts proofs.BatchOpts) (rep proofs.BatchReport, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return proofs.RunBatch(opts)
}

func (r *Runner) Run(stage string, opts proofs.BatchOpts, meta map[string]interface{}) (proofs.BatchReport, error) {
	rep, err := safeRunBatch(opts)
	if err != nil {
		return rep, err
	}
	rec := record{Stage: stage, Meta: cloneMeta(meta), Report: rep}
	if r.jsonEnc != nil {
		if err := r.jsonEnc.Encode(rec); err != nil {
			fmt.Fprintf(os.Stderr, "json encode: %v\n", err)
		}
		if r.jsonBuf != nil {
			_ = r.jsonBuf.Flush()
		}
	}
	if r.csvWriter != nil {
		if !r.csvHeaderWritten {
			r.writeCSVHeader()
		}
		if err := r.writeCSVRow(stage, rep); err != nil {
			fmt.Fprintf(os.Stderr, "csv write: %v\n", err)
		}
	}
	return rep, nil
}

func (r *Runner) writeCSVHeader() {
	if r.csvWriter == nil {
		return
	}
	header := []string{
		"stage", "runs", "accepted", "rejected", "accept_rate",
		"elapsed_us", "avg_run_us",
	}
	_ = r.csvWriter.Write(header)
	r.csvHeaderWritten = true
}

func (r *Runner) writeCSVRow(stage string, rep proofs.BatchReport) error {
	if r.csvWriter == nil {
		return nil
	}
	row := []string{
		stage,
		fmt.Sprintf("%d", rep.Runs),
		fmt.Sprintf("%d", rep.Accepted),
		fmt.Sprintf("%d", rep.Rejected),
		fmt.Sprintf("%.4f", rep.AcceptRate),
		fmt.Sprintf("%d", rep.ElapsedUS),
		fmt.Sprintf("%.1f", avgRunUS(rep)),
	}
	return r.csvWriter.Write(row)
}

func (r *Runner) PrintFinalSummary(finals []finalResult) {
	if len(finals) == 0 {
		fmt.Println("No sweep points completed.")
		return
	}
	sort.Slice(finals, func(i, j int) bool { return finals[i].Stage < finals[j].Stage })
	fmt.Println("Sweep results sorted by stage:")
	fmt.Println("Stage                 Runs  Accepted  Rate    AvgRunUS")
	for _, fr := range finals {
		rep := fr.Report
		fmt.Printf("%-20s %5d  %8d  %.4f  %8.1f\n",
			fr.Stage,
			rep.Runs,
			rep.Accepted,
			rep.AcceptRate,
			avgRunUS(rep),
		)
	}
}

func avgRunUS(rep proofs.BatchReport) float64 {
	n := rep.TimingCounts["proofs.Run"]
	if n == 0 {
		return 0
	}
	return float64(rep.TimingsUS["proofs.Run"]) / float64(n)
}

func parseScenarioList(spec string) ([]scenario, error) {
	byName := make(map[string]scenario, len(scenarios))
	for _, sc := range scenarios {
		byName[sc.name] = sc
	}
	out := []scenario{}
	seen := map[string]struct{}{}
	for _, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(strings.ToLower(tok))
		if tok == "" {
			continue
		}
		sc, ok := byName[tok]
		if !ok {
			return nil, fmt.Errorf("unknown scenario %q", tok)
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, sc)
	}
	if len(out) == 0 {
		return nil, errors.New("empty scenario set")
	}
	return out, nil
}

func parseFloatList(spec string) ([]float64, error) {
	out := []float64{}
	seen := map[float64]struct{}{}
	for _, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid bias %q: %w", tok, err)
		}
		if v < 0 || v > 1 {
			return nil, fmt.Errorf("bias %v outside [0, 1]", v)
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, errors.New("empty value set")
	}
	sort.Float64s(out)
	return out, nil
}

func parsePairOverride(g0Spec, g1Spec string) (*graphs.GraphPair, error) {
	if g0Spec == "" && g1Spec == "" {
		return nil, nil
	}
	if g0Spec == "" || g1Spec == "" {
		return nil, errors.New("both -g0 and -g1 are required to override the pair")
	}
	g0, err := graphs.Parse(g0Spec)
	if err != nil {
		return nil, fmt.Errorf("g0: %w", err)
	}
	g1, err := graphs.Parse(g1Spec)
	if err != nil {
		return nil, fmt.Errorf("g1: %w", err)
	}
	return &graphs.GraphPair{G0: g0, G1: g1}, nil
}

func dirOf(path string) string {
	if path == "" {
		return "."
	}
	last := strings.LastIndexByte(path, '/')
	if last == -1 {
		return "."
	}
	if last == 0 {
		return "/"
	}
	return path[:last]
}

func cloneMeta(meta map[string]interface{}) map[string]interface{} {
	if meta == nil {
		return nil
	}
	out := make(map[string]interface{}, len(meta))
	for k, v := range meta {
		out[k] = v
	}
	return out
}

func (bar *progressBar) Update(done int) {
	if bar.total <= 0 {
		return
	}
	if done > bar.total {
		done = bar.total
	}
	if bar.start.IsZero() {
		bar.start = time.Now()
	}
	ratio := float64(done) / float64(bar.total)
	filled := int(ratio * progressBarWidth)
	if filled > progressBarWidth {
		filled = progressBarWidth
	}
	barStr := strings.Repeat("█", filled) + strings.Repeat(" ", progressBarWidth-filled)
	elapsed := time.Since(bar.start)
	var eta time.Duration
	if done > 0 && done < bar.total {
		eta = time.Duration(float64(elapsed) * (float64(bar.total-done) / float64(done)))
	}
	fmt.Printf("\r\033[32m[%s]\033[0m %3.0f%% (%3d/%3d) ETA %s", barStr, ratio*100, done, bar.total, formatDuration(eta))
	if done == bar.total {
		fmt.Print("\n")
	}
}

func newProgressBar(total int) *progressBar {
	return &progressBar{total: total}
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "--s"
	}
	sec := d.Round(time.Second)
	return sec.String()
}

func exitErr(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
