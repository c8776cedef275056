package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type ReportStruct struct {
	Runs         int              `json:"runs"`
	Accepted     int              `json:"accepted"`
	Rejected     int              `json:"rejected"`
	AcceptRate   float64          `json:"accept_rate"`
	ElapsedUS    int64            `json:"elapsed_us"`
	TimingsUS    map[string]int64 `json:"timings_us"`
	TimingCounts map[string]int   `json:"timing_counts"`
}

type MetaStruct struct {
	Session  string   `json:"session"`
	Scenario string   `json:"scenario"`
	Bias     *float64 `json:"bias"`
	Workers  int      `json:"workers"`
}

type sweepRecord struct {
	Stage  string       `json:"stage"`
	Meta   MetaStruct   `json:"meta"`
	Report ReportStruct `json:"report"`
}

type SweepRow struct {
	Stage      string
	Scenario   string
	Session    string
	Bias       float64
	HasBias    bool
	Runs       int
	Accepted   int
	AcceptRate float64
	AvgRunUS   float64
	TotalMS    float64
}

type point struct {
	bias  float64
	rate  float64
	avgUS float64
	val   []interface{} // payload for tooltip
}

func reportAcceptance(rows []SweepRow, source string) {
	if len(rows) == 0 {
		fmt.Fprintf(os.Stderr, "no sweep rows to summarize for %s\n", source)
		return
	}
	sorted := append([]SweepRow(nil), rows...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Stage < sorted[j].Stage })
	fmt.Printf("Acceptance per stage from %s\n", source)
	fmt.Println("Stage                 Runs  Accepted  Rate    AvgRunUS")
	for _, r := range sorted {
		fmt.Printf("%-20s %5d  %8d  %.4f  %8.1f\n", r.Stage, r.Runs, r.Accepted, r.AcceptRate, r.AvgRunUS)
	}
}

func main() {
	inPath := flag.String("in", "Additionnals/proof_sweep.json", "input sweep JSON/JSONL file")
	outPath := flag.String("out", "plot_proof_sweep.html", "output HTML file")
	flag.Parse()

	resolvedIn, err := resolveSweepPath(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "input error: %v\n", err)
		os.Exit(1)
	}
	if resolvedIn != *inPath {
		fmt.Fprintf(os.Stderr, "[info] using %s (resolved from %s)\n", resolvedIn, *inPath)
	}

	rows, err := readSweepRows(resolvedIn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "[debug] rows loaded from %s: %d\n", resolvedIn, len(rows))

	reportAcceptance(rows, resolvedIn)

	series, names, minUS, maxUS := buildSeries(rows)
	if len(names) == 0 {
		fmt.Fprintf(os.Stderr, "no bias-swept rows found in %s; nothing to plot\n", resolvedIn)
		os.Exit(1)
	}
	if maxUS < minUS {
		maxUS = minUS
	}
	if maxUS == minUS {
		maxUS = minUS + 1
	}

	page := components.NewPage().SetPageTitle("Acceptance Rate vs. Guess Bias")

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Acceptance Rate vs. Guess Bias",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "item",
			Formatter: opts.FuncOpts(`
function (p) {
  var v = p.value || [];
  function fix2(x){
    if (typeof x === 'number') return x.toFixed(2);
    return (x === undefined || x === null) ? '-' : x;
  }
  function fix4(x){
    if (typeof x === 'number') return x.toFixed(4);
    return '-';
  }
  var stage = v[6] || '(stage unknown)';
  return [
    '<b>' + p.seriesName + '</b> · ' + stage,
    'Guess bias: ' + fix2(v[0]),
    'Acceptance: ' + fix4(v[1]) + ' (' + v[3] + ' of ' + v[2] + ' runs)',
    'Avg run: ' + fix2(v[4]) + ' µs',
    'Batch total: ' + fix2(v[5]) + ' ms'
  ].join('<br/>');
}`),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Guess bias p",
			Type:      "value",
			AxisLabel: &opts.AxisLabel{Formatter: "{value}"},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Acceptance rate",
			Type:      "value",
			AxisLabel: &opts.AxisLabel{Formatter: "{value}"},
		}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside"},
			opts.DataZoom{Type: "slider"},
		),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: opts.Bool(true)},
				Restore:     &opts.ToolBoxFeatureRestore{Show: opts.Bool(true)},
				DataZoom:    &opts.ToolBoxFeatureDataZoom{Show: opts.Bool(true)},
			},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Type:       "continuous",
			Dimension:  "4",
			Min:        float32(minUS),
			Max:        float32(maxUS),
			Calculable: opts.Bool(true),
			Left:       "left",
			Top:        "middle",
			InRange:    &opts.VisualMapInRange{Color: []string{"#0ea5e9", "#22c55e", "#ef4444"}},
		}),
	)

	plusSymbol := "path://M-3,-1 L-1,-1 L-1,-3 L1,-3 L1,-1 L3,-1 L3,1 L1,1 L1,3 L-1,3 L-1,1 L-3,1 Z"
	symbols := []string{"circle", plusSymbol}

	for i, name := range names {
		items := make([]opts.ScatterData, 0, len(series[name]))
		for _, p := range series[name] {
			items = append(items, opts.ScatterData{Value: p.val})
		}
		seriesOpts := []charts.SeriesOpts{
			charts.WithScatterChartOpts(opts.ScatterChart{Symbol: symbols[i%len(symbols)], SymbolSize: 9}),
		}
		if i == 0 {
			seriesOpts = append(seriesOpts,
				charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{
					YAxis: 0.5,
					Name:  "coin-flip baseline",
				}),
				charts.WithMarkLineStyleOpts(opts.MarkLineStyle{
					Label:     &opts.Label{Show: opts.Bool(true)},
					LineStyle: &opts.LineStyle{Type: "dashed", Width: 1},
				}),
			)
		}
		sc.AddSeries(name, items, seriesOpts...)
	}

	page.AddCharts(sc)

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		fmt.Fprintf(os.Stderr, "render error: %v\n", err)
		os.Exit(1)
	}

	total := 0
	for _, name := range names {
		total += len(series[name])
	}
	fmt.Printf("Wrote %s | scenarios: %d, points: %d\n", *outPath, len(names), total)
}

func resolveSweepPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty input path")
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !os.IsNotExist(err) {
		return "", err
	}

	var candidates []string
	switch filepath.Ext(path) {
	case ".json":
		candidates = append(candidates, path+"l")
	case "":
		candidates = append(candidates, path+".json", path+".jsonl")
	default:
		// fall back to trying json/jsonl siblings
		base := path[:len(path)-len(filepath.Ext(path))]
		candidates = append(candidates, base+".json", base+".jsonl")
	}

	for _, cand := range candidates {
		if cand == "" {
			continue
		}
		if _, err := os.Stat(cand); err == nil {
			return cand, nil
		}
	}

	return "", fmt.Errorf("unable to find sweep input at %s", path)
}

func readSweepRows(path string) ([]SweepRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("input %s is empty", path)
	}

	var rows []SweepRow
	if trimmed[0] == '[' {
		rows, err = decodeSweepArray(trimmed)
	} else {
		rows, err = decodeSweepJSONL(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no valid sweep rows found in %s", path)
	}
	return rows, nil
}

func decodeSweepArray(data []byte) ([]SweepRow, error) {
	var env []sweepRecord
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	rows := make([]SweepRow, 0, len(env))
	for _, rec := range env {
		row, ok := toRow(rec)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func decodeSweepJSONL(data []byte) ([]SweepRow, error) {
	reader := bytes.NewReader(data)
	sc := bufio.NewScanner(reader)
	sc.Buffer(make([]byte, 0, 256<<10), 16<<20)
	var rows []SweepRow
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var rec sweepRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		row, ok := toRow(rec)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

func toRow(rec sweepRecord) (SweepRow, bool) {
	rep := rec.Report
	if rep.Runs <= 0 {
		return SweepRow{}, false
	}
	scenario := rec.Meta.Scenario
	if scenario == "" {
		scenario = rec.Stage
		if i := strings.IndexByte(scenario, '/'); i >= 0 {
			scenario = scenario[:i]
		}
	}
	row := SweepRow{
		Stage:      rec.Stage,
		Scenario:   scenario,
		Session:    rec.Meta.Session,
		Runs:       rep.Runs,
		Accepted:   rep.Accepted,
		AcceptRate: rep.AcceptRate,
		TotalMS:    float64(rep.ElapsedUS) / 1000.0,
	}
	if rec.Meta.Bias != nil {
		row.Bias = *rec.Meta.Bias
		row.HasBias = true
	}
	if n := rep.TimingCounts["proofs.Run"]; n > 0 {
		row.AvgRunUS = float64(rep.TimingsUS["proofs.Run"]) / float64(n)
	}
	return row, true
}

func buildSeries(rows []SweepRow) (map[string][]point, []string, float64, float64) {
	series := map[string][]point{}
	minUS := math.Inf(1)
	maxUS := math.Inf(-1)
	for _, r := range rows {
		if !r.HasBias {
			continue
		}
		val := []interface{}{
			r.Bias,
			r.AcceptRate,
			r.Runs,
			r.Accepted,
			r.AvgRunUS,
			r.TotalMS,
			r.Stage,
			r.Session,
		}
		series[r.Scenario] = append(series[r.Scenario], point{
			bias:  r.Bias,
			rate:  r.AcceptRate,
			avgUS: r.AvgRunUS,
			val:   val,
		})
		if r.AvgRunUS < minUS {
			minUS = r.AvgRunUS
		}
		if r.AvgRunUS > maxUS {
			maxUS = r.AvgRunUS
		}
	}
	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
		pts := series[name]
		sort.Slice(pts, func(i, j int) bool { return pts[i].bias < pts[j].bias })
	}
	sort.Strings(names)
	if len(names) == 0 {
		minUS, maxUS = 0, 0
	}
	return series, names, minUS, maxUS
}
