package graphs

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
)

type graphExpr struct {
	N     int         `@Int ":"`
	Edges []*edgeExpr `(@@ ("," @@)*)?`
}

type edgeExpr struct {
	U int `@Int "-"`
	V int `@Int`
}

var parseGraphExpr = participle.MustBuild[graphExpr]()

// Parse builds a Graph from a compact expression such as
// "4: 0-1, 1-2, 1-3, 0-3, 3-0". The vertex count precedes the colon;
// each edge is an ordered dash-separated pair. An empty edge list
// ("3:") is allowed. Endpoint range violations surface through
// NewGraph.
func Parse(s string) (*Graph, error) {
	expr, err := parseGraphExpr.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}
	edges := make([]Edge, 0, len(expr.Edges))
	for _, e := range expr.Edges {
		edges = append(edges, Edge{U: e.U, V: e.V})
	}
	return NewGraph(expr.N, edges)
}
