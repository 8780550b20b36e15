package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/wildfunctions/symbolic_terms/pkg/term"
	"github.com/wildfunctions/symbolic_terms/pkg/variable"
)

type namedTerm struct {
	name string
	t    term.Term
}

// showcase is a fixed set of example trees built programmatically; the
// library has no expression parser.
func showcase() []namedTerm {
	x := term.Symbol('x')
	y := term.Symbol('y')
	return []namedTerm{
		{"polynomial", term.Add(
			term.Add(term.Product(x, x), term.Product(term.Constant(3), x)),
			term.Constant(1),
		)},
		{"wave", term.Add(term.Sine(x), term.Cosine(y))},
		{"ratio", term.Quotient(term.Constant(1), term.Difference(x, y))},
		{"inverse", term.ArcTangent(term.Tangent(x))},
		{"constant", term.Product(term.Constant(2), term.Constant(math.Pi))},
	}
}

type result struct {
	Name  string  `json:"name"`
	Expr  string  `json:"expr"`
	LaTeX string  `json:"latex,omitempty"`
	Value float64 `json:"value,omitempty"`
	Error string  `json:"error,omitempty"`
}

func main() {
	var (
		bindSpec = flag.String("bind", "x=28,y=3", "comma-separated variable bindings, e.g. x=1.5,y=2")
		format   = flag.String("format", "text", "output format (text, json)")
		latex    = flag.Bool("latex", false, "include LaTeX renderings")
		verbose  = flag.Bool("verbose", false, "verbose output per term")
	)
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	vals, err := parseBindings(*bindSpec)
	if err != nil {
		log.WithError(err).Fatal("invalid -bind flag")
	}

	var results []result
	for _, nt := range showcase() {
		log.WithFields(log.Fields{
			"name":  nt.name,
			"nodes": nt.t.NodeCount(),
			"depth": nt.t.Depth(),
		}).Debug("evaluating")

		r := result{Name: nt.name, Expr: nt.t.String()}
		if *latex {
			r.LaTeX = nt.t.LaTeX()
		}
		v, err := nt.t.Evaluate(vals)
		if err != nil {
			r.Error = err.Error()
		} else {
			r.Value = v
		}
		results = append(results, r)
	}

	switch *format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			log.WithError(err).Fatal("writing JSON")
		}
	default:
		writeText(os.Stdout, results)
	}
}

func writeText(w io.Writer, results []result) {
	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(w, "%-12s %-42s error: %s\n", r.Name, r.Expr, r.Error)
			continue
		}
		fmt.Fprintf(w, "%-12s %-42s = %g\n", r.Name, r.Expr, r.Value)
		if r.LaTeX != "" {
			fmt.Fprintf(w, "%-12s %s\n", "", r.LaTeX)
		}
	}
}

// parseBindings turns "x=28,y=3" into a binding table. Names must be single
// characters; values must parse as floats.
func parseBindings(spec string) (term.Bindings, error) {
	vals := make(term.Bindings)
	if strings.TrimSpace(spec) == "" {
		return vals, nil
	}
	for _, pair := range strings.Split(spec, ",") {
		name, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return nil, fmt.Errorf("binding %q is not of the form name=value", pair)
		}
		v, err := variable.Parse(name)
		if err != nil {
			return nil, err
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", pair, err)
		}
		vals[v.Symbol] = f
	}
	return vals, nil
}
