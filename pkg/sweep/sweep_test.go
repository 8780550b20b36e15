package sweep

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/symbolic_terms/pkg/term"
)

func TestRunPreservesOrder(t *testing.T) {
	// x + 100 across a ramp of x values.
	tree := term.Add(term.Symbol('x'), term.Constant(100))

	tables := make([]term.Bindings, 50)
	for i := range tables {
		tables[i] = term.Bindings{'x': float64(i)}
	}

	results := Run(DefaultConfig(), tree, tables)
	require.Len(t, results, len(tables))
	for i, r := range results {
		require.NoError(t, r.Err)
		assert.InDelta(t, float64(100+i), r.Value, 1e-9)
	}
}

func TestRunIsolatesFailures(t *testing.T) {
	tree := term.Symbol('x')
	tables := []term.Bindings{
		{'x': 1},
		{'y': 1}, // x unbound
		{'x': 3},
	}

	results := Run(Config{Workers: 2}, tree, tables)
	require.Len(t, results, 3)

	require.NoError(t, results[0].Err)
	assert.InDelta(t, 1, results[0].Value, 1e-9)

	var unbound *term.UnboundVariableError
	require.True(t, errors.As(results[1].Err, &unbound))

	require.NoError(t, results[2].Err)
	assert.InDelta(t, 3, results[2].Value, 1e-9)
}

func TestRunWithNoTables(t *testing.T) {
	results := Run(DefaultConfig(), term.Constant(1), nil)
	assert.Empty(t, results)
}

func TestRunSingleWorkerFallback(t *testing.T) {
	tree := term.Product(term.Symbol('x'), term.Constant(2))
	tables := []term.Bindings{{'x': 4}, {'x': 5}}

	results := Run(Config{Workers: 0}, tree, tables)
	require.Len(t, results, 2)
	assert.InDelta(t, 8, results[0].Value, 1e-9)
	assert.InDelta(t, 10, results[1].Value, 1e-9)
}
