// Package sweep evaluates one term against many binding tables in parallel.
// Each worker evaluates its own clone of the tree, so the synchronous core
// needs no locking.
package sweep

import (
	"runtime"
	"sync"

	"github.com/wildfunctions/symbolic_terms/pkg/term"
)

// Config holds parameters for a sweep.
type Config struct {
	Workers int
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Workers: runtime.NumCPU(),
	}
}

// Result is the outcome of evaluating the term against one binding table.
type Result struct {
	Value float64
	Err   error
}

// Run evaluates t once per binding table and returns the results in the
// same order as tables. A failure for one table does not affect the others.
func Run(cfg Config, t term.Term, tables []term.Bindings) []Result {
	n := len(tables)
	results := make([]Result, n)

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	jobs := make(chan int, n)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tree := t.Clone()
			for i := range jobs {
				v, err := tree.Evaluate(tables[i])
				results[i] = Result{Value: v, Err: err}
			}
		}()
	}

	for i := range tables {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
