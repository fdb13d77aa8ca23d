package entmin

import (
	"fmt"
	"math/rand"
	"sync"

	"golang.org/x/sync/errgroup"
)

// OptimizeBest runs one independent optimization per seed, concurrently, and
// returns the result with the highest converged cost. The immutable operator
// context (beamsplitter unitary, quadratures, recentered fixed input) is
// built once and shared read-only across runs; every run gets its own
// variational state, optimizer state and cost trace. The Initial and Rand
// fields of opts are ignored in favor of the per-seed random guesses.
func OptimizeBest(opts Opts, seeds []int64) (Result, error) {
	if len(seeds) == 0 {
		return Result{}, fmt.Errorf("must provide at least one seed")
	}
	base := opts
	base.Initial = nil
	base.Rand = rand.New(rand.NewSource(seeds[0]))
	if err := base.validate(); err != nil {
		return Result{}, err
	}
	base = base.withDefaults()
	cost := base.buildCostFn()

	var (
		mu   sync.Mutex
		best Result
		ok   bool
	)
	var g errgroup.Group
	for _, seed := range seeds {
		runOpts := base
		runOpts.Rand = rand.New(rand.NewSource(seed))
		g.Go(func() error {
			res := runOpts.optimize(cost)
			mu.Lock()
			if !ok || res.Cost > best.Cost {
				best, ok = res, true
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return best, nil
}
