package search

import (
	"context"
	"runtime"

	"github.com/katalvlaran/pcp/rules"
	"golang.org/x/sync/errgroup"
)

// batchesPerWorker splits a round into more batches than workers so that
// a slow goroutine does not hold up the barrier.
const batchesPerWorker = 4

// minBatch is the smallest number of units handed to one goroutine.
const minBatch = 64

// Expand returns every child of every configuration in frontier: one per
// (configuration, rule) pair, len(frontier)*rs.Len() in total. Nothing is
// pruned or deduplicated.
//
// Units are dispatched in contiguous batches to at most workers goroutines
// (workers <= 0 means runtime.GOMAXPROCS(0)). Each unit writes its own
// output slot, so the result is laid out frontier-major, rule-minor no
// matter how many workers ran.
//
// If ctx is cancelled mid-round, batches already running finish, nothing
// new is dispatched, and the partial round is discarded in favor of
// ctx.Err().
func Expand(ctx context.Context, frontier []Configuration, rs *rules.RuleSet, workers int) ([]Configuration, error) {
	if rs == nil {
		return nil, ErrRuleSetNil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rl := rs.Rules()
	n := len(rl)
	units := len(frontier) * n
	out := make([]Configuration, units)
	if units == 0 {
		return out, nil
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	batch := batchSize(units, workers)

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < units; lo += batch {
		if ctx.Err() != nil {
			break
		}
		hi := min(lo+batch, units)
		g.Go(func() error {
			for k := lo; k < hi; k++ {
				j := k % n
				out[k] = step(frontier[k/n], rl[j], j)
			}
			return nil
		})
	}
	_ = g.Wait() // units never fail

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// batchSize picks how many consecutive units one goroutine handles.
func batchSize(units, workers int) int {
	b := units / (workers * batchesPerWorker)
	if b < minBatch {
		b = minBatch
	}
	return b
}
