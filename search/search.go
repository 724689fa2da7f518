// Package search runs a parallel breadth-first search for a sequence of
// dominoes whose top and bottom concatenations are equal.
//
// Search advances an explicit frontier one depth at a time, fanning each
// round out across goroutines, and stops at the first round that contains
// an accepting configuration.
package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pcp/rules"
)

// walker encapsulates mutable search state. It is driven by a single
// goroutine; only Expand fans out.
type walker struct {
	rs       *rules.RuleSet
	opts     SearchOptions
	ctx      context.Context
	log      *slog.Logger
	frontier []Configuration
	res      *Result
}

// Search explores rs breadth-first from the empty configuration until a
// configuration with equal top and bottom strings is produced.
//
// There is no depth bound: for an instance without a solution Search runs
// until the context is cancelled or an OnRound hook returns an error. The
// returned Result is always non-nil once options are valid, so callers can
// inspect how far a cancelled search got.
//
// Returns ErrRuleSetNil for a nil set, ErrOptionViolation for bad options,
// the context's error on cancellation, or a wrapped OnRound error.
func Search(rs *rules.RuleSet, opts ...Option) (*Result, error) {
	if rs == nil {
		return nil, ErrRuleSetNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		rs:       rs,
		opts:     o,
		ctx:      o.Ctx,
		log:      o.Logger,
		frontier: []Configuration{{}},
		res: &Result{
			State: Running,
			rules: rs.Rules(),
		},
	}
	w.log.Debug("search started", "rules", rs.Len(), "workers", o.Workers)

	return w.res, w.loop()
}

// loop runs rounds until acceptance, exhaustion, or cancellation.
func (w *walker) loop() error {
	for {
		// cancellation check at the depth barrier
		select {
		case <-w.ctx.Done():
			return w.cancel(w.ctx.Err())
		default:
		}

		if err := w.opts.OnRound(w.res.Depth, len(w.frontier)); err != nil {
			return w.cancel(fmt.Errorf("search: OnRound error at depth %d: %w", w.res.Depth, err))
		}

		done, err := w.round()
		if err != nil {
			return w.cancel(err)
		}
		if done {
			return nil
		}
	}
}

// round expands the current frontier once and screens every child.
// It reports true when the search has reached a terminal state.
func (w *walker) round() (bool, error) {
	depth := w.res.Depth + 1
	next, err := Expand(w.ctx, w.frontier, w.rs, w.opts.Workers)
	if err != nil {
		return false, err
	}
	w.res.Rounds++
	w.res.Expanded += len(next)
	w.opts.OnExpand(depth, len(next))
	w.log.Debug("round expanded", "depth", depth, "produced", len(next))

	if len(next) == 0 {
		w.res.State = Exhausted
		w.frontier = nil
		w.log.Info("search exhausted", "rounds", w.res.Rounds)
		return true, nil
	}

	// the whole round is screened; the lowest slot wins a tie
	for _, c := range next {
		if Accepts(c) {
			w.accept(c)
			return true, nil
		}
	}

	w.frontier = next
	w.res.Depth = depth
	return false, nil
}

// accept records the witness and fires OnAccept.
func (w *walker) accept(c Configuration) {
	w.res.State = Accepted
	w.res.Witness = c
	w.res.Depth = c.Depth()
	w.frontier = nil
	w.opts.OnAccept(c)
	w.log.Info("witness found",
		"depth", c.Depth(),
		"sequence", c.History(),
		"expanded", w.res.Expanded,
	)
}

// cancel marks the result as stopped by the caller and returns err.
func (w *walker) cancel(err error) error {
	w.res.State = Cancelled
	w.frontier = nil
	w.log.Info("search cancelled", "depth", w.res.Depth, "rounds", w.res.Rounds, "err", err)
	return err
}
