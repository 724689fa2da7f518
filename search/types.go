// Package search provides tunable options, result types and error
// definitions for the breadth-first correspondence search.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/pcp/rules"
)

// Sentinel errors for search execution and witness verification.
var (
	// ErrRuleSetNil is returned if a nil *rules.RuleSet is passed.
	ErrRuleSetNil = errors.New("search: rule set is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrRuleIndex is returned when a step references a rule outside the set.
	ErrRuleIndex = errors.New("search: rule index out of range")

	// ErrEmptyWitness is returned when verifying a zero-length sequence.
	ErrEmptyWitness = errors.New("search: witness sequence is empty")

	// ErrNotAccepted is returned when a replayed sequence leaves the top
	// and bottom strings different.
	ErrNotAccepted = errors.New("search: sequence does not produce a match")
)

// State is the outcome of a search run.
type State int

const (
	// Running is the state of a search that has not stopped yet.
	Running State = iota
	// Accepted means a configuration with equal strings was found.
	Accepted
	// Exhausted means no successors could be produced (empty rule set).
	Exhausted
	// Cancelled means the caller stopped the search via context or hook.
	Cancelled
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Accepted:
		return "accepted"
	case Exhausted:
		return "exhausted"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Configuration is one point of the search tree: the accumulated top and
// bottom strings and the rule indices chosen to reach them.
// A Configuration is never modified after Step creates it.
type Configuration struct {
	top     string
	bottom  string
	history []int
}

// Top returns the accumulated upper string.
func (c Configuration) Top() string { return c.top }

// Bottom returns the accumulated lower string.
func (c Configuration) Bottom() string { return c.bottom }

// Depth returns the number of steps taken from the empty configuration.
func (c Configuration) Depth() int { return len(c.history) }

// History returns a copy of the chosen rule indices, in order.
func (c Configuration) History() []int {
	out := make([]int, len(c.history))
	copy(out, c.history)
	return out
}

// String renders the configuration as "top/bottom [i j k]".
func (c Configuration) String() string {
	parts := make([]string, len(c.history))
	for i, h := range c.history {
		parts[i] = fmt.Sprint(h)
	}
	return c.top + rules.Separator + c.bottom + " [" + strings.Join(parts, " ") + "]"
}

// Option configures Search behavior via functional arguments.
// If an Option is invalid (e.g. negative worker count), it is recorded
// internally and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*SearchOptions)

// SearchOptions holds parameters and callbacks to customize a search.
type SearchOptions struct {
	// Ctx allows cancellation and deadlines. It is checked between rounds
	// and between dispatched units of work.
	Ctx context.Context

	// Workers caps the goroutines used to expand one round.
	// Zero means runtime.GOMAXPROCS(0).
	Workers int

	// Logger receives round and acceptance records. Defaults to a
	// handler that discards everything.
	Logger *slog.Logger

	// OnRound is called before the frontier at depth is expanded.
	// Returning an error stops the search and propagates that error.
	OnRound func(depth, frontier int) error

	// OnExpand is called after the frontier for depth has been produced,
	// before it is screened for acceptance.
	OnExpand func(depth, produced int)

	// OnAccept is called once with the witness configuration.
	OnAccept func(c Configuration)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a SearchOptions with sane defaults:
//   - Context.Background()
//   - Workers == 0 (GOMAXPROCS)
//   - a discarding logger
//   - no-op hooks (OnRound, OnExpand, OnAccept)
func DefaultOptions() SearchOptions {
	return SearchOptions{
		Ctx:      context.Background(),
		Workers:  0,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnRound:  func(int, int) error { return nil },
		OnExpand: func(int, int) {},
		OnAccept: func(Configuration) {},
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *SearchOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the per-round parallelism.
//
//	n > 0: at most n goroutines per round
//	n == 0: runtime.GOMAXPROCS(0)
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *SearchOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger routes search logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *SearchOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnRound registers a callback run before each round; returning an
// error from it stops the search.
func WithOnRound(fn func(depth, frontier int) error) Option {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

// WithOnExpand registers a callback run after each round is produced.
func WithOnExpand(fn func(depth, produced int)) Option {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnAccept registers a callback run when a witness is found.
func WithOnAccept(fn func(c Configuration)) Option {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnAccept = fn
		}
	}
}

// Result holds the outcome of a search:
//   - State: Accepted, Exhausted or Cancelled.
//   - Witness: the accepted configuration (zero value otherwise).
//   - Depth: depth of the deepest completed frontier (the witness depth on acceptance).
//   - Rounds: number of rounds expanded.
//   - Expanded: total configurations produced across all rounds.
type Result struct {
	State    State
	Witness  Configuration
	Depth    int
	Rounds   int
	Expanded int

	rules []rules.Rule
}

// Accepted reports whether a witness was found.
func (r *Result) Accepted() bool {
	return r != nil && r.State == Accepted
}

// Sequence returns the witness rule indices, or nil if none was found.
func (r *Result) Sequence() []int {
	if !r.Accepted() {
		return nil
	}
	return r.Witness.History()
}

// Pairs returns the dominoes of the witness in the order they were played.
func (r *Result) Pairs() []rules.Rule {
	seq := r.Sequence()
	if seq == nil {
		return nil
	}
	out := make([]rules.Rule, len(seq))
	for i, idx := range seq {
		out[i] = r.rules[idx]
	}
	return out
}
