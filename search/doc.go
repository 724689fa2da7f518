// Package search provides a parallel breadth-first search over the choice
// tree of a Post Correspondence instance, returning the first sequence of
// dominoes whose top and bottom concatenations are equal.
//
// What
//
//   - Start from the empty configuration (both strings empty, no history).
//   - Each round plays every rule on every configuration of the frontier
//     (Expand), screens all children (Accepts), and either stops or makes
//     the children the next frontier.
//   - Returns a Result containing:
//   - State: Accepted, Exhausted (empty rule set) or Cancelled
//   - Witness: the accepted Configuration and its rule-index history
//   - Depth, Rounds, Expanded: progress counters
//   - Supports functional hooks at three stages:
//   - OnRound  (before a frontier is expanded; may stop the search)
//   - OnExpand (after a round has been produced)
//   - OnAccept (once, with the witness)
//
// Why
//
//	The correspondence problem is only semi-decidable. Breadth-first order
//	guarantees that a solution, if one exists, is found at the smallest
//	depth where any solution exists; without one the search never ends on
//	its own, and stopping it is the caller's job.
//
// Concurrency
//
//	Within a round every (configuration, rule) unit is independent: the
//	rule set is read-only and configurations are immutable, so workers share
//	nothing writable. Rounds are separated by a barrier; depth d+1 is never
//	produced before depth d has been fully screened.
//
// Determinism
//
//	Expand lays out children frontier-major, rule-minor regardless of the
//	worker count, and the driver reports the first accepting child in that
//	layout. For a fixed rule order the witness is therefore reproducible.
//
// Complexity (R = |rules|, d = witness depth)
//
//   - Time:   O(R^d · L) where L is the accumulated string length
//   - Memory: O(R^d · L) for the last frontier (no deduplication)
//
// Usage
//
//	rs, _ := rules.NewRuleSet(
//	    [2]string{"b", "ca"}, [2]string{"a", "ab"},
//	    [2]string{"ca", "a"}, [2]string{"abc", "c"},
//	)
//	res, err := search.Search(rs,
//	    search.WithContext(ctx),
//	    search.WithWorkers(8),
//	    search.WithOnRound(func(depth, frontier int) error { /* ... */ return nil }),
//	)
//	if err != nil {
//	    // ErrRuleSetNil, ErrOptionViolation, ctx.Err(), or a wrapped hook error
//	}
//	if res.Accepted() {
//	    fmt.Println(res.Sequence(), res.Witness.Top())
//	}
//
// Errors
//
//   - ErrRuleSetNil       if the rule set pointer is nil.
//   - ErrOptionViolation  if an invalid Option is supplied (e.g. negative Workers).
//   - ErrRuleIndex        if Step or Replay is given an index outside the set.
//   - ErrEmptyWitness     if Verify is given an empty sequence.
//   - ErrNotAccepted      if Verify replays to different strings.
//   - Wrapped user-supplied hook errors from OnRound.
package search
