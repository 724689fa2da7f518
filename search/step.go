package search

import (
	"fmt"

	"github.com/katalvlaran/pcp/rules"
)

// Step returns the child of parent obtained by playing rule idx of rs.
// The parent is left untouched, so Step is safe to call concurrently on
// the same parent. Returns ErrRuleSetNil or ErrRuleIndex on bad input.
func Step(parent Configuration, rs *rules.RuleSet, idx int) (Configuration, error) {
	if rs == nil {
		return Configuration{}, ErrRuleSetNil
	}
	r, err := rs.At(idx)
	if err != nil {
		return Configuration{}, fmt.Errorf("%w: %d: %v", ErrRuleIndex, idx, err)
	}
	return step(parent, r, idx), nil
}

// step is Step without validation. The history always gets a fresh
// backing array; siblings must never share one.
func step(parent Configuration, r rules.Rule, idx int) Configuration {
	history := make([]int, len(parent.history)+1)
	copy(history, parent.history)
	history[len(parent.history)] = idx
	return Configuration{
		top:     parent.top + r.Top,
		bottom:  parent.bottom + r.Bottom,
		history: history,
	}
}

// Accepts reports whether c's top and bottom strings are exactly equal.
// The empty configuration is never produced by a round, so it is never
// screened.
func Accepts(c Configuration) bool {
	return c.top == c.bottom
}

// Replay folds Step over seq starting from the empty configuration.
func Replay(rs *rules.RuleSet, seq []int) (Configuration, error) {
	var c Configuration
	for i, idx := range seq {
		next, err := Step(c, rs, idx)
		if err != nil {
			return Configuration{}, fmt.Errorf("search: replay step %d: %w", i, err)
		}
		c = next
	}
	return c, nil
}

// Verify replays seq and checks that it ends in an accepting configuration.
// Returns ErrEmptyWitness, ErrRuleIndex or ErrNotAccepted.
func Verify(rs *rules.RuleSet, seq []int) error {
	if len(seq) == 0 {
		return ErrEmptyWitness
	}
	c, err := Replay(rs, seq)
	if err != nil {
		return err
	}
	if !Accepts(c) {
		return fmt.Errorf("%w: top %q, bottom %q", ErrNotAccepted, c.top, c.bottom)
	}
	return nil
}
