package rules

import "fmt"

// NewRule validates and returns a single domino.
// Returns ErrInvalidRule if either half is empty.
func NewRule(top, bottom string) (Rule, error) {
	switch {
	case top == "" && bottom == "":
		return Rule{}, fmt.Errorf("%w: empty top and bottom", ErrInvalidRule)
	case top == "":
		return Rule{}, fmt.Errorf("%w: empty top", ErrInvalidRule)
	case bottom == "":
		return Rule{}, fmt.Errorf("%w: empty bottom", ErrInvalidRule)
	}
	return Rule{Top: top, Bottom: bottom}, nil
}

// NewRuleSet builds a RuleSet from (top, bottom) pairs, preserving order.
// The first malformed pair aborts construction; the error names its index.
// Zero pairs yield a valid, empty set.
func NewRuleSet(pairs ...[2]string) (*RuleSet, error) {
	rs := make([]Rule, 0, len(pairs))
	for i, p := range pairs {
		r, err := NewRule(p[0], p[1])
		if err != nil {
			return nil, fmt.Errorf("rules: rule %d: %w", i, err)
		}
		rs = append(rs, r)
	}
	return &RuleSet{rules: rs}, nil
}

// FromRules builds a RuleSet from already constructed Rules, validating
// each one again since Rule literals bypass NewRule.
func FromRules(in []Rule) (*RuleSet, error) {
	pairs := make([][2]string, len(in))
	for i, r := range in {
		pairs[i] = [2]string{r.Top, r.Bottom}
	}
	return NewRuleSet(pairs...)
}
