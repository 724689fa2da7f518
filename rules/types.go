// Package rules defines the Rule and RuleSet types and their sentinel errors.
package rules

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for rule construction and lookup.
var (
	// ErrInvalidRule is returned when a domino has an empty top or bottom.
	ErrInvalidRule = errors.New("rules: invalid rule")

	// ErrSyntax is returned when a textual domino cannot be parsed.
	ErrSyntax = errors.New("rules: syntax error")

	// ErrIndexOutOfRange is returned by At for an index outside the set.
	ErrIndexOutOfRange = errors.New("rules: index out of range")
)

// Rule is a single domino. Top is appended to the upper string and Bottom
// to the lower string whenever the rule is chosen.
type Rule struct {
	Top    string
	Bottom string
}

// String renders the rule as "top/bottom", the same form Parse accepts.
func (r Rule) String() string {
	return r.Top + Separator + r.Bottom
}

// RuleSet is an ordered, immutable collection of validated Rules.
// The zero value is an empty set and is safe to use.
type RuleSet struct {
	rules []Rule
}

// Len returns the number of rules in the set. A nil set has length 0.
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.rules)
}

// At returns the rule at index i.
func (rs *RuleSet) At(i int) (Rule, error) {
	if i < 0 || i >= rs.Len() {
		return Rule{}, fmt.Errorf("%w: %d (have %d rules)", ErrIndexOutOfRange, i, rs.Len())
	}
	return rs.rules[i], nil
}

// Rules returns a copy of the rules in order. Mutating the result does not
// affect the set.
func (rs *RuleSet) Rules() []Rule {
	out := make([]Rule, rs.Len())
	if rs != nil {
		copy(out, rs.rules)
	}
	return out
}

// String renders the set as "[top/bottom top/bottom ...]".
func (rs *RuleSet) String() string {
	parts := make([]string, 0, rs.Len())
	for _, r := range rs.Rules() {
		parts = append(parts, r.String())
	}
	return "[" + strings.Join(parts, " ") + "]"
}
