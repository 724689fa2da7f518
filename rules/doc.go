// Package rules defines the dominoes of a Post Correspondence instance:
// ordered pairs of non-empty strings that are appended, in lockstep, to a
// top and a bottom string during search.
//
// What
//
//   - Rule: one domino (Top, Bottom), both halves non-empty.
//   - RuleSet: an ordered, immutable, indexable sequence of Rules.
//   - Parse / ParseAll / Read: textual "top/bottom" dominoes.
//
// Why
//
//	Validation happens once, before any search starts, so the search engine
//	can treat every rule as well-formed and every step as a total function.
//
// Determinism
//
//	RuleSet order defines the branch enumeration order of a search. The set
//	of reachable configurations does not depend on it; only the index
//	values inside a reported witness do.
//
// Usage
//
//	rs, err := rules.NewRuleSet(
//	    [2]string{"b", "ca"},
//	    [2]string{"a", "ab"},
//	    [2]string{"ca", "a"},
//	    [2]string{"abc", "c"},
//	)
//	if err != nil {
//	    // errors.Is(err, rules.ErrInvalidRule)
//	}
//
//	// or from text, one domino per line:
//	rs, err = rules.Read(strings.NewReader("b/ca\na/ab\nca/a\nabc/c\n"))
//
// Errors
//
//   - ErrInvalidRule      if a domino has an empty top or bottom.
//   - ErrSyntax           if a textual domino is not of the form "top/bottom".
//   - ErrIndexOutOfRange  if At is called with an index outside [0, Len()).
package rules
