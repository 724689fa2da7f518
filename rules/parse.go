package rules

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Separator splits the two halves of a textual domino.
const Separator = "/"

// commentPrefix starts a comment line in Read input.
const commentPrefix = "#"

// Parse converts a "top/bottom" token into a Rule.
// Surrounding whitespace is trimmed; the halves themselves are taken verbatim.
func Parse(token string) (Rule, error) {
	token = strings.TrimSpace(token)
	top, bottom, ok := strings.Cut(token, Separator)
	if !ok {
		return Rule{}, fmt.Errorf("%w: %q: missing %q", ErrSyntax, token, Separator)
	}
	if strings.Contains(bottom, Separator) {
		return Rule{}, fmt.Errorf("%w: %q: more than one %q", ErrSyntax, token, Separator)
	}
	return NewRule(top, bottom)
}

// ParseAll parses every token in order and returns the resulting set.
func ParseAll(tokens []string) (*RuleSet, error) {
	out := make([]Rule, 0, len(tokens))
	for i, tok := range tokens {
		r, err := Parse(tok)
		if err != nil {
			return nil, fmt.Errorf("rules: rule %d: %w", i, err)
		}
		out = append(out, r)
	}
	return &RuleSet{rules: out}, nil
}

// Read parses one domino per line from r. Blank lines and lines starting
// with "#" are skipped. Several whitespace-separated dominoes may share a line.
func Read(r io.Reader) (*RuleSet, error) {
	var tokens []string
	var lines []int
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		for _, f := range strings.Fields(line) {
			tokens = append(tokens, f)
			lines = append(lines, n)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("rules: read: %w", err)
	}

	out := make([]Rule, 0, len(tokens))
	for i, tok := range tokens {
		rule, err := Parse(tok)
		if err != nil {
			return nil, fmt.Errorf("rules: line %d: %w", lines[i], err)
		}
		out = append(out, rule)
	}
	return &RuleSet{rules: out}, nil
}
