package cli

import (
	"fmt"
	"os"

	"github.com/katalvlaran/pcp/internal/config"
	"github.com/katalvlaran/pcp/rules"
)

// DefaultRules is Sipser's instance, used when no dominoes are supplied.
var DefaultRules = []string{"b/ca", "a/ab", "ca/a", "abc/c"}

// loadRules builds the rule set from the rules file (if any) followed by the
// inline dominoes. With neither, DefaultRules is used.
func loadRules(cfg *config.Config) (*rules.RuleSet, error) {
	if cfg.RulesFile == "" && len(cfg.Rules) == 0 {
		return rules.ParseAll(DefaultRules)
	}

	var all []rules.Rule
	if cfg.RulesFile != "" {
		f, err := os.Open(cfg.RulesFile)
		if err != nil {
			return nil, fmt.Errorf("pcp: open rules file: %w", err)
		}
		defer f.Close()

		rs, err := rules.Read(f)
		if err != nil {
			return nil, fmt.Errorf("pcp: %s: %w", cfg.RulesFile, err)
		}
		all = append(all, rs.Rules()...)
	}
	if len(cfg.Rules) > 0 {
		rs, err := rules.ParseAll(cfg.Rules)
		if err != nil {
			return nil, err
		}
		all = append(all, rs.Rules()...)
	}
	return rules.FromRules(all)
}
