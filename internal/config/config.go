// Package config loads pcp CLI settings from defaults, an optional YAML
// file, PCP_ environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// FileName is the config file looked up in the working directory when no
// explicit path is given.
const FileName = "pcp.yaml"

// EnvPrefix prefixes every environment override, e.g. PCP_WORKERS.
const EnvPrefix = "PCP_"

// Output formats understood by the report package.
const (
	OutputText  = "text"
	OutputTable = "table"
	OutputYAML  = "yaml"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds every setting of a solve or verify run.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
type Config struct {
	Rules       []string      `koanf:"rules"`        // inline "top/bottom" dominoes
	RulesFile   string        `koanf:"rules_file"`   // one domino per line
	Workers     int           `koanf:"workers"`      // 0 = GOMAXPROCS
	Timeout     time.Duration `koanf:"timeout"`      // 0 = no timeout
	MaxRounds   int           `koanf:"max_rounds"`   // 0 = unbounded
	Output      string        `koanf:"output"`       // text | table | yaml
	MetricsAddr string        `koanf:"metrics_addr"` // empty disables /metrics
	Verbose     bool          `koanf:"verbose"`
}

// Defaults returns the baseline configuration.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"rules":        []string{},
		"rules_file":   "",
		"workers":      0,
		"timeout":      "0s",
		"max_rounds":   0,
		"output":       OutputText,
		"metrics_addr": "",
		"verbose":      false,
	}
}

// Load merges defaults, cfgFile (or ./pcp.yaml if present), environment
// variables and the explicitly set flags, then validates the result.
// flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. defaults
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	// 2. config file
	path := findConfigFile(cfgFile)
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	// 3. environment: PCP_MAX_ROUNDS -> max_rounds, PCP_RULES is whitespace separated
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		if key == "rules" {
			return key, strings.Fields(value)
		}
		return key, value
	}), nil); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	// 4. flags that were explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("config: load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects negative limits and unknown output formats.
func (c *Config) Validate() error {
	switch {
	case c.Workers < 0:
		return fmt.Errorf("%w: workers cannot be negative (%d)", ErrInvalidConfig, c.Workers)
	case c.MaxRounds < 0:
		return fmt.Errorf("%w: max_rounds cannot be negative (%d)", ErrInvalidConfig, c.MaxRounds)
	case c.Timeout < 0:
		return fmt.Errorf("%w: timeout cannot be negative (%s)", ErrInvalidConfig, c.Timeout)
	}
	switch c.Output {
	case OutputText, OutputTable, OutputYAML:
	default:
		return fmt.Errorf("%w: unknown output %q (want %s, %s or %s)",
			ErrInvalidConfig, c.Output, OutputText, OutputTable, OutputYAML)
	}
	return nil
}

// findConfigFile returns explicit if set, else ./pcp.yaml when it exists.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}
	return ""
}
