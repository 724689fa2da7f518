// Package cli provides the pcp command-line interface: it loads a rule set,
// runs the search, and renders the result.
package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// Exit codes returned by Execute.
const (
	ExitAccepted  = 0
	ExitError     = 1
	ExitExhausted = 2
)

var (
	// ErrExhausted is returned by solve when the rule set admits no step at all.
	ErrExhausted = errors.New("pcp: rule set exhausted without a witness")

	// ErrRoundLimit is returned by solve when --max-rounds stops the search.
	ErrRoundLimit = errors.New("pcp: round limit reached")
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "pcp",
		Short: "Search for Post Correspondence Problem solutions",
		Long: `pcp runs a parallel breadth-first search over sequences of dominoes
until the concatenated tops equal the concatenated bottoms.

The problem is only semi-decidable: if a solution exists pcp finds one of
minimal length, otherwise it runs until --timeout, --max-rounds or an
interrupt stops it.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./pcp.yaml)")

	root.AddCommand(newSolveCommand(&cfgFile))
	root.AddCommand(newVerifyCommand(&cfgFile))
	root.AddCommand(newVersionCommand())
	return root
}

// Execute runs the CLI with args and maps the outcome to an exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, ErrExhausted) {
		slog.New(slog.NewTextHandler(stderr, nil)).Error("pcp failed", "err", err)
	}
	return ExitCode(err)
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitAccepted
	case errors.Is(err, ErrExhausted):
		return ExitExhausted
	default:
		return ExitError
	}
}

// newLogger builds the stderr logger; verbose enables per-round records.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
