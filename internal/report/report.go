// Package report renders search results for humans and scripts.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/pcp/internal/config"
	"github.com/katalvlaran/pcp/search"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for an output format Render does not know.
var ErrUnknownFormat = errors.New("report: unknown output format")

// Summary is the machine-readable form of a result, used for YAML output.
type Summary struct {
	State    string   `yaml:"state"`
	Depth    int      `yaml:"depth"`
	Rounds   int      `yaml:"rounds"`
	Expanded int      `yaml:"expanded"`
	Sequence []int    `yaml:"sequence,omitempty"`
	Dominoes []string `yaml:"dominoes,omitempty"`
	Top      string   `yaml:"top,omitempty"`
	Bottom   string   `yaml:"bottom,omitempty"`
}

// Summarize flattens res into a Summary.
func Summarize(res *search.Result) Summary {
	s := Summary{
		State:    res.State.String(),
		Depth:    res.Depth,
		Rounds:   res.Rounds,
		Expanded: res.Expanded,
	}
	if res.Accepted() {
		s.Sequence = res.Sequence()
		for _, r := range res.Pairs() {
			s.Dominoes = append(s.Dominoes, r.String())
		}
		s.Top = res.Witness.Top()
		s.Bottom = res.Witness.Bottom()
	}
	return s
}

// Render writes res to w in the given format (see config.Output*).
func Render(w io.Writer, format string, res *search.Result) error {
	switch format {
	case config.OutputText, "":
		return renderText(w, res)
	case config.OutputTable:
		return renderTable(w, res)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(Summarize(res)); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// renderText prints both strings and the played dominoes, one block per line.
func renderText(w io.Writer, res *search.Result) error {
	if !res.Accepted() {
		_, err := fmt.Fprintf(w, "%s after %s rounds (%s configurations, depth %d)\n",
			res.State, humanize.Comma(int64(res.Rounds)), humanize.Comma(int64(res.Expanded)), res.Depth)
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n%v\n%s at depth %d (%s configurations)\n",
		res.Witness.Top(),
		res.Witness.Bottom(),
		res.Pairs(),
		res.State, res.Depth, humanize.Comma(int64(res.Expanded)),
	)
	return err
}

// renderTable prints one row per played domino with the growing strings.
func renderTable(w io.Writer, res *search.Result) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	if !res.Accepted() {
		t.AppendHeader(table.Row{"State", "Rounds", "Depth", "Configurations"})
		t.AppendRow(table.Row{res.State.String(), res.Rounds, res.Depth, humanize.Comma(int64(res.Expanded))})
		t.Render()
		return nil
	}

	t.AppendHeader(table.Row{"Step", "Rule", "Domino", "Top", "Bottom"})
	var top, bottom string
	seq := res.Sequence()
	for i, r := range res.Pairs() {
		top += r.Top
		bottom += r.Bottom
		t.AppendRow(table.Row{i + 1, strconv.Itoa(seq[i]), r.String(), top, bottom})
	}
	t.AppendFooter(table.Row{"", "", res.State.String(), "depth " + strconv.Itoa(res.Depth), humanize.Comma(int64(res.Expanded)) + " expanded"})
	t.Render()
	return nil
}
