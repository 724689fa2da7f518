package report_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/katalvlaran/pcp/internal/config"
	"github.com/katalvlaran/pcp/internal/report"
	"github.com/katalvlaran/pcp/rules"
	"github.com/katalvlaran/pcp/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func solved(t *testing.T) *search.Result {
	t.Helper()
	rs, err := rules.ParseAll([]string{"b/ca", "a/ab", "ca/a", "abc/c"})
	require.NoError(t, err)
	res, err := search.Search(rs)
	require.NoError(t, err)
	return res
}

func stopped(t *testing.T) *search.Result {
	t.Helper()
	rs, err := rules.ParseAll([]string{"b/ca", "a/ab", "ca/a"})
	require.NoError(t, err)
	stop := errors.New("stop")
	res, err := search.Search(rs, search.WithOnRound(func(d, _ int) error {
		if d == 7 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	return res
}

// TestRender_Text prints both strings, then the dominoes, then a summary line.
func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, config.OutputText, solved(t)))
	assert.Equal(t,
		"abcaaabc\nabcaaabc\n[a/ab b/ca ca/a a/ab abc/c]\naccepted at depth 5 (1,364 configurations)\n",
		buf.String())

	buf.Reset()
	require.NoError(t, report.Render(&buf, config.OutputText, stopped(t)))
	assert.Equal(t, "cancelled after 7 rounds (3,279 configurations, depth 7)\n", buf.String())
}

// TestRender_Table checks rows carry the growing strings.
func TestRender_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, config.OutputTable, solved(t)))
	out := buf.String()
	for _, want := range []string{"STEP", "DOMINO", "abc/c", "abcaaabc", "DEPTH 5", "1,364 EXPANDED"} {
		assert.Contains(t, out, want)
	}

	buf.Reset()
	require.NoError(t, report.Render(&buf, config.OutputTable, stopped(t)))
	assert.Contains(t, buf.String(), "cancelled")
	assert.Contains(t, buf.String(), "3,279")
}

// TestRender_YAML decodes back into a Summary.
func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, config.OutputYAML, solved(t)))

	var got report.Summary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "accepted", got.State)
	assert.Equal(t, []int{1, 0, 2, 1, 3}, got.Sequence)
	assert.Equal(t, []string{"a/ab", "b/ca", "ca/a", "a/ab", "abc/c"}, got.Dominoes)
	assert.Equal(t, got.Top, got.Bottom)
}

// TestSummarize_NotAccepted leaves witness fields empty.
func TestSummarize_NotAccepted(t *testing.T) {
	s := report.Summarize(stopped(t))
	assert.Equal(t, "cancelled", s.State)
	assert.Nil(t, s.Sequence)
	assert.Empty(t, s.Top)
}

// TestRender_UnknownFormat rejects anything else.
func TestRender_UnknownFormat(t *testing.T) {
	err := report.Render(&bytes.Buffer{}, "html", solved(t))
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}
