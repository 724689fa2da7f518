package search_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/pcp/rules"
	"github.com/katalvlaran/pcp/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sipser is the four-domino instance from Sipser's textbook; it has a solution.
func sipser(t testing.TB) *rules.RuleSet {
	t.Helper()
	rs, err := rules.NewRuleSet(
		[2]string{"b", "ca"},
		[2]string{"a", "ab"},
		[2]string{"ca", "a"},
		[2]string{"abc", "c"},
	)
	require.NoError(t, err)
	return rs
}

// sipserNoSolution drops abc/c; no witness exists at any depth.
func sipserNoSolution(t testing.TB) *rules.RuleSet {
	t.Helper()
	rs, err := rules.NewRuleSet(
		[2]string{"b", "ca"},
		[2]string{"a", "ab"},
		[2]string{"ca", "a"},
	)
	require.NoError(t, err)
	return rs
}

// TestStep_Concatenates checks the appended strings and history.
func TestStep_Concatenates(t *testing.T) {
	rs := sipser(t)

	c1, err := search.Step(search.Configuration{}, rs, 1)
	require.NoError(t, err)
	c2, err := search.Step(c1, rs, 0)
	require.NoError(t, err)

	assert.Equal(t, "ab", c2.Top())
	assert.Equal(t, "abca", c2.Bottom())
	assert.Equal(t, []int{1, 0}, c2.History())
	assert.Equal(t, 2, c2.Depth())
	assert.Equal(t, "ab/abca [1 0]", c2.String())

	// parent untouched
	assert.Equal(t, "a", c1.Top())
	assert.Equal(t, []int{1}, c1.History())
}

// TestStep_Errors covers nil sets and bad indices.
func TestStep_Errors(t *testing.T) {
	_, err := search.Step(search.Configuration{}, nil, 0)
	assert.ErrorIs(t, err, search.ErrRuleSetNil)

	rs := sipser(t)
	_, err = search.Step(search.Configuration{}, rs, 4)
	assert.ErrorIs(t, err, search.ErrRuleIndex)
	_, err = search.Step(search.Configuration{}, rs, -1)
	assert.ErrorIs(t, err, search.ErrRuleIndex)
}

// TestStep_SiblingsDoNotShareHistory guards against append aliasing: two
// children of the same parent must keep their own last index.
func TestStep_SiblingsDoNotShareHistory(t *testing.T) {
	rs := sipser(t)
	parent, _ := search.Replay(rs, []int{1, 0, 2})

	a, err := search.Step(parent, rs, 0)
	require.NoError(t, err)
	b, err := search.Step(parent, rs, 3)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 0, 2, 0}, a.History())
	assert.Equal(t, []int{1, 0, 2, 3}, b.History())
}

// TestStep_ConcurrentSameParent steps one parent from many goroutines.
func TestStep_ConcurrentSameParent(t *testing.T) {
	rs := sipser(t)
	parent, _ := search.Replay(rs, []int{1, 0})

	const n = 200
	children := make([]search.Configuration, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			c, err := search.Step(parent, rs, i%rs.Len())
			require.NoError(t, err)
			children[i] = c
		}(i)
	}
	wg.Wait()

	for i, c := range children {
		assert.Equal(t, []int{1, 0, i % rs.Len()}, c.History())
	}
	assert.Equal(t, []int{1, 0}, parent.History())
}

// TestHistory_IsCopy ensures History cannot be used to mutate a configuration.
func TestHistory_IsCopy(t *testing.T) {
	rs := sipser(t)
	c, _ := search.Replay(rs, []int{1, 0})
	h := c.History()
	h[0] = 3
	assert.Equal(t, []int{1, 0}, c.History())
}

// TestAccepts is exact and case-sensitive.
func TestAccepts(t *testing.T) {
	same, _ := rules.NewRuleSet([2]string{"ab", "ab"}, [2]string{"a", "A"})
	c, _ := search.Step(search.Configuration{}, same, 0)
	assert.True(t, search.Accepts(c))

	c, _ = search.Step(search.Configuration{}, same, 1)
	assert.False(t, search.Accepts(c))
}

// TestVerify covers the happy path and each failure mode.
func TestVerify(t *testing.T) {
	rs := sipser(t)

	// Sipser's textbook solution: [a/ab][b/ca][ca/a][a/ab][abc/c]
	require.NoError(t, search.Verify(rs, []int{1, 0, 2, 1, 3}))

	c, err := search.Replay(rs, []int{1, 0, 2, 1, 3})
	require.NoError(t, err)
	assert.Equal(t, "abcaaabc", c.Top())
	assert.Equal(t, c.Top(), c.Bottom())

	assert.ErrorIs(t, search.Verify(rs, nil), search.ErrEmptyWitness)
	assert.ErrorIs(t, search.Verify(rs, []int{1, 0}), search.ErrNotAccepted)
	assert.ErrorIs(t, search.Verify(rs, []int{1, 9}), search.ErrRuleIndex)
}
