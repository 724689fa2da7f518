package search_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pcp/rules"
	"github.com/katalvlaran/pcp/search"
)

// ExampleSearch solves Sipser's four-domino instance.
// The only solution of minimal length is [a/ab][b/ca][ca/a][a/ab][abc/c].
func ExampleSearch() {
	rs, err := rules.ParseAll([]string{"b/ca", "a/ab", "ca/a", "abc/c"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := search.Search(rs)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.State, res.Sequence())
	fmt.Println(res.Witness.Top())
	fmt.Println(res.Witness.Bottom())
	fmt.Println(res.Pairs())
	// Output:
	// accepted [1 0 2 1 3]
	// abcaaabc
	// abcaaabc
	// [a/ab b/ca ca/a a/ab abc/c]
}

// ExampleSearch_roundLimit shows how a caller bounds an instance without a
// solution: the search itself never gives up, so the OnRound hook does.
func ExampleSearch_roundLimit() {
	rs, _ := rules.ParseAll([]string{"b/ca", "a/ab", "ca/a"})
	errLimit := errors.New("round limit reached")

	res, err := search.Search(rs,
		search.WithOnRound(func(depth, _ int) error {
			if depth == 6 {
				return errLimit
			}
			return nil
		}),
	)
	fmt.Println(errors.Is(err, errLimit))
	fmt.Println(res.State, res.Rounds, res.Expanded)
	// Output:
	// true
	// cancelled 6 1092
}

// ExampleVerify replays a witness sequence.
func ExampleVerify() {
	rs, _ := rules.ParseAll([]string{"b/ca", "a/ab", "ca/a", "abc/c"})
	fmt.Println(search.Verify(rs, []int{1, 0, 2, 1, 3}))
	fmt.Println(errors.Is(search.Verify(rs, []int{1, 0}), search.ErrNotAccepted))
	// Output:
	// <nil>
	// true
}
