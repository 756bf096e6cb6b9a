package streak

import (
	"fmt"
	"sort"
	"strings"
)

// Rank orders records by descending current streak, ties broken by
// descending longest streak. The sort is stable so exact duplicates
// keep their input order.
func Rank(records []Record) []Record {
	ranked := make([]Record, len(records))
	copy(ranked, records)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Current != ranked[j].Current {
			return ranked[i].Current > ranked[j].Current
		}
		return ranked[i].Longest > ranked[j].Longest
	})

	return ranked
}

// Render formats ranked records as one 1-indexed line per entry, each
// line ending in a newline, the last included.
func Render(ranked []Record) string {
	var b strings.Builder
	for i, r := range ranked {
		fmt.Fprintf(&b, "#%d: %s's commit streak: %d (longest: %d)\n", i+1, r.User, r.Current, r.Longest)
	}
	return b.String()
}
