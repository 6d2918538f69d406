package report

import (
	"fmt"
	"io"
	"sort"
)

// WriteStacks serializes stacks as "<signature> <count>" lines and returns
// the number of lines written. With sorted set, lines are emitted in strictly
// non-increasing count order (ties keep first-seen order); otherwise the
// counter's first-seen order is used. Callers use the returned count to
// discard empty artifacts.
func WriteStacks(w io.Writer, stacks *Stacks, sorted bool) (int, error) {
	sigs := stacks.Signatures()
	if sorted {
		sort.SliceStable(sigs, func(i, j int) bool {
			return stacks.Count(sigs[i]) > stacks.Count(sigs[j])
		})
	}
	lines := 0
	for _, sig := range sigs {
		if _, err := fmt.Fprintf(w, "%s %d\n", sig, stacks.Count(sig)); err != nil {
			return lines, err
		}
		lines++
	}
	return lines, nil
}
