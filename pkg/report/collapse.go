package report

import "strings"

// Stacks holds counted collapsed stack signatures in first-seen order, so
// unsorted output is stable across runs.
type Stacks struct {
	counts map[string]int
	order  []string
}

// NewStacks returns an empty counter.
func NewStacks() *Stacks {
	return &Stacks{counts: make(map[string]int)}
}

// Add increments the count for sig.
func (s *Stacks) Add(sig string) {
	if _, seen := s.counts[sig]; !seen {
		s.order = append(s.order, sig)
	}
	s.counts[sig]++
}

// Len returns the number of distinct signatures.
func (s *Stacks) Len() int { return len(s.order) }

// Count returns the count recorded for sig.
func (s *Stacks) Count(sig string) int { return s.counts[sig] }

// Signatures returns the distinct signatures in first-seen order.
func (s *Stacks) Signatures() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Each calls fn for every signature in first-seen order.
func (s *Stacks) Each(fn func(sig string, count int)) {
	for _, sig := range s.order {
		fn(sig, s.counts[sig])
	}
}

// Collapser turns surviving stack traces into counted semicolon-joined
// signatures, formatting each frame on the way.
type Collapser struct {
	compact bool
	stacks  *Stacks
}

// NewCollapser builds a collapser honoring cfg's compaction setting.
func NewCollapser(cfg *Config) *Collapser {
	return &Collapser{compact: cfg.Compact, stacks: NewStacks()}
}

// Add collapses one trace and counts its signature.
func (c *Collapser) Add(trace []string) {
	sigs := make([]string, len(trace))
	for i, sig := range trace {
		if c.compact {
			sig = CompactSignature(sig)
		}
		sigs[i] = sig
	}
	c.stacks.Add(strings.Join(sigs, ";"))
}

// Stacks returns the accumulated counts.
func (c *Collapser) Stacks() *Stacks { return c.stacks }
