package report

import "strings"

const rootGroupSeparator = ";"

// Grouper buckets filtered stack traces by their root-group key (the first
// MinimumSamplesFrameDepth frames) so statistically insignificant call paths
// can be dropped before collapsing.
type Grouper struct {
	depth  int
	min    int
	groups map[string][][]string
	order  []string
}

// NewGrouper builds a grouper using cfg's depth and significance threshold.
func NewGrouper(cfg *Config) *Grouper {
	return &Grouper{
		depth:  cfg.MinimumSamplesFrameDepth,
		min:    cfg.MinimumSamples,
		groups: make(map[string][][]string),
	}
}

// Add files trace under its root group.
func (g *Grouper) Add(trace []string) {
	key := rootKey(trace, g.depth)
	if _, seen := g.groups[key]; !seen {
		g.order = append(g.order, key)
	}
	g.groups[key] = append(g.groups[key], trace)
}

// Significant returns every member of each group whose membership strictly
// exceeds the minimum sample count; groups at or below it are dropped
// entirely. Groups are emitted in first-seen order.
func (g *Grouper) Significant() [][]string {
	var out [][]string
	for _, key := range g.order {
		members := g.groups[key]
		if len(members) > g.min {
			out = append(out, members...)
		}
	}
	return out
}

func rootKey(trace []string, depth int) string {
	if depth > 0 && len(trace) > depth {
		trace = trace[:depth]
	}
	return strings.Join(trace, rootGroupSeparator)
}
