package report

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrouperDropsGroupAtThreshold(t *testing.T) {
	cfg := mustConfig(t, Options{MinimumSamples: 3, MinimumSamplesFrameDepth: 2})
	g := NewGrouper(cfg)
	for i := 0; i < 3; i++ {
		g.Add([]string{"A", "B", fmt.Sprintf("tail%d", i)})
	}
	require.Empty(t, g.Significant())
}

func TestGrouperKeepsGroupAboveThreshold(t *testing.T) {
	cfg := mustConfig(t, Options{MinimumSamples: 3, MinimumSamplesFrameDepth: 2})
	g := NewGrouper(cfg)
	for i := 0; i < 4; i++ {
		g.Add([]string{"A", "B", fmt.Sprintf("tail%d", i)})
	}
	// Every member survives, not just the excess.
	require.Len(t, g.Significant(), 4)
}

func TestGrouperKeySpansConfiguredDepthOnly(t *testing.T) {
	cfg := mustConfig(t, Options{MinimumSamples: 1, MinimumSamplesFrameDepth: 2})
	g := NewGrouper(cfg)
	// Same first two frames, wildly different tails: one group.
	g.Add([]string{"A", "B", "C", "D"})
	g.Add([]string{"A", "B", "X"})
	require.Len(t, g.Significant(), 2)

	// Differing second frame: separate singleton groups, both insignificant.
	g2 := NewGrouper(cfg)
	g2.Add([]string{"A", "B", "C"})
	g2.Add([]string{"A", "Z", "C"})
	require.Empty(t, g2.Significant())
}

func TestGrouperShortTracesUseFullTraceAsKey(t *testing.T) {
	cfg := mustConfig(t, Options{MinimumSamples: 1, MinimumSamplesFrameDepth: 5})
	g := NewGrouper(cfg)
	g.Add([]string{"A"})
	g.Add([]string{"A"})
	require.Len(t, g.Significant(), 2)
}

func TestGrouperEmitsGroupsInFirstSeenOrder(t *testing.T) {
	cfg := mustConfig(t, Options{MinimumSamples: 0, MinimumSamplesFrameDepth: 1})
	g := NewGrouper(cfg)
	g.Add([]string{"B", "1"})
	g.Add([]string{"A", "1"})
	g.Add([]string{"B", "2"})
	got := g.Significant()
	require.Equal(t, [][]string{{"B", "1"}, {"B", "2"}, {"A", "1"}}, got)
}
