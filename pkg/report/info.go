package report

import "github.com/feng-tao/jfr-report-tool/pkg/jfr"

// Accumulator collects the non-sampling side of a window pass: the latest
// captured event per informational type path, the number of buffer-loss
// records, and an advisory count of truncated stack traces.
type Accumulator struct {
	Info       map[string]jfr.Event
	BufferLost int
	Truncated  int
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{Info: make(map[string]jfr.Event)}
}

// Observe routes ev, reporting whether it was consumed as informational.
// Metadata paths overwrite (latest wins); the buffer-loss path only counts.
// Sampling events are left for the filter pipeline.
func (a *Accumulator) Observe(ev jfr.Event) bool {
	if !jfr.IsInfo(ev.TypePath) {
		return false
	}
	if ev.TypePath == jfr.TypeDataLoss {
		a.BufferLost++
		return true
	}
	a.Info[ev.TypePath] = ev
	return true
}

// Merge folds other into a, for cumulative reporting across windows.
// Metadata from later windows wins.
func (a *Accumulator) Merge(other *Accumulator) {
	for path, ev := range other.Info {
		a.Info[path] = ev
	}
	a.BufferLost += other.BufferLost
	a.Truncated += other.Truncated
}
