package report

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/feng-tao/jfr-report-tool/pkg/jfr"
)

// Runner drives one aggregation pass per window over a recording. Windows
// read disjoint time ranges and own their counters, so they run concurrently.
type Runner struct {
	reader jfr.Reader
	cfg    *Config
	accept map[string]bool
	logger *logrus.Logger
}

// Result is one window's artifact: its counted signatures plus the
// accumulator returned from (never shared across) the pass.
type Result struct {
	Sequence int
	Window   Window
	Stacks   *Stacks
	Info     *Accumulator
	Events   int
}

// NewRunner builds a runner. accept limits which event-type paths each
// window materializes; nil accepts everything.
func NewRunner(reader jfr.Reader, cfg *Config, accept map[string]bool, logger *logrus.Logger) *Runner {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.WarnLevel)
	}
	return &Runner{reader: reader, cfg: cfg, accept: accept, logger: logger}
}

// Run schedules every window over the recording's effective range and
// processes them, one worker per window. Results come back in window order.
// The first window failure aborts the run.
func (r *Runner) Run() ([]Result, error) {
	recStart, recEnd := r.reader.TimeRange()
	sched := NewScheduler(recStart, recEnd, r.cfg)

	var windows []Window
	var seqs []int
	for {
		w, seq, ok := sched.Next()
		if !ok {
			break
		}
		windows = append(windows, w)
		seqs = append(seqs, seq)
	}

	results := make([]Result, len(windows))
	errs := make([]error, len(windows))
	var wg sync.WaitGroup
	for i := range windows {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = r.processWindow(windows[i], seqs[i])
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// processWindow performs the single full pass over one window: split info
// events from samples, filter, group, then collapse once every event has
// been seen. A reader failure aborts the window.
func (r *Runner) processWindow(w Window, seq int) (Result, error) {
	events, err := r.reader.Events(w.Start, w.End, r.accept)
	if err != nil {
		return Result{}, fmt.Errorf("window %d: %w", seq, err)
	}

	acc := NewAccumulator()
	chain := NewFilterChain(r.cfg)
	grouper := NewGrouper(r.cfg)

	samples := 0
	for _, ev := range events {
		if acc.Observe(ev) {
			continue
		}
		if len(ev.Frames) == 0 {
			continue
		}
		if ev.Truncated {
			acc.Truncated++
		}
		samples++

		trace := make([]string, 0, len(ev.Frames))
		for _, fr := range ev.Frames {
			if sig := fr.Signature(); sig != "" {
				trace = append(trace, sig)
			}
		}
		if trace = chain.Apply(trace); trace == nil {
			continue
		}
		grouper.Add(trace)
	}

	collapser := NewCollapser(r.cfg)
	for _, trace := range grouper.Significant() {
		collapser.Add(trace)
	}

	r.logger.WithFields(logrus.Fields{
		"window":  seq,
		"samples": samples,
		"stacks":  collapser.Stacks().Len(),
	}).Debug("Window processed")

	return Result{
		Sequence: seq,
		Window:   w,
		Stacks:   collapser.Stacks(),
		Info:     acc,
		Events:   samples,
	}, nil
}
