package report

import "time"

// Window is a half-open time interval [Start, End) over recording timestamps.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Duration returns the window's span.
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Scheduler emits consecutive, non-overlapping windows covering the
// effective analysis range, 1-indexed. With no window duration configured it
// emits exactly one window spanning the whole range. When FirstSplit is set
// the first window runs for half the configured duration.
type Scheduler struct {
	next       time.Time
	end        time.Time
	window     time.Duration
	firstSplit bool
	seq        int
}

// NewScheduler derives the effective range from the recording range
// [recStart, recEnd) and the configured begin offset and length.
func NewScheduler(recStart, recEnd time.Time, cfg *Config) *Scheduler {
	start := recStart.Add(cfg.Begin)
	end := recEnd
	if cfg.Length > 0 {
		end = start.Add(cfg.Length)
	}
	return &Scheduler{
		next:       start,
		end:        end,
		window:     cfg.WindowDuration,
		firstSplit: cfg.FirstSplit,
	}
}

// Next returns the next window and its 1-based sequence number. The sequence
// is forward-only and ends once the computed start reaches the range end.
func (s *Scheduler) Next() (Window, int, bool) {
	if !s.next.Before(s.end) {
		return Window{}, 0, false
	}
	if s.window <= 0 {
		w := Window{Start: s.next, End: s.end}
		s.next = s.end
		s.seq++
		return w, s.seq, true
	}
	dur := s.window
	if s.seq == 0 && s.firstSplit {
		dur /= 2
	}
	end := s.next.Add(dur)
	if end.After(s.end) {
		end = s.end
	}
	w := Window{Start: s.next, End: end}
	s.next = end
	s.seq++
	return w, s.seq, true
}
