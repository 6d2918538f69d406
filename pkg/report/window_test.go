package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func mustConfig(t *testing.T, o Options) *Config {
	t.Helper()
	cfg, err := o.Build()
	require.NoError(t, err)
	return cfg
}

func collectWindows(s *Scheduler) ([]Window, []int) {
	var windows []Window
	var seqs []int
	for {
		w, seq, ok := s.Next()
		if !ok {
			return windows, seqs
		}
		windows = append(windows, w)
		seqs = append(seqs, seq)
	}
}

func TestSchedulerSingleWindowWithoutDuration(t *testing.T) {
	start := time.Unix(100, 0)
	end := start.Add(37 * time.Second)
	cfg := mustConfig(t, Options{})

	windows, seqs := collectWindows(NewScheduler(start, end, cfg))
	require.Len(t, windows, 1)
	require.Equal(t, []int{1}, seqs)
	require.Equal(t, start, windows[0].Start)
	require.Equal(t, end, windows[0].End)
}

func TestSchedulerTwoTenSecondWindows(t *testing.T) {
	start := time.Unix(0, 0)
	end := start.Add(20 * time.Second)
	cfg := mustConfig(t, Options{WindowDuration: 10 * time.Second})

	windows, seqs := collectWindows(NewScheduler(start, end, cfg))
	require.Len(t, windows, 2)
	require.Equal(t, []int{1, 2}, seqs)
	require.Equal(t, Window{Start: start, End: start.Add(10 * time.Second)}, windows[0])
	require.Equal(t, Window{Start: start.Add(10 * time.Second), End: end}, windows[1])
}

func TestSchedulerWindowsCoverRangeWithoutGaps(t *testing.T) {
	start := time.Unix(50, 0)
	end := start.Add(35 * time.Second)
	cfg := mustConfig(t, Options{WindowDuration: 10 * time.Second})

	windows, _ := collectWindows(NewScheduler(start, end, cfg))
	require.Len(t, windows, 4)
	require.Equal(t, start, windows[0].Start)
	for i := 1; i < len(windows); i++ {
		require.Equal(t, windows[i-1].End, windows[i].Start)
	}
	// Final window is capped at the range end.
	require.Equal(t, end, windows[len(windows)-1].End)
	require.Equal(t, 5*time.Second, windows[len(windows)-1].Duration())
}

func TestSchedulerFirstSplitHalvesFirstWindow(t *testing.T) {
	start := time.Unix(0, 0)
	end := start.Add(20 * time.Second)
	cfg := mustConfig(t, Options{WindowDuration: 8 * time.Second, FirstSplit: true})

	windows, _ := collectWindows(NewScheduler(start, end, cfg))
	require.Len(t, windows, 3)
	require.Equal(t, 4*time.Second, windows[0].Duration())
	require.Equal(t, 8*time.Second, windows[1].Duration())
	require.Equal(t, 8*time.Second, windows[2].Duration())
}

func TestSchedulerBeginAndLength(t *testing.T) {
	recStart := time.Unix(0, 0)
	recEnd := recStart.Add(60 * time.Second)
	cfg := mustConfig(t, Options{Begin: 10 * time.Second, Length: 20 * time.Second})

	windows, _ := collectWindows(NewScheduler(recStart, recEnd, cfg))
	require.Len(t, windows, 1)
	require.Equal(t, recStart.Add(10*time.Second), windows[0].Start)
	require.Equal(t, recStart.Add(30*time.Second), windows[0].End)
}

func TestSchedulerEmptyRange(t *testing.T) {
	start := time.Unix(0, 0)
	cfg := mustConfig(t, Options{WindowDuration: time.Second})

	windows, _ := collectWindows(NewScheduler(start, start, cfg))
	require.Empty(t, windows)
}

func TestWindowContains(t *testing.T) {
	start := time.Unix(0, 0)
	w := Window{Start: start, End: start.Add(10 * time.Second)}
	require.True(t, w.Contains(start))
	require.True(t, w.Contains(start.Add(10*time.Second-time.Nanosecond)))
	require.False(t, w.Contains(start.Add(10*time.Second)))
	require.False(t, w.Contains(start.Add(-time.Nanosecond)))
}
