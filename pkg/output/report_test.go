package output

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/feng-tao/jfr-report-tool/pkg/jfr"
	"github.com/feng-tao/jfr-report-tool/pkg/report"
)

func TestInfoReportStableFieldOrder(t *testing.T) {
	acc := report.NewAccumulator()
	acc.Observe(jfr.Event{
		TypePath: jfr.TypeOSInformation,
		Fields:   map[string]string{"version": "5.15", "arch": "x86_64", "host": "build-1"},
	})
	acc.BufferLost = 2

	var buf strings.Builder
	InfoReport(&buf, acc)
	out := buf.String()

	require.Contains(t, out, jfr.TypeOSInformation)
	require.Contains(t, out, "buffers lost: 2")
	// Fields render in sorted name order.
	require.Less(t, strings.Index(out, "arch"), strings.Index(out, "host"))
	require.Less(t, strings.Index(out, "host"), strings.Index(out, "version"))
}

func TestInfoReportSilentWhenEmpty(t *testing.T) {
	var buf strings.Builder
	InfoReport(&buf, report.NewAccumulator())
	require.Empty(t, buf.String())
}

func TestSummaryReportWarnsOnTruncation(t *testing.T) {
	start := time.Unix(0, 0)
	acc := report.NewAccumulator()
	acc.Truncated = 3
	results := []report.Result{{
		Sequence: 1,
		Window:   report.Window{Start: start, End: start.Add(10 * time.Second)},
		Stacks:   report.NewStacks(),
		Info:     acc,
		Events:   42,
	}}

	var buf strings.Builder
	SummaryReport(&buf, results)
	out := buf.String()
	require.Contains(t, out, "42")
	require.Contains(t, out, "3 stack trace(s) were truncated")
}
