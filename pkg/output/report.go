// Package output renders the run's textual side reports: per-window
// summaries and the information-event sidecar.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/feng-tao/jfr-report-tool/pkg/report"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62")).Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	warnStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// SummaryReport prints one line per processed window plus the advisory
// truncation warning when any stack trace was cut short by the recorder.
func SummaryReport(w io.Writer, results []report.Result) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Window Summary"))
	fmt.Fprintln(w, dimStyle.Render(strings.Repeat("═", 52)))
	fmt.Fprintf(w, "  %s  %s  %s\n",
		headerStyle.Render("WINDOW"),
		headerStyle.Render("SAMPLES "),
		headerStyle.Render("STACKS  "))
	fmt.Fprintln(w, "  "+dimStyle.Render(strings.Repeat("─", 52)))

	truncated := 0
	for _, res := range results {
		fmt.Fprintf(w, "  %-8d %-9d %-9d %s\n",
			res.Sequence, res.Events, res.Stacks.Len(),
			dimStyle.Render(fmt.Sprintf("[%s .. %s)",
				res.Window.Start.Format("15:04:05.000"),
				res.Window.End.Format("15:04:05.000"))))
		truncated += res.Info.Truncated
	}
	fmt.Fprintln(w, "  "+dimStyle.Render(strings.Repeat("─", 52)))
	if truncated > 0 {
		fmt.Fprintln(w, "  "+warnStyle.Render(fmt.Sprintf("%d stack trace(s) were truncated by the recorder", truncated)))
	}
}

// InfoReport prints the captured information events, one section per event
// type path with its fields in stable field-name order, followed by the
// buffer-loss count. Nothing is printed when no info events were captured.
func InfoReport(w io.Writer, acc *report.Accumulator) {
	if len(acc.Info) == 0 && acc.BufferLost == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Recording Information"))
	fmt.Fprintln(w, dimStyle.Render(strings.Repeat("═", 52)))

	paths := make([]string, 0, len(acc.Info))
	for path := range acc.Info {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		ev := acc.Info[path]
		fmt.Fprintln(w, "  "+headerStyle.Render(path))
		names := make([]string, 0, len(ev.Fields))
		for name := range ev.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "    %-24s %s\n", name, ev.Fields[name])
		}
	}
	if acc.BufferLost > 0 {
		fmt.Fprintln(w, "  "+warnStyle.Render(fmt.Sprintf("buffers lost: %d", acc.BufferLost)))
	}
}
