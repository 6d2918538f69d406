package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/feng-tao/jfr-report-tool/pkg/flamegraph"
	"github.com/feng-tao/jfr-report-tool/pkg/jfr"
	"github.com/feng-tao/jfr-report-tool/pkg/output"
	"github.com/feng-tao/jfr-report-tool/pkg/report"
)

// actionContext carries everything a report operation needs for one recording.
type actionContext struct {
	reader     jfr.Reader
	cfg        *report.Config
	accept     map[string]bool
	logger     *logrus.Logger
	stem       string
	outDir     string
	title      string
	width      int
	script     string
	nativeSVG  bool
	eventClass string
	stdout     io.Writer
}

type actionFunc func(*actionContext) error

// actions is the registry of named report operations, built by explicit
// enumeration at startup.
var actions = map[string]actionFunc{
	"flamegraph": runFlameGraph,
	"collapsed":  runCollapsed,
	"info":       runInfo,
	"duration":   runDuration,
}

func actionNames() []string {
	names := make([]string, 0, len(actions))
	for name := range actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func runFlameGraph(ac *actionContext) error {
	return collapseAndEmit(ac, true)
}

func runCollapsed(ac *actionContext) error {
	return collapseAndEmit(ac, false)
}

// collapseAndEmit runs the window passes and writes one collapsed artifact
// (and optionally a flame graph) per non-empty window. Empty windows leave
// nothing behind and never reach a renderer.
func collapseAndEmit(ac *actionContext, render bool) error {
	runner := report.NewRunner(ac.reader, ac.cfg, ac.accept, ac.logger)
	results, err := runner.Run()
	if err != nil {
		return err
	}

	multi := len(results) > 1
	total := report.NewAccumulator()
	for _, res := range results {
		total.Merge(res.Info)
		if res.Stacks.Len() == 0 {
			ac.logger.WithField("window", res.Sequence).Debug("No stacks survived filtering; skipping window")
			continue
		}

		collapsedPath := ac.artifactPath(res.Sequence, multi, ".collapsed")
		lines, err := writeStacksFile(collapsedPath, res.Stacks, ac.cfg.Sort)
		if err != nil {
			return err
		}
		if lines == 0 {
			os.Remove(collapsedPath)
			continue
		}

		if render {
			if err := ac.renderWindow(res, collapsedPath, multi); err != nil {
				return err
			}
		}
	}

	output.SummaryReport(ac.stdout, results)
	output.InfoReport(ac.stdout, total)
	return nil
}

func (ac *actionContext) renderWindow(res report.Result, collapsedPath string, multi bool) error {
	title := ac.title
	if title == "" {
		title = ac.stem
	}
	if multi {
		title = fmt.Sprintf("%s (window %d)", title, res.Sequence)
	}
	svgPath := ac.artifactPath(res.Sequence, multi, ".svg")

	if ac.nativeSVG {
		f, err := os.Create(svgPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", svgPath, err)
		}
		defer f.Close()
		return flamegraph.WriteSVG(f, res.Stacks, flamegraph.SVGOptions{
			Title:       title,
			Width:       ac.width,
			ColorScheme: flamegraph.SchemeForEventClass(ac.eventClass),
		})
	}
	return flamegraph.Render(context.Background(), collapsedPath, svgPath, flamegraph.RenderOptions{
		Script: ac.script,
		Width:  ac.width,
		Title:  title,
	})
}

func runInfo(ac *actionContext) error {
	runner := report.NewRunner(ac.reader, ac.cfg, ac.accept, ac.logger)
	results, err := runner.Run()
	if err != nil {
		return err
	}
	total := report.NewAccumulator()
	for _, res := range results {
		total.Merge(res.Info)
	}
	if len(total.Info) == 0 && total.BufferLost == 0 {
		fmt.Fprintln(ac.stdout, "no information events in recording")
		return nil
	}
	output.InfoReport(ac.stdout, total)
	return nil
}

func runDuration(ac *actionContext) error {
	start, end := ac.reader.TimeRange()
	if start.IsZero() && end.IsZero() {
		fmt.Fprintln(ac.stdout, "recording contains no events")
		return nil
	}
	fmt.Fprintf(ac.stdout, "start:    %s\nend:      %s\nduration: %s\n",
		start.Format("2006-01-02 15:04:05.000"),
		end.Format("2006-01-02 15:04:05.000"),
		end.Sub(start))
	return nil
}

func (ac *actionContext) artifactPath(seq int, multi bool, ext string) string {
	name := ac.stem
	if multi {
		name = fmt.Sprintf("%s-%03d", ac.stem, seq)
	}
	return filepath.Join(ac.outDir, name+ext)
}

func writeStacksFile(path string, stacks *report.Stacks, sorted bool) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	lines, err := report.WriteStacks(f, stacks, sorted)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return lines, fmt.Errorf("write %s: %w", path, err)
	}
	return lines, nil
}
