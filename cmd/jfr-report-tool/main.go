// jfr-report-tool generates flame graph reports from Java flight recordings.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/feng-tao/jfr-report-tool/pkg/jfr"
	"github.com/feng-tao/jfr-report-tool/pkg/report"
)

var opts struct {
	action    string
	eventType string

	grep    string
	cutoff  string
	include string
	exclude string

	minSamples int
	frameDepth int

	begin      time.Duration
	length     time.Duration
	window     time.Duration
	firstSplit bool

	reverse    bool
	compact    bool
	sortOutput bool

	width         int
	title         string
	outputDir     string
	flamegraphCmd string
	nativeSVG     bool

	debug bool
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "jfr-report-tool [flags] recording.jfr [recording2.jfr ...]",
		Short: "Generate flame graph reports from Java flight recordings",
		Long: `jfr-report-tool aggregates the sampling events of a flight recording into
collapsed stack output and flame graphs. Recordings can be split into time
windows, each producing its own report.

Examples:
  jfr-report-tool recording.jfr                      # flame graph of the whole recording
  jfr-report-tool -w 30s -g 'MyService' recording.jfr # 30s windows, MyService stacks only
  jfr-report-tool --action duration recording.jfr     # print the recording time range`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logrus.New()
			logger.SetLevel(logrus.WarnLevel)
			if opts.debug {
				logger.SetLevel(logrus.DebugLevel)
			}

			action, ok := actions[opts.action]
			if !ok {
				return fmt.Errorf("unknown action %q (have %s)", opts.action, strings.Join(actionNames(), ", "))
			}

			cfg, err := buildConfig()
			if err != nil {
				return err
			}
			accept, err := jfr.Accept(opts.eventType)
			if err != nil {
				return err
			}

			for _, path := range args {
				reader, err := jfr.Open(path, logger)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				ac := &actionContext{
					reader:     reader,
					cfg:        cfg,
					accept:     accept,
					logger:     logger,
					stem:       strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
					outDir:     opts.outputDir,
					title:      opts.title,
					width:      opts.width,
					script:     opts.flamegraphCmd,
					nativeSVG:  opts.nativeSVG,
					eventClass: opts.eventType,
					stdout:     cmd.OutOrStdout(),
				}
				if err := action(ac); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}
			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.action, "action", "a", "flamegraph", "report operation: "+strings.Join(actionNames(), ", "))
	flags.StringVarP(&opts.eventType, "event-type", "t", "cpu", "event class to aggregate: cpu, wall, alloc or lock")
	flags.StringVarP(&opts.grep, "grep", "g", "", "keep only stacks with at least one frame matching this regex")
	flags.StringVarP(&opts.cutoff, "cutoff", "c", "", "truncate stacks at the first frame matching this regex")
	flags.StringVarP(&opts.include, "include", "i", "", "keep only frames fully matching this regex")
	flags.StringVarP(&opts.exclude, "exclude", "e", report.DefaultExcludePattern, "drop frames fully matching this regex (\"none\" disables)")
	flags.IntVarP(&opts.minSamples, "min-samples", "m", report.DefaultMinimumSamples, "drop call-path groups with at most this many samples")
	flags.IntVarP(&opts.frameDepth, "min-samples-frame-depth", "d", report.DefaultMinimumSamplesFrameDepth, "frame prefix depth used to group call paths")
	flags.DurationVarP(&opts.begin, "begin", "b", 0, "offset into the recording where analysis starts")
	flags.DurationVarP(&opts.length, "length", "l", 0, "length of the analysis range (0 = to end of recording)")
	flags.DurationVarP(&opts.window, "window", "w", 0, "split the analysis range into windows of this duration")
	flags.BoolVarP(&opts.firstSplit, "first-split", "f", false, "halve the first window")
	flags.BoolVarP(&opts.reverse, "reverse", "r", false, "keep leaf-to-root frame order (icicle graph)")
	flags.BoolVarP(&opts.compact, "compact", "n", true, "compact package-qualified names for display")
	flags.BoolVarP(&opts.sortOutput, "sort", "s", false, "emit collapsed stacks in descending count order")
	flags.IntVar(&opts.width, "width", 1200, "flame graph width in pixels")
	flags.StringVar(&opts.title, "title", "", "flame graph title (default: recording file name)")
	flags.StringVarP(&opts.outputDir, "output", "o", ".", "directory for report artifacts")
	flags.StringVar(&opts.flamegraphCmd, "flamegraph-command", "flamegraph.pl", "external flame graph renderer")
	flags.BoolVar(&opts.nativeSVG, "svg", false, "render SVG in-process instead of invoking the external renderer")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func buildConfig() (*report.Config, error) {
	o := report.Options{
		GrepPattern:              opts.grep,
		CutoffPattern:            opts.cutoff,
		IncludePattern:           opts.include,
		ExcludePattern:           opts.exclude,
		MinimumSamples:           opts.minSamples,
		MinimumSamplesFrameDepth: opts.frameDepth,
		Reverse:                  opts.reverse,
		Compact:                  opts.compact,
		Sort:                     opts.sortOutput,
		Begin:                    opts.begin,
		Length:                   opts.length,
		WindowDuration:           opts.window,
		FirstSplit:               opts.firstSplit,
	}
	return o.Build()
}
