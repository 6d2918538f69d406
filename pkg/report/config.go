// Package report implements the aggregation pipeline that turns a window of
// profiling events into counted, collapsed stack signatures ready for flame
// graph rendering.
package report

import (
	"fmt"
	"regexp"
	"time"
)

// Defaults mirroring the tool's long-standing behavior.
const (
	DefaultMinimumSamples           = 3
	DefaultMinimumSamplesFrameDepth = 5

	// DefaultExcludePattern drops JDK and runtime infrastructure frames.
	// Matched against whole signatures.
	DefaultExcludePattern = `(java\.|javax\.|jdk\.|sun\.|com\.sun\.|oracle\.|com\.oracle\.).*`

	// NoExcludePattern disables the exclude stage entirely.
	NoExcludePattern = "none"
)

// Options is the plain, flag-shaped input to Build. Pattern fields hold
// uncompiled regular expressions; an empty pattern disables its stage.
type Options struct {
	GrepPattern    string
	CutoffPattern  string
	IncludePattern string
	ExcludePattern string

	MinimumSamples           int
	MinimumSamplesFrameDepth int

	Reverse bool
	Compact bool
	Sort    bool

	Begin          time.Duration
	Length         time.Duration
	WindowDuration time.Duration
	FirstSplit     bool
}

// DefaultOptions returns the stock configuration: JDK frames excluded,
// compaction on, significance thresholds at their defaults.
func DefaultOptions() Options {
	return Options{
		ExcludePattern:           DefaultExcludePattern,
		MinimumSamples:           DefaultMinimumSamples,
		MinimumSamplesFrameDepth: DefaultMinimumSamplesFrameDepth,
		Compact:                  true,
	}
}

// Config is the immutable, compiled form of Options. A Config is safe for
// concurrent use by independent window passes.
type Config struct {
	grep    *regexp.Regexp
	cutoff  *regexp.Regexp
	include *regexp.Regexp
	exclude *regexp.Regexp

	MinimumSamples           int
	MinimumSamplesFrameDepth int

	Reverse bool
	Compact bool
	Sort    bool

	Begin          time.Duration
	Length         time.Duration
	WindowDuration time.Duration
	FirstSplit     bool
}

// Build compiles every configured pattern. A pattern that fails to compile
// makes the whole configuration invalid; no run may start from it.
func (o Options) Build() (*Config, error) {
	cfg := &Config{
		MinimumSamples:           o.MinimumSamples,
		MinimumSamplesFrameDepth: o.MinimumSamplesFrameDepth,
		Reverse:                  o.Reverse,
		Compact:                  o.Compact,
		Sort:                     o.Sort,
		Begin:                    o.Begin,
		Length:                   o.Length,
		WindowDuration:           o.WindowDuration,
		FirstSplit:               o.FirstSplit,
	}

	var err error
	if o.GrepPattern != "" {
		if cfg.grep, err = regexp.Compile(o.GrepPattern); err != nil {
			return nil, fmt.Errorf("grep pattern: %w", err)
		}
	}
	if o.CutoffPattern != "" {
		if cfg.cutoff, err = regexp.Compile(o.CutoffPattern); err != nil {
			return nil, fmt.Errorf("cutoff pattern: %w", err)
		}
	}
	if o.IncludePattern != "" {
		if cfg.include, err = compileWhole(o.IncludePattern); err != nil {
			return nil, fmt.Errorf("include pattern: %w", err)
		}
	}
	if o.ExcludePattern != "" && o.ExcludePattern != NoExcludePattern {
		if cfg.exclude, err = compileWhole(o.ExcludePattern); err != nil {
			return nil, fmt.Errorf("exclude pattern: %w", err)
		}
	}
	return cfg, nil
}

// compileWhole anchors pat so it must match an entire signature. Grep and
// cutoff stay unanchored (any-substring); include and exclude are whole-
// signature predicates. That asymmetry is deliberate.
func compileWhole(pat string) (*regexp.Regexp, error) {
	return regexp.Compile(`\A(?:` + pat + `)\z`)
}
