// Package flamegraph renders collapsed stack output as a flame graph image,
// either through an external flamegraph.pl or with the built-in SVG writer.
package flamegraph

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// RenderOptions configures the external renderer invocation.
type RenderOptions struct {
	Script string // renderer executable, e.g. flamegraph.pl
	Width  int
	Title  string
}

// DefaultRenderOptions returns sensible defaults.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Script: "flamegraph.pl",
		Width:  1200,
	}
}

// Render feeds the collapsed-stack file at collapsedPath to the external
// renderer and writes its SVG output to svgPath. Callers must not invoke it
// for an empty collapsed file; on failure no partial SVG is left behind.
func Render(ctx context.Context, collapsedPath, svgPath string, opts RenderOptions) error {
	if opts.Script == "" {
		opts.Script = "flamegraph.pl"
	}
	if opts.Width == 0 {
		opts.Width = 1200
	}
	if _, err := exec.LookPath(opts.Script); err != nil {
		return fmt.Errorf("%s not found: %w", opts.Script, err)
	}

	args := []string{"--width", strconv.Itoa(opts.Width)}
	if opts.Title != "" {
		args = append(args, "--title", opts.Title)
	}
	args = append(args, collapsedPath)

	out, err := os.Create(svgPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", svgPath, err)
	}
	defer out.Close()

	cmd := exec.CommandContext(ctx, opts.Script, args...)
	cmd.Stdout = out
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		out.Close()
		os.Remove(svgPath)
		return fmt.Errorf("%s failed: %v (%s)", opts.Script, err, stderr.String())
	}
	return nil
}
