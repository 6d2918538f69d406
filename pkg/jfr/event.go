// Package jfr exposes decoded flight-recording events at the boundary the
// report pipeline consumes: a Reader yields time-ordered events for a
// sub-range of the recording, each sampling event carrying its resolved
// stack frames.
package jfr

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Sampling event type paths understood by the tool.
const (
	TypeExecutionSample  = "jdk.ExecutionSample"
	TypeWallClockSample  = "jdk.WallClockSample"
	TypeAllocInNewTLAB   = "jdk.ObjectAllocationInNewTLAB"
	TypeAllocOutsideTLAB = "jdk.ObjectAllocationOutsideTLAB"
	TypeMonitorEnter     = "jdk.JavaMonitorEnter"
	TypeThreadPark       = "jdk.ThreadPark"
)

// Informational event type paths. These never carry stack traces; they are
// routed to the info accumulator instead of the aggregation pipeline.
const (
	TypeJVMInformation = "jdk.JVMInformation"
	TypeOSInformation  = "jdk.OSInformation"
	TypeCPUInformation = "jdk.CPUInformation"
	TypeDataLoss       = "jdk.DataLoss"
)

var infoTypes = map[string]bool{
	TypeJVMInformation: true,
	TypeOSInformation:  true,
	TypeCPUInformation: true,
	TypeDataLoss:       true,
}

// IsInfo reports whether path names an informational event type.
func IsInfo(path string) bool { return infoTypes[path] }

// InfoTypePaths returns every informational event type path in sorted order.
func InfoTypePaths() []string {
	paths := make([]string, 0, len(infoTypes))
	for p := range infoTypes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Accept builds the event-type acceptance set for one event class
// (cpu, wall, alloc or lock). Informational types are always included so a
// reader that decodes them can feed the info sidecar.
func Accept(class string) (map[string]bool, error) {
	accept := make(map[string]bool)
	switch class {
	case "cpu":
		accept[TypeExecutionSample] = true
	case "wall":
		accept[TypeWallClockSample] = true
	case "alloc":
		accept[TypeAllocInNewTLAB] = true
		accept[TypeAllocOutsideTLAB] = true
	case "lock":
		accept[TypeMonitorEnter] = true
		accept[TypeThreadPark] = true
	default:
		return nil, fmt.Errorf("unknown event class %q (want cpu, wall, alloc or lock)", class)
	}
	for p := range infoTypes {
		accept[p] = true
	}
	return accept, nil
}

// Frame is one resolved stack level of a sampling event.
type Frame struct {
	Type   string
	Method string
	Args   []string
	Return string
}

// Signature renders the frame as "pkg.Class.method(pkg.ArgType)". It returns
// "" when the owning type or method name could not be resolved; such frames
// are dropped from their trace rather than emitted empty.
func (f Frame) Signature() string {
	if f.Type == "" || f.Method == "" {
		return ""
	}
	return f.Type + "." + f.Method + "(" + strings.Join(f.Args, ", ") + ")"
}

// Event is one decoded record of the recording. Frames is nil for
// non-sampling events; Fields is nil for sampling events.
type Event struct {
	TypePath  string
	Time      time.Time
	Frames    []Frame
	Truncated bool
	Fields    map[string]string
}

// Reader is the recording-reader boundary. TimeRange returns the half-open
// interval [start, end) covering every event in the recording. Events returns
// the time-ordered events in [from, to) whose type path is in accept; a nil
// accept set materializes everything.
type Reader interface {
	TimeRange() (start, end time.Time)
	Events(from, to time.Time, accept map[string]bool) ([]Event, error)
}

// SliceReader serves an in-memory event sequence through the Reader
// interface. Events are sorted by time at construction.
type SliceReader struct {
	events []Event
}

// NewSliceReader builds a SliceReader over a copy of events.
func NewSliceReader(events []Event) *SliceReader {
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time.Before(sorted[j].Time) })
	return &SliceReader{events: sorted}
}

func (r *SliceReader) TimeRange() (time.Time, time.Time) {
	if len(r.events) == 0 {
		return time.Time{}, time.Time{}
	}
	first := r.events[0].Time
	last := r.events[len(r.events)-1].Time
	return first, last.Add(time.Nanosecond)
}

func (r *SliceReader) Events(from, to time.Time, accept map[string]bool) ([]Event, error) {
	var out []Event
	for _, ev := range r.events {
		if ev.Time.Before(from) || !ev.Time.Before(to) {
			continue
		}
		if accept != nil && !accept[ev.TypePath] {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}
