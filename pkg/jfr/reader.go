package jfr

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	jfrparser "github.com/grafana/jfr-parser/parser"
	"github.com/grafana/jfr-parser/parser/types"
	"github.com/sirupsen/logrus"
)

// FileReader reads a flight-recording file through the pure-Go decoder.
// The whole recording is decoded at Open time; Events then serves sub-range
// views without touching the file again.
type FileReader struct {
	events []Event
	log    *logrus.Logger
}

// Open decodes the recording at path. Undecodable individual events are
// skipped with a debug log entry; a recording with no decodable sampling
// events yields a reader with an empty time range.
func Open(path string, log *logrus.Logger) (*FileReader, error) {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.WarnLevel)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recording: %w", err)
	}

	p := jfrparser.NewParser(data, jfrparser.Options{
		SymbolProcessor: jfrparser.ProcessSymbols,
	})

	r := &FileReader{log: log}
	for {
		typeID, err := p.ParseEvent()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.WithError(err).Debug("Skipping undecodable event")
			continue
		}

		var ev Event
		switch typeID {
		case p.TypeMap.T_EXECUTION_SAMPLE:
			ev = Event{TypePath: TypeExecutionSample, Time: toTime(p.ExecutionSample.StartTime)}
			ev.Frames, ev.Truncated = resolveFrames(p, p.ExecutionSample.StackTrace)
		case p.TypeMap.T_WALL_CLOCK_SAMPLE:
			ev = Event{TypePath: TypeWallClockSample, Time: toTime(p.WallClockSample.StartTime)}
			ev.Frames, ev.Truncated = resolveFrames(p, p.WallClockSample.StackTrace)
		case p.TypeMap.T_ALLOC_IN_NEW_TLAB:
			ev = Event{TypePath: TypeAllocInNewTLAB, Time: toTime(p.ObjectAllocationInNewTLAB.StartTime)}
			ev.Frames, ev.Truncated = resolveFrames(p, p.ObjectAllocationInNewTLAB.StackTrace)
		case p.TypeMap.T_ALLOC_OUTSIDE_TLAB:
			ev = Event{TypePath: TypeAllocOutsideTLAB, Time: toTime(p.ObjectAllocationOutsideTLAB.StartTime)}
			ev.Frames, ev.Truncated = resolveFrames(p, p.ObjectAllocationOutsideTLAB.StackTrace)
		case p.TypeMap.T_MONITOR_ENTER:
			ev = Event{TypePath: TypeMonitorEnter, Time: toTime(p.JavaMonitorEnter.StartTime)}
			ev.Frames, ev.Truncated = resolveFrames(p, p.JavaMonitorEnter.StackTrace)
		case p.TypeMap.T_THREAD_PARK:
			ev = Event{TypePath: TypeThreadPark, Time: toTime(p.ThreadPark.StartTime)}
			ev.Frames, ev.Truncated = resolveFrames(p, p.ThreadPark.StackTrace)
		default:
			continue
		}
		r.events = append(r.events, ev)
	}

	sort.SliceStable(r.events, func(i, j int) bool { return r.events[i].Time.Before(r.events[j].Time) })
	log.WithFields(logrus.Fields{
		"path":   path,
		"events": len(r.events),
	}).Debug("Recording decoded")
	return r, nil
}

func (r *FileReader) TimeRange() (time.Time, time.Time) {
	if len(r.events) == 0 {
		return time.Time{}, time.Time{}
	}
	return r.events[0].Time, r.events[len(r.events)-1].Time.Add(time.Nanosecond)
}

func (r *FileReader) Events(from, to time.Time, accept map[string]bool) ([]Event, error) {
	lo := sort.Search(len(r.events), func(i int) bool { return !r.events[i].Time.Before(from) })
	hi := sort.Search(len(r.events), func(i int) bool { return !r.events[i].Time.Before(to) })
	var out []Event
	for _, ev := range r.events[lo:hi] {
		if accept != nil && !accept[ev.TypePath] {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

func toTime(ns uint64) time.Time {
	return time.Unix(0, int64(ns))
}

// resolveFrames materializes the referenced stack trace, leaf to root as
// recorded. Frames whose method cannot be resolved are dropped.
func resolveFrames(p *jfrparser.Parser, ref types.StackTraceRef) ([]Frame, bool) {
	st := p.GetStacktrace(ref)
	if st == nil || len(st.Frames) == 0 {
		return nil, false
	}
	frames := make([]Frame, 0, len(st.Frames))
	for _, fr := range st.Frames {
		m := p.GetMethod(fr.Method)
		if m == nil {
			continue
		}
		f := Frame{Method: p.GetSymbolString(m.Name)}
		if cls := p.GetClass(m.Type); cls != nil {
			f.Type = dotted(p.GetSymbolString(cls.Name))
		}
		if args, ret, ok := ParseDescriptor(p.GetSymbolString(m.Descriptor)); ok {
			f.Args = args
			f.Return = ret
		}
		frames = append(frames, f)
	}
	return frames, st.Truncated
}

// dotted converts a slash-form class name (java/lang/String) to its dotted
// source form. Already-dotted names pass through unchanged.
func dotted(name string) string {
	out := []byte(name)
	for i := range out {
		if out[i] == '/' {
			out[i] = '.'
		}
	}
	return string(out)
}
