package debug

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"sync"
)

// Sink receives trace events.
type Sink interface {
	Write(event Event) error
	Flush() error
	Close() error
}

// JSONSink writes one JSON object per line.
type JSONSink struct {
	mu  sync.Mutex
	w   *bufio.Writer
	enc *json.Encoder
}

// NewJSONSink returns a JSON Lines sink on w.
func NewJSONSink(w io.Writer) *JSONSink {
	bw := bufio.NewWriter(w)
	return &JSONSink{w: bw, enc: json.NewEncoder(bw)}
}

// Write encodes event as one JSON line.
func (s *JSONSink) Write(event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enc.Encode(event)
}

// Flush writes any buffered lines.
func (s *JSONSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Flush()
}

// Close flushes the sink.
func (s *JSONSink) Close() error { return s.Flush() }

// PrettySink writes an indented, human-readable block per event.
type PrettySink struct {
	mu sync.Mutex
	w  *bufio.Writer
}

// NewPrettySink returns a pretty sink on w.
func NewPrettySink(w io.Writer) *PrettySink {
	return &PrettySink{w: bufio.NewWriter(w)}
}

// Write prints event as an indented, human-readable block.
func (s *PrettySink) Write(event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintf(s.w, "[%s] [%s/%s] session=%s\n", event.Timestamp, event.Phase, event.Event, event.SessionID)
	switch d := event.Data.(type) {
	case RenderStartData:
		fmt.Fprintf(s.w, "  text: %q (%d runes, %d lines)\n", d.Text, d.Runes, d.Lines)
		fmt.Fprintf(s.w, "  mode: %s, module: %g, stem: %g\n", d.Mode, d.ModuleSize, d.Stem)
		fmt.Fprintf(s.w, "  canvas: %dx%d", d.Width, d.Height)
		if d.Backend != "" {
			fmt.Fprintf(s.w, ", backend: %s", d.Backend)
		}
		fmt.Fprintln(s.w)
	case RenderEndData:
		fmt.Fprintf(s.w, "  glyphs: %d, shapes: %d, primitives: %d\n", d.Glyphs, d.Shapes, d.Primitives)
		fmt.Fprintf(s.w, "  elapsed_ms: %d\n", d.ElapsedMs)
	case LineData:
		fmt.Fprintf(s.w, "  line %d: %d runes, width %g at (%g, %g)\n", d.Line, d.Runes, d.Width, d.StartX, d.Y)
	case GlyphData:
		fmt.Fprintf(s.w, "  %d:%d %s at (%g, %g), %d modules\n", d.Line, d.Index, runeStr(d.Rune), d.X, d.Y, d.Modules)
		if d.Fallback {
			fmt.Fprintln(s.w, "  fallback: space")
		}
	case RandomDrawData:
		fmt.Fprintf(s.w, "  %s %s: stem x%.3f, %d strokes, gap %.3f\n", d.Scope, d.Key, d.StemMul, d.Strokes, d.Gap)
	case AnalysisData:
		fmt.Fprintf(s.w, "  %s: %s, %d connections, %d endpoints, %d components\n",
			runeStr(d.Rune), d.Topology, d.Connections, d.Endpoints, d.Components)
	case ExportData:
		fmt.Fprintf(s.w, "  backend: %s, bytes: %d", d.Backend, d.Bytes)
		if d.Name != "" {
			fmt.Fprintf(s.w, ", name: %s", d.Name)
		}
		fmt.Fprintln(s.w)
	case ParamsData:
		fmt.Fprintf(s.w, "  %s = %s (cache cleared: %t)\n", d.Field, d.Value, d.CacheCleared)
	case ErrorData:
		fmt.Fprintf(s.w, "  %s: %s\n", d.Type, d.Message)
		writeSorted(s.w, d.Context)
	case map[string]interface{}:
		writeSorted(s.w, d)
	case map[string]int64:
		keys := make([]string, 0, len(d))
		for k := range d {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(s.w, "  %s: %d\n", k, d[k])
		}
	default:
		fmt.Fprintf(s.w, "  data: %+v\n", d)
	}
	return nil
}

// Flush writes any buffered output.
func (s *PrettySink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Flush()
}

// Close flushes the sink.
func (s *PrettySink) Close() error { return s.Flush() }

func writeSorted(w io.Writer, m map[string]interface{}) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s: %v\n", k, m[k])
	}
}

// runeStr shows a rune as 'A' (U+0041).
func runeStr(r rune) string {
	if r < 32 {
		return fmt.Sprintf("U+%04X", r)
	}
	return fmt.Sprintf("'%c' (U+%04X)", r, r)
}
