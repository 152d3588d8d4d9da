// Package debug traces the render pipeline as a stream of structured
// events.
//
// Tracing is off unless switched on with --debug or VOID_DEBUG=1. A nil
// *Session is valid and every method on it is a no-op, so call sites
// never need to check whether tracing is enabled. Events are JSON Lines
// by default; the pretty sink is for reading in a terminal.
package debug

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"os"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/ryanlewis/voidtype/internal/common"
)

var enabled atomic.Bool

// SetEnabled turns tracing on or off for the whole process.
func SetEnabled(on bool) {
	enabled.Store(on)
}

// Enabled reports whether tracing is on.
func Enabled() bool {
	return enabled.Load()
}

// InitFromEnv enables tracing when VOID_DEBUG=1 and reports whether
// VOID_DEBUG_PRETTY=1 asks for the pretty sink.
func InitFromEnv() (pretty bool) {
	if on, _ := strconv.ParseBool(os.Getenv(common.EnvDebug)); on {
		SetEnabled(true)
	}
	pretty, _ = strconv.ParseBool(os.Getenv(common.EnvDebugPretty))
	return pretty
}

// NewSink returns a pretty or JSON Lines sink writing to w.
func NewSink(w io.Writer, pretty bool) Sink {
	if pretty {
		return NewPrettySink(w)
	}
	return NewJSONSink(w)
}

// Session groups the events of one render or export under one id.
// A session is used by a single render at a time.
type Session struct {
	id      string
	sink    Sink
	started time.Time
	events  atomic.Int64
}

// NewSession opens a session on sink. It returns nil when tracing is
// off or sink is nil.
func NewSession(sink Sink) *Session {
	if !Enabled() || sink == nil {
		return nil
	}
	s := &Session{
		id:      newSessionID(),
		sink:    sink,
		started: time.Now(),
	}
	s.Emit("session", "Start", map[string]interface{}{
		"version": "1.0",
	})
	return s
}

// ID returns the session id, or "" for a nil session.
func (s *Session) ID() string {
	if s == nil {
		return ""
	}
	return s.id
}

// Events returns how many events were emitted, including Start.
func (s *Session) Events() int64 {
	if s == nil {
		return 0
	}
	return s.events.Load()
}

// Emit writes one event. Sink errors are dropped: tracing must never fail
// a render.
func (s *Session) Emit(phase, event string, data interface{}) {
	if s == nil {
		return
	}
	s.events.Add(1)
	//nolint:errcheck // tracing is best effort
	s.sink.Write(Event{
		Timestamp: time.Now().Format(time.RFC3339Nano),
		SessionID: s.id,
		Phase:     phase,
		Event:     event,
		Data:      data,
	})
}

// Since returns the time elapsed since the session opened.
func (s *Session) Since() time.Duration {
	if s == nil {
		return 0
	}
	return time.Since(s.started)
}

// Close emits the End event and flushes the sink.
func (s *Session) Close() error {
	if s == nil {
		return nil
	}
	s.Emit("session", "End", map[string]int64{
		"elapsed_ms": s.Since().Milliseconds(),
		"events":     s.events.Load() + 1,
	})
	return s.sink.Close()
}

func newSessionID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return strconv.FormatInt(time.Now().UnixNano()&0xffffffff, 16)
	}
	return hex.EncodeToString(b)
}

// Event is the envelope written for every trace record.
type Event struct {
	Timestamp string      `json:"ts"`
	SessionID string      `json:"session_id"`
	Phase     string      `json:"phase"`
	Event     string      `json:"event"`
	Data      interface{} `json:"data"`
}
