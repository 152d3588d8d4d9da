// Package recorder provides a surface that keeps every call as a typed
// operation, for tests and for counting what a render produced.
package recorder

import (
	"image/color"
	"io"

	"github.com/ryanlewis/voidtype/internal/surface"
)

// Name is the registry name of the recorder backend.
const Name = "record"

func init() {
	surface.Register(Name, func(io.Writer) surface.Surface { return New() })
}

// OpType identifies a recorded call.
type OpType uint8

// Recorded operations, one per Surface method.
const (
	OpBegin OpType = iota
	OpEnd
	OpBeginGroup
	OpEndGroup
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpArc
	OpClosePath
	OpSetFillColor
	OpSetFillGradient
	OpFill
	OpSetStroke
	OpStroke
)

var opNames = [...]string{
	OpBegin:           "Begin",
	OpEnd:             "End",
	OpBeginGroup:      "BeginGroup",
	OpEndGroup:        "EndGroup",
	OpBeginPath:       "BeginPath",
	OpMoveTo:          "MoveTo",
	OpLineTo:          "LineTo",
	OpArc:             "Arc",
	OpClosePath:       "ClosePath",
	OpSetFillColor:    "SetFillColor",
	OpSetFillGradient: "SetFillGradient",
	OpFill:            "Fill",
	OpSetStroke:       "SetStroke",
	OpStroke:          "Stroke",
}

// String returns the Surface method name of t.
func (t OpType) String() string {
	if int(t) < len(opNames) {
		return opNames[t]
	}
	return "Unknown"
}

// Op is one recorded call. Args holds the numeric arguments in call
// order; Arc appends 1 for counter-clockwise.
type Op struct {
	Type     OpType
	Args     []float64
	ID       string
	Color    color.Color
	Gradient *surface.Gradient
}

// Recorder implements surface.Surface by appending to Ops.
type Recorder struct {
	Ops           []Op
	Width, Height int
	depth         int
}

// New returns an empty recorder.
func New() *Recorder {
	return &Recorder{}
}

func (r *Recorder) add(op Op) { r.Ops = append(r.Ops, op) }

// Begin records the canvas size.
func (r *Recorder) Begin(width, height int) error {
	r.Width, r.Height = width, height
	r.add(Op{Type: OpBegin, Args: []float64{float64(width), float64(height)}})
	return nil
}

// End records the end of the document.
func (r *Recorder) End() error {
	r.add(Op{Type: OpEnd})
	return nil
}

// BeginGroup records a group opening and nests one level deeper.
func (r *Recorder) BeginGroup(id string) {
	r.depth++
	r.add(Op{Type: OpBeginGroup, ID: id})
}

// EndGroup records a group closing.
func (r *Recorder) EndGroup() {
	if r.depth > 0 {
		r.depth--
	}
	r.add(Op{Type: OpEndGroup})
}

// BeginPath records a path start.
func (r *Recorder) BeginPath() { r.add(Op{Type: OpBeginPath}) }

// MoveTo records a move.
func (r *Recorder) MoveTo(x, y float64) {
	r.add(Op{Type: OpMoveTo, Args: []float64{x, y}})
}

// LineTo records a line.
func (r *Recorder) LineTo(x, y float64) {
	r.add(Op{Type: OpLineTo, Args: []float64{x, y}})
}

// Arc records an arc.
func (r *Recorder) Arc(cx, cy, rad, a0, a1 float64, ccw bool) {
	dir := 0.0
	if ccw {
		dir = 1
	}
	r.add(Op{Type: OpArc, Args: []float64{cx, cy, rad, a0, a1, dir}})
}

// ClosePath records a subpath close.
func (r *Recorder) ClosePath() { r.add(Op{Type: OpClosePath}) }

// SetFillColor records a solid fill colour.
func (r *Recorder) SetFillColor(c color.Color) {
	r.add(Op{Type: OpSetFillColor, Color: c})
}

// SetFillGradient records a gradient fill.
func (r *Recorder) SetFillGradient(g surface.Gradient) {
	r.add(Op{Type: OpSetFillGradient, Gradient: &g})
}

// Fill records a fill.
func (r *Recorder) Fill() { r.add(Op{Type: OpFill}) }

// SetStroke records the outline colour and width.
func (r *Recorder) SetStroke(c color.Color, width float64) {
	r.add(Op{Type: OpSetStroke, Color: c, Args: []float64{width}})
}

// Stroke records an outline.
func (r *Recorder) Stroke() { r.add(Op{Type: OpStroke}) }

// Count returns how many ops of type t were recorded.
func (r *Recorder) Count(t OpType) int {
	n := 0
	for _, op := range r.Ops {
		if op.Type == t {
			n++
		}
	}
	return n
}

// Groups returns the ids of every group opened, in order.
func (r *Recorder) Groups() []string {
	var ids []string
	for _, op := range r.Ops {
		if op.Type == OpBeginGroup {
			ids = append(ids, op.ID)
		}
	}
	return ids
}

// Reset drops all recorded ops.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.depth = 0
}

// Depth returns the current group nesting.
func (r *Recorder) Depth() int { return r.depth }
