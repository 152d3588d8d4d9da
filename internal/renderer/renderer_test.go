package renderer

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanlewis/voidtype/internal/debug"
	"github.com/ryanlewis/voidtype/internal/surface/recorder"
)

var (
	black = color.NRGBA{A: 0xff}
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	grey  = color.NRGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}
)

func TestRenderGroupsEveryGlyph(t *testing.T) {
	rec := recorder.New()
	opts := testOptions()
	opts.Color = black

	stats, err := New(1).Render(rec, "A B\nC", opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"glyph-0-0", "glyph-0-1", "glyph-0-2", "glyph-1-0"}, rec.Groups())
	assert.Equal(t, rec.Count(recorder.OpBeginGroup), rec.Count(recorder.OpEndGroup))
	assert.Zero(t, rec.Depth())
	assert.Equal(t, 2, stats.Lines)
	assert.Equal(t, 4, stats.Glyphs)
	assert.Equal(t, stats.Paths, rec.Count(recorder.OpFill))
	assert.Equal(t, 200, rec.Width)

	require.NotEmpty(t, rec.Ops)
	assert.Equal(t, recorder.OpBegin, rec.Ops[0].Type)
	assert.Equal(t, recorder.OpEnd, rec.Ops[len(rec.Ops)-1].Type)
}

func TestRenderStats(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		mode      Mode
		modules   int
		paths     int
		fallbacks int
	}{
		{"fill L", "L", ModeFill, 9, 10, 0},
		{"stripes L", "L", ModeStripes, 9, 30, 0},
		{"unknown rune", "§", ModeFill, 0, 0, 1},
		{"space only", "   ", ModeStripes, 0, 0, 0},
		{"empty", "", ModeFill, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions()
			opts.Mode = tt.mode
			stats, err := New(1).Render(recorder.New(), tt.text, opts)
			require.NoError(t, err)
			assert.Equal(t, tt.modules, stats.Modules)
			assert.Equal(t, tt.paths, stats.Paths)
			assert.Equal(t, tt.fallbacks, stats.Fallbacks)
		})
	}
}

func TestRenderBackground(t *testing.T) {
	rec := recorder.New()
	opts := testOptions()
	opts.Color = black
	opts.Background = white

	stats, err := New(1).Render(rec, ".", opts)
	require.NoError(t, err)

	require.Greater(t, len(rec.Ops), 2)
	assert.Equal(t, recorder.OpSetFillColor, rec.Ops[1].Type)
	assert.Equal(t, white, rec.Ops[1].Color)
	assert.Equal(t, stats.Paths+1, rec.Count(recorder.OpFill))
}

func TestRenderGrid(t *testing.T) {
	rec := recorder.New()
	opts := testOptions()
	opts.ShowGrid = true
	opts.GridColor = grey

	_, err := New(1).Render(rec, "AB", opts)
	require.NoError(t, err)

	assert.Equal(t, 2, rec.Count(recorder.OpStroke))
	// 6 vertical and 6 horizontal lines per glyph
	assert.Equal(t, 24, rec.Count(recorder.OpLineTo)-pathLineTos(t, "AB"))
	for _, op := range rec.Ops {
		if op.Type == recorder.OpSetStroke {
			assert.Equal(t, grey, op.Color)
		}
	}
}

// pathLineTos counts LineTo calls made by the glyph fills alone.
func pathLineTos(t *testing.T, text string) int {
	t.Helper()
	rec := recorder.New()
	_, err := New(1).Render(rec, text, testOptions())
	require.NoError(t, err)
	return rec.Count(recorder.OpLineTo)
}

func TestRenderOverlay(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		endpoints   int
		connections bool
	}{
		{"period has two free ends", ".", 2, false},
		{"O is closed", "O", 0, true},
		{"L has two free ends", "L", 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := recorder.New()
			opts := testOptions()
			opts.ShowOverlay = true

			stats, err := New(1).Render(rec, tt.text, opts)
			require.NoError(t, err)
			assert.Equal(t, stats.Paths+tt.endpoints, rec.Count(recorder.OpFill))
			if tt.connections {
				assert.Equal(t, 1, rec.Count(recorder.OpStroke))
			} else {
				assert.Zero(t, rec.Count(recorder.OpStroke))
			}
		})
	}
}

func TestRenderGradient(t *testing.T) {
	rec := recorder.New()
	opts := testOptions()
	opts.Color = black
	opts.GradientTo = white

	stats, err := New(1).Render(rec, "T", opts)
	require.NoError(t, err)

	assert.Equal(t, stats.Paths, rec.Count(recorder.OpSetFillGradient))
	for _, op := range rec.Ops {
		if op.Type != recorder.OpSetFillGradient {
			continue
		}
		g := op.Gradient
		assert.Equal(t, black, g.From)
		assert.Equal(t, white, g.To)
		assert.Less(t, g.X0, g.X1)
		assert.Equal(t, g.Y0, g.Y1)
	}
}

type failingSurface struct {
	*recorder.Recorder
	beginErr, endErr error
}

func (f *failingSurface) Begin(w, h int) error {
	if f.beginErr != nil {
		return f.beginErr
	}
	return f.Recorder.Begin(w, h)
}

func (f *failingSurface) End() error {
	if f.endErr != nil {
		return f.endErr
	}
	return f.Recorder.End()
}

func TestRenderErrors(t *testing.T) {
	_, err := New(1).Render(nil, "A", testOptions())
	assert.ErrorIs(t, err, ErrNilSurface)

	boom := errors.New("boom")
	_, err = New(1).Render(&failingSurface{Recorder: recorder.New(), beginErr: boom}, "A", testOptions())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "begin surface")

	_, err = New(1).Render(&failingSurface{Recorder: recorder.New(), endErr: boom}, "A", testOptions())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "end surface")
}

func TestRenderTracing(t *testing.T) {
	debug.SetEnabled(true)
	defer debug.SetEnabled(false)

	var buf bytes.Buffer
	session := debug.NewSession(debug.NewJSONSink(&buf))
	require.NotNil(t, session)

	r := New(3)
	opts := testOptions()
	opts.Mode = ModeRandom
	opts.Random = randomOptions(ScopeByType)
	opts.Debug = session

	_, err := r.Render(recorder.New(), "AB", opts)
	require.NoError(t, err)
	require.NoError(t, session.Close())

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, `"event":"Line"`))
	assert.Equal(t, 2, strings.Count(out, `"event":"Glyph"`))
	assert.Equal(t, r.Cache().Len(), strings.Count(out, `"event":"Draw"`))
	assert.Contains(t, out, `"text":"AB"`)
	assert.Contains(t, out, `"mode":"random"`)
}

func BenchmarkRenderStripes(b *testing.B) {
	r := New(1)
	opts := testOptions()
	opts.Mode = ModeStripes
	opts.Width = 2000
	for i := 0; i < b.N; i++ {
		if _, err := r.Render(recorder.New(), "VOID TYPE 2024", opts); err != nil {
			b.Fatal(err)
		}
	}
}
