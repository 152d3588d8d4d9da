package voidtype

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/ryanlewis/voidtype/internal/common"
	"github.com/ryanlewis/voidtype/internal/debug"
	"github.com/ryanlewis/voidtype/internal/surface/rastersurface"
)

// Export writes the current text as an SVG document: the canvas size as
// viewBox, the background rect when set, and one group per glyph. It uses
// the session's random cache, so it matches the last preview exactly.
// Empty text returns ErrEmptyText and writes nothing.
func (s *Session) Export(w io.Writer) error {
	data, err := s.ExportSVG()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ExportSVG is Export into memory.
func (s *Session) ExportSVG() ([]byte, error) {
	return s.exportBytes(BackendSVG)
}

// ExportPNG renders the current text to a PNG image.
func (s *Session) ExportPNG() ([]byte, error) {
	return s.exportBytes(BackendPNG)
}

func (s *Session) exportBytes(backend string) ([]byte, error) {
	if s.text == "" {
		s.trace.Emit("export", "Error", debug.ErrorData{Type: "export", Message: ErrEmptyText.Error()})
		return nil, ErrEmptyText
	}
	var buf bytes.Buffer
	if _, err := s.RenderTo(backend, &buf); err != nil {
		return nil, fmt.Errorf("export %s: %w", backend, err)
	}
	s.trace.Emit("export", "Done", debug.ExportData{Backend: backend, Bytes: buf.Len()})
	common.Logger().Debug("export", "backend", backend, "bytes", buf.Len())
	return buf.Bytes(), nil
}

// Thumbnail renders the current text and scales it to fit within
// maxW x maxH, keeping the aspect ratio.
func (s *Session) Thumbnail(maxW, maxH int) (image.Image, error) {
	if s.text == "" {
		return nil, ErrEmptyText
	}
	if maxW < 1 || maxH < 1 {
		return nil, fmt.Errorf("%w: thumbnail bounds %dx%d", ErrInvalidParams, maxW, maxH)
	}
	surf := rastersurface.New(nil)
	if _, err := s.render(surf); err != nil {
		return nil, fmt.Errorf("thumbnail: %w", err)
	}
	return rastersurface.Thumbnail(surf.Image(), maxW, maxH), nil
}

// Saver hands exported bytes to the host, such as a download prompt or a
// file on disk.
type Saver interface {
	Save(ctx context.Context, name string, data []byte) error
}

// SaverFunc adapts a function to Saver.
type SaverFunc func(ctx context.Context, name string, data []byte) error

// Save calls f.
func (f SaverFunc) Save(ctx context.Context, name string, data []byte) error {
	return f(ctx, name, data)
}

// FileSaver writes exports into Dir.
type FileSaver struct {
	Dir string
	// Perm defaults to 0o644
	Perm os.FileMode
}

// Save writes data to Dir/name. name must be a bare file name.
func (f FileSaver) Save(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return fmt.Errorf("invalid file name %q", name)
	}
	perm := f.Perm
	if perm == 0 {
		perm = 0o644
	}
	return os.WriteFile(filepath.Join(f.Dir, name), data, perm)
}

// Save exports the current text and hands it to saver. The format follows
// the extension of name (.png for PNG, SVG otherwise); an empty name is
// derived from the text.
func (s *Session) Save(ctx context.Context, saver Saver, name string) error {
	if name == "" {
		name = FileName(s.text, ".svg")
	}
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(name), ".png") {
		data, err = s.ExportPNG()
	} else {
		data, err = s.ExportSVG()
	}
	if err != nil {
		return err
	}
	if err := saver.Save(ctx, name, data); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	s.trace.Emit("export", "Saved", debug.ExportData{Backend: filepath.Ext(name), Bytes: len(data), Name: name})
	return nil
}

// FileName builds a file name from text: letters and digits kept, runs of
// anything else folded to one dash, at most 32 runes, "void" when nothing
// is left.
func FileName(text, ext string) string {
	var b strings.Builder
	n := 0
	dash := false
	for _, r := range strings.ToLower(text) {
		if n >= 32 {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
				n++
			}
			b.WriteRune(r)
			n++
			dash = false
			continue
		}
		dash = true
	}
	name := b.String()
	if name == "" {
		name = "void"
	}
	return name + ext
}

// EncodePNG writes img as PNG; a convenience for thumbnails.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
