package voidtype

import (
	"log/slog"

	"github.com/ryanlewis/voidtype/internal/common"
)

// SetLogger sets the logger for voidtype and its internal packages. By
// default nothing is logged; pass nil to return to that.
//
// Levels in use:
//   - Debug: per-render counts, parameter changes, exports
//   - Info: runes drawn as space for lack of a glyph
//   - Warn: alphabet entries accepted with a caveat
//
// Example:
//
//	voidtype.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
func SetLogger(l *slog.Logger) {
	common.SetLogger(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return common.Logger()
}
