package surface

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrBadColor is returned for a colour string ParseHex cannot read.
var ErrBadColor = errors.New("bad colour")

// ParseHex reads "#rgb", "#rrggbb" or "#rrggbbaa" (the # is optional).
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]}) + "ff"
	case 6:
		h += "ff"
	case 8:
	default:
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Hex formats c as "#rrggbb", dropping alpha.
func Hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// Opacity returns the alpha of c in [0, 1].
func Opacity(c color.Color) float64 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float64(n.A) / 255
}
