package editor

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/sfx-editor/pkg/sfx"
)

// byteEpsilon keeps n/255 mapping back to n despite float rounding.
const byteEpsilon = 1e-9

// ToByte maps a 0-1 channel value to 0-255 by truncation. Out of range
// values are clamped.
func ToByte(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + byteEpsilon)
}

// FromByte maps a 0-255 component back to 0-1.
func FromByte(b uint8) float64 {
	return float64(b) / 255
}

// RGB8 returns the red, green and blue channels as bytes.
func (c *Channels) RGB8() (r, g, b uint8) {
	return ToByte(c.Get(sfx.Red)), ToByte(c.Get(sfx.Green)), ToByte(c.Get(sfx.Blue))
}

// SetRGB8 sets red, green and blue from a colour chooser result.
func (c *Channels) SetRGB8(r, g, b uint8) {
	c.SetRGB(FromByte(r), FromByte(g), FromByte(b))
}

// Hex returns the RGB part of col as an upper case "#RRGGBB" string.
func Hex(col sfx.Color) string {
	rgb := colorful.Color{
		R: FromByte(ToByte(col[sfx.Red])),
		G: FromByte(ToByte(col[sfx.Green])),
		B: FromByte(ToByte(col[sfx.Blue])),
	}
	return strings.ToUpper(rgb.Hex())
}

// ParseHex parses "#RRGGBB", "RRGGBB" or "#RGB" into 0-1 channel values.
func ParseHex(s string) (r, g, b float64, err error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	col, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("parse colour %q: %w", s, err)
	}
	return col.R, col.G, col.B, nil
}
