// Package colour provides the numeric colour primitives used by the
// classification engine: a unit-interval RGB triple, chroma, and
// conversions between RGB and HSL colour spaces.
package colour

import (
	"fmt"
	"image/color"
	"math"
)

// RGB is a colour sample with each channel in [0.0, 1.0].
// Values are stored as float64 so repeated white-balance corrections
// do not accumulate quantisation drift.
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// NewRGB constructs an RGB triple, clamping each channel into [0, 1].
// Out-of-range input is clamped rather than rejected so the real-time
// pipeline never has an error path for numeric input.
func NewRGB(r, g, b float64) RGB {
	return RGB{
		R: clamp01(r),
		G: clamp01(g),
		B: clamp01(b),
	}
}

// Clamp returns a copy with every channel forced into [0, 1].
// NaN channels collapse to 0.
func (c RGB) Clamp() RGB {
	return NewRGB(c.R, c.G, c.B)
}

// Chroma returns max(R,G,B) - min(R,G,B), a fast proxy for how
// colourful the sample is. It is more reliable than HSL saturation
// near black, where saturation is ill-defined.
func (c RGB) Chroma() float64 {
	return maxChannel(c) - minChannel(c)
}

// Scale multiplies each channel by the matching factor, capping the
// result at 1.0. Used to apply white-balance correction.
func (c RGB) Scale(factors [3]float64) RGB {
	return RGB{
		R: math.Min(1.0, c.R*factors[0]),
		G: math.Min(1.0, c.G*factors[1]),
		B: math.Min(1.0, c.B*factors[2]),
	}
}

// ToColor converts to a standard library colour with full opacity.
func (c RGB) ToColor() color.Color {
	return color.RGBA{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
		A: 255,
	}
}

// FromColor converts a standard library colour to a unit RGB triple.
// Alpha is ignored; the sampler premultiplies before averaging.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{
		R: float64(r) / 65535.0,
		G: float64(g) / 65535.0,
		B: float64(b) / 65535.0,
	}
}

// Hex returns the colour as a lowercase #rrggbb string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(math.Round(c.R*255)),
		uint8(math.Round(c.G*255)),
		uint8(math.Round(c.B*255)))
}

// String returns the colour as rgb(r, g, b) with 8-bit channels.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)",
		uint8(math.Round(c.R*255)),
		uint8(math.Round(c.G*255)),
		uint8(math.Round(c.B*255)))
}

// ParseHex parses #rgb, #rrggbb, rgb or rrggbb into an RGB triple.
func ParseHex(s string) (RGB, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}

	switch len(s) {
	case 3:
		r, okR := hexNibble(s[0])
		g, okG := hexNibble(s[1])
		b, okB := hexNibble(s[2])
		if !okR || !okG || !okB {
			return RGB{}, fmt.Errorf("invalid hex colour: %q", s)
		}
		return RGB{
			R: float64(r*16+r) / 255.0,
			G: float64(g*16+g) / 255.0,
			B: float64(b*16+b) / 255.0,
		}, nil
	case 6:
		var ch [3]float64
		for i := 0; i < 3; i++ {
			hi, okHi := hexNibble(s[i*2])
			lo, okLo := hexNibble(s[i*2+1])
			if !okHi || !okLo {
				return RGB{}, fmt.Errorf("invalid hex colour: %q", s)
			}
			ch[i] = float64(hi*16+lo) / 255.0
		}
		return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
	default:
		return RGB{}, fmt.Errorf("invalid hex colour length: %q", s)
	}
}

// hexNibble converts a single hex digit to its value.
func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0.0, math.Min(1.0, v))
}

func maxChannel(c RGB) float64 {
	return math.Max(c.R, math.Max(c.G, c.B))
}

func minChannel(c RGB) float64 {
	return math.Min(c.R, math.Min(c.G, c.B))
}
