package colour

import "math"

// achromaticEpsilon is the channel spread below which a sample is
// treated as fully achromatic, avoiding a division by a near-zero
// delta in the saturation and hue formulas.
const achromaticEpsilon = 0.001

// HSL is a derived colour representation: hue in [0, 1), saturation
// and lightness in [0, 1]. Never stored; computed per sample.
type HSL struct {
	H float64
	S float64
	L float64
}

// HueDegrees returns the hue scaled to [0, 360).
func (h HSL) HueDegrees() float64 {
	return h.H * 360.0
}

// RGBToHSL converts a unit RGB triple to HSL.
// Pure and bit-reproducible for identical inputs; all arithmetic is
// double precision. delta <= achromaticEpsilon yields s=0, h=0.
func RGBToHSL(c RGB) HSL {
	maxVal := maxChannel(c)
	minVal := minChannel(c)
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0

	if delta <= achromaticEpsilon {
		return HSL{H: 0, S: 0, L: l}
	}

	s := delta / (1.0 - math.Abs(2.0*l-1.0))
	s = math.Max(0.0, math.Min(1.0, s))

	var h float64
	switch maxVal {
	case c.R:
		h = math.Mod((c.G-c.B)/delta, 6.0)
	case c.G:
		h = (c.B-c.R)/delta + 2.0
	case c.B:
		h = (c.R-c.G)/delta + 4.0
	}

	h /= 6.0
	if h < 0 {
		h += 1.0
	}

	return HSL{H: h, S: s, L: l}
}

// HSLToRGB converts HSL back to a unit RGB triple.
// h is in [0, 1); s and l are in [0, 1]. Used by the taxonomy listing
// and preview paths, not by the classification pipeline itself.
func HSLToRGB(h, s, l float64) RGB {
	if s == 0 {
		return RGB{R: l, G: l, B: l}
	}

	var q float64
	if l < 0.5 {
		q = l * (1.0 + s)
	} else {
		q = l + s - l*s
	}
	p := 2.0*l - q

	return RGB{
		R: hueToChannel(p, q, h+1.0/3.0),
		G: hueToChannel(p, q, h),
		B: hueToChannel(p, q, h-1.0/3.0),
	}
}

// hueToChannel is a helper for HSL to RGB conversion.
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t += 1.0
	}
	if t >= 1.0 {
		t -= 1.0
	}

	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6.0*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6.0
	default:
		return p
	}
}
