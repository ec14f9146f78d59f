package colour

import (
	"math"
	"testing"
)

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name  string
		in    RGB
		wantH float64 // degrees
		wantS float64
		wantL float64
	}{
		{name: "pure red", in: RGB{R: 1, G: 0, B: 0}, wantH: 0, wantS: 1, wantL: 0.5},
		{name: "pure green", in: RGB{R: 0, G: 1, B: 0}, wantH: 120, wantS: 1, wantL: 0.5},
		{name: "pure blue", in: RGB{R: 0, G: 0, B: 1}, wantH: 240, wantS: 1, wantL: 0.5},
		{name: "dark green", in: RGB{R: 0, G: 0.5, B: 0}, wantH: 120, wantS: 1, wantL: 0.25},
		{name: "white", in: RGB{R: 1, G: 1, B: 1}, wantH: 0, wantS: 0, wantL: 1},
		{name: "black", in: RGB{R: 0, G: 0, B: 0}, wantH: 0, wantS: 0, wantL: 0},
		{name: "mid gray", in: RGB{R: 0.5, G: 0.5, B: 0.5}, wantH: 0, wantS: 0, wantL: 0.5},
		{name: "magenta wraps negative hue", in: RGB{R: 1, G: 0, B: 1}, wantH: 300, wantS: 1, wantL: 0.5},
		{name: "orange", in: RGB{R: 1, G: 0.5, B: 0}, wantH: 30, wantS: 1, wantL: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSL(tt.in)
			if math.Abs(got.HueDegrees()-tt.wantH) > 0.01 {
				t.Errorf("hue: got %.3f, want %.3f", got.HueDegrees(), tt.wantH)
			}
			if math.Abs(got.S-tt.wantS) > 0.001 {
				t.Errorf("saturation: got %.4f, want %.4f", got.S, tt.wantS)
			}
			if math.Abs(got.L-tt.wantL) > 0.001 {
				t.Errorf("lightness: got %.4f, want %.4f", got.L, tt.wantL)
			}
		})
	}
}

func TestRGBToHSLNearAchromatic(t *testing.T) {
	// A channel spread at or below the epsilon must short-circuit to
	// s=0, h=0 instead of dividing by a near-zero delta.
	in := RGB{R: 0.5, G: 0.5005, B: 0.5}
	got := RGBToHSL(in)
	if got.S != 0 || got.H != 0 {
		t.Errorf("expected achromatic result, got h=%.4f s=%.4f", got.H, got.S)
	}
}

func TestRGBToHSLDeterministic(t *testing.T) {
	in := RGB{R: 0.123456789, G: 0.987654321, B: 0.555555555}
	first := RGBToHSL(in)
	for i := 0; i < 100; i++ {
		if got := RGBToHSL(in); got != first {
			t.Fatalf("conversion not bit-reproducible: %+v != %+v", got, first)
		}
	}
}

func TestRGBToHSLNeverNaN(t *testing.T) {
	inputs := []RGB{
		{R: 0, G: 0, B: 0},
		{R: 1, G: 1, B: 1},
		{R: 1, G: 0, B: 0},
		{R: 0.0001, G: 0, B: 0},
		{R: 0.999, G: 1, B: 0.998},
	}
	for _, in := range inputs {
		got := RGBToHSL(in)
		if math.IsNaN(got.H) || math.IsNaN(got.S) || math.IsNaN(got.L) ||
			math.IsInf(got.H, 0) || math.IsInf(got.S, 0) || math.IsInf(got.L, 0) {
			t.Errorf("RGBToHSL(%+v) produced NaN/Inf: %+v", in, got)
		}
	}
}

func TestHSLRoundTrip(t *testing.T) {
	colours := []RGB{
		{R: 1, G: 0, B: 0},
		{R: 0.2, G: 0.6, B: 0.4},
		{R: 0.9, G: 0.5, B: 0.5},
		{R: 0.1, G: 0.1, B: 0.8},
		{R: 0.7, G: 0.7, B: 0.2},
	}
	for _, c := range colours {
		hsl := RGBToHSL(c)
		back := HSLToRGB(hsl.H, hsl.S, hsl.L)
		if math.Abs(back.R-c.R) > 0.01 || math.Abs(back.G-c.G) > 0.01 || math.Abs(back.B-c.B) > 0.01 {
			t.Errorf("round trip drifted: %+v -> %+v", c, back)
		}
	}
}

func TestNewRGBClamps(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    RGB
	}{
		{name: "above range", r: 2.5, g: 1.1, b: 1.0, want: RGB{R: 1, G: 1, B: 1}},
		{name: "below range", r: -0.5, g: -1, b: 0.25, want: RGB{R: 0, G: 0, B: 0.25}},
		{name: "NaN collapses to zero", r: math.NaN(), g: 0.5, b: 0.5, want: RGB{R: 0, G: 0.5, B: 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewRGB(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestChroma(t *testing.T) {
	if got := (RGB{R: 0.9, G: 0.3, B: 0.5}).Chroma(); math.Abs(got-0.6) > 1e-12 {
		t.Errorf("chroma: got %.4f, want 0.6", got)
	}
	if got := (RGB{R: 0.4, G: 0.4, B: 0.4}).Chroma(); got != 0 {
		t.Errorf("gray chroma: got %.4f, want 0", got)
	}
}

func TestScaleCapsAtOne(t *testing.T) {
	c := RGB{R: 0.8, G: 0.5, B: 0.1}
	scaled := c.Scale([3]float64{2.0, 1.0, 0.5})
	want := RGB{R: 1.0, G: 0.5, B: 0.05}
	if math.Abs(scaled.R-want.R) > 1e-12 || math.Abs(scaled.G-want.G) > 1e-12 || math.Abs(scaled.B-want.B) > 1e-12 {
		t.Errorf("got %+v, want %+v", scaled, want)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    RGB
		wantErr bool
	}{
		{name: "six digit", in: "#ff8000", want: RGB{R: 1, G: 128.0 / 255.0, B: 0}},
		{name: "no hash", in: "00ff00", want: RGB{R: 0, G: 1, B: 0}},
		{name: "short form", in: "#f00", want: RGB{R: 1, G: 0, B: 0}},
		{name: "uppercase", in: "#FFFFFF", want: RGB{R: 1, G: 1, B: 1}},
		{name: "bad digit", in: "#zzzzzz", wantErr: true},
		{name: "bad length", in: "#ffff", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got.R-tt.want.R) > 1e-9 || math.Abs(got.G-tt.want.G) > 1e-9 || math.Abs(got.B-tt.want.B) > 1e-9 {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := RGB{R: 1, G: 128.0 / 255.0, B: 0}
	if got := c.Hex(); got != "#ff8000" {
		t.Errorf("Hex: got %q, want %q", got, "#ff8000")
	}
}
