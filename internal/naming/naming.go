package naming

import "math"

// Resolve maps a corrected colour measurement to a colour name.
// hue is in degrees [0, 360); saturation and lightness are
// percentages [0, 100]; chroma is the linear-RGB channel spread in
// [0, 1]. Deterministic: identical inputs always yield the identical
// name.
func Resolve(hue, saturation, lightness, chroma float64) string {
	if IsNeutral(chroma, saturation) {
		return GrayscaleBand(lightness)
	}
	return resolveChromatic(hue, saturation, lightness)
}

// resolveChromatic walks the hue-range table and its owning range's
// rule list top-down. Every hue falls into exactly one range, so the
// trailing return is unreachable for normalised input; it guards
// against a malformed table rather than bad input.
func resolveChromatic(hue, saturation, lightness float64) string {
	hue = normalizeHue(hue)
	p := profileOf(saturation, lightness)

	for _, r := range hueRanges {
		if !r.contains(hue) {
			continue
		}
		for _, rule := range r.rules {
			if rule.when(p) {
				return rule.name
			}
		}
		return r.fallback
	}

	return GrayscaleBand(lightness)
}

// normalizeHue wraps an arbitrary hue into [0, 360).
func normalizeHue(hue float64) float64 {
	if math.IsNaN(hue) {
		return 0
	}
	hue = math.Mod(hue, 360.0)
	if hue < 0 {
		hue += 360.0
	}
	return hue
}

// Entry is one taxonomy listing row: a name plus a representative
// hue/saturation/lightness measurement that resolves to it.
type Entry struct {
	Name       string
	Hue        float64 // degrees; -1 for grayscale entries
	Saturation float64 // percent
	Lightness  float64 // percent
}

// Names returns every distinct name in the taxonomy, grayscale bands
// first, then chromatic names in table order. Used by the names
// command and the coverage tests; the engine never calls it.
func Names() []string {
	seen := make(map[string]bool)
	var out []string

	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}

	for _, band := range grayBands {
		add(band.name)
	}
	for _, r := range hueRanges {
		for _, rule := range r.rules {
			add(rule.name)
		}
		add(r.fallback)
	}

	return out
}

// Entries returns one representative measurement per taxonomy name,
// found by probing each hue range across the band grid. Grayscale
// entries carry Hue = -1.
func Entries() []Entry {
	seen := make(map[string]bool)
	var out []Entry

	grayProbe := []float64{96, 85, 72, 55, 37, 20, 6}
	for i, band := range grayBands {
		if !seen[band.name] {
			seen[band.name] = true
			out = append(out, Entry{Name: band.name, Hue: -1, Saturation: 0, Lightness: grayProbe[i]})
		}
	}

	// Probe lightness and saturation values chosen to land in each
	// band combination the rule predicates can distinguish.
	lightProbes := []float64{90, 70, 55, 38, 26, 12}
	satProbes := []float64{92, 78, 60, 42, 28, 16}

	for _, r := range hueRanges {
		mid := rangeMidpoint(r)
		for _, l := range lightProbes {
			for _, s := range satProbes {
				name := resolveChromatic(mid, s, l)
				if !seen[name] {
					seen[name] = true
					out = append(out, Entry{Name: name, Hue: mid, Saturation: s, Lightness: l})
				}
			}
		}
	}

	return out
}

// rangeMidpoint returns a hue inside the range, accounting for wrap.
func rangeMidpoint(r hueRange) float64 {
	if r.from > r.to {
		span := (360 - r.from) + r.to
		return normalizeHue(r.from + span/2)
	}
	return (r.from + r.to) / 2
}
