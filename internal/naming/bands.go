// Package naming maps corrected colour measurements to everyday
// colour vocabulary. The taxonomy is a fixed, ordered data table;
// only its evaluation order is logic.
package naming

// Neutrality thresholds. Both must hold for a sample to be called
// grey: chroma alone misfires on washed-out pastels, saturation alone
// misfires near black where HSL saturation is ill-defined.
const (
	NeutralChroma     = 0.12
	NeutralSaturation = 15.0
)

// IsNeutral reports whether a sample should take the grayscale branch.
// chroma is the corrected linear-RGB channel spread in [0, 1];
// saturation is the HSL saturation as a percentage.
func IsNeutral(chroma, saturation float64) bool {
	return chroma < NeutralChroma && saturation < NeutralSaturation
}

// grayBand is one lightness cut point of the grayscale branch.
type grayBand struct {
	minLightness float64
	name         string
}

// grayBands are evaluated top-down; the first band whose cut point is
// exceeded wins. Ordered from lightest to darkest.
var grayBands = []grayBand{
	{92, "White"},
	{78, "Off-White"},
	{65, "Light Gray"},
	{45, "Gray"},
	{28, "Dark Gray"},
	{12, "Charcoal"},
	{0, "Black"},
}

// GrayscaleBand resolves a lightness percentage to a grayscale name.
func GrayscaleBand(lightness float64) string {
	for _, band := range grayBands {
		if lightness > band.minLightness {
			return band.name
		}
	}
	return "Black"
}

// GrayscaleIndex returns the position of a grayscale name from darkest
// (0, Black) to lightest (6, White), or -1 for chromatic names.
// Exposed so callers can check lightness-ordering behaviour.
func GrayscaleIndex(name string) int {
	for i, band := range grayBands {
		if band.name == name {
			return len(grayBands) - 1 - i
		}
	}
	return -1
}

// profile captures which lightness and saturation bands a measurement
// falls into. Band definitions overlap deliberately; rule order within
// each hue range resolves the ambiguity.
type profile struct {
	veryLight   bool // l > 80
	light       bool // l > 62
	mediumLight bool // l > 45
	medium      bool // l > 32
	dark        bool // l < 32
	veryDark    bool // l < 20

	veryPale  bool // s < 20
	pale      bool // s < 35
	muted     bool // s < 50
	vivid     bool // s > 70
	veryVivid bool // s > 85
}

// profileOf computes the band profile for saturation and lightness
// percentages in [0, 100].
func profileOf(saturation, lightness float64) profile {
	return profile{
		veryLight:   lightness > 80,
		light:       lightness > 62,
		mediumLight: lightness > 45,
		medium:      lightness > 32,
		dark:        lightness < 32,
		veryDark:    lightness < 20,

		veryPale:  saturation < 20,
		pale:      saturation < 35,
		muted:     saturation < 50,
		vivid:     saturation > 70,
		veryVivid: saturation > 85,
	}
}
