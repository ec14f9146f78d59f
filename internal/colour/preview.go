package colour

import (
	"fmt"
	"math"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Preview returns an ANSI-coloured preview block for a colour.
// Width specifies how many characters wide the block should be.
func Preview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	r := uint8(math.Round(c.R * 255))
	g := uint8(math.Round(c.G * 255))
	b := uint8(math.Round(c.B * 255))

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, r, g, b, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// PreviewWithText returns a colour preview with a text overlay.
// The text colour is chosen for contrast against the block.
func PreviewWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	r := uint8(math.Round(c.R * 255))
	g := uint8(math.Round(c.G * 255))
	b := uint8(math.Round(c.B * 255))

	// Lightness is a good-enough contrast proxy here; WCAG luminance
	// would be overkill for a text overlay.
	var fg string
	if RGBToHSL(c).L > 0.5 {
		fg = fmt.Sprintf("%s0;0;0%s", ansiFgPrefix, ansiSuffix)
	} else {
		fg = fmt.Sprintf("%s255;255;255%s", ansiFgPrefix, ansiSuffix)
	}

	display := text
	if len(text) > width {
		display = text[:width]
	} else if len(text) < width {
		pad := (width - len(text)) / 2
		display = strings.Repeat(" ", pad) + text + strings.Repeat(" ", width-len(text)-pad)
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, r, g, b, ansiSuffix)
	return bg + fg + display + ansiReset
}
