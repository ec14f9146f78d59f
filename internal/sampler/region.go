// Package sampler turns pixel data into the single RGB samples the
// classification engine consumes. Averaging a neighbourhood here is
// the only step whose cost scales with image size; the engine itself
// only ever sees one triple per frame.
package sampler

import (
	"image"

	"github.com/jmylchreest/huesight/internal/colour"
)

// DefaultRadius is the neighbourhood half-width used when the caller
// does not specify one.
const DefaultRadius = 5

// RegionAverage averages the square pixel neighbourhood of the given
// radius centred on (x, y), clipped to the image bounds, into one RGB
// sample. A zero-area intersection yields black.
func RegionAverage(img image.Image, x, y, radius int) colour.RGB {
	if radius < 0 {
		radius = 0
	}

	bounds := img.Bounds()
	region := image.Rect(x-radius, y-radius, x+radius+1, y+radius+1).Intersect(bounds)
	if region.Empty() {
		return colour.RGB{}
	}

	var sumR, sumG, sumB float64
	for py := region.Min.Y; py < region.Max.Y; py++ {
		for px := region.Min.X; px < region.Max.X; px++ {
			r, g, b, _ := img.At(px, py).RGBA()
			sumR += float64(r) / 65535.0
			sumG += float64(g) / 65535.0
			sumB += float64(b) / 65535.0
		}
	}

	n := float64(region.Dx() * region.Dy())
	return colour.RGB{R: sumR / n, G: sumG / n, B: sumB / n}
}

// CenterAverage samples the neighbourhood around the image centre.
func CenterAverage(img image.Image, radius int) colour.RGB {
	bounds := img.Bounds()
	cx := bounds.Min.X + bounds.Dx()/2
	cy := bounds.Min.Y + bounds.Dy()/2
	return RegionAverage(img, cx, cy, radius)
}
