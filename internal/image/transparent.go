package imagepkg

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// DefaultKeyThreshold tolerates the compression noise around a flat white
// logo background.
const DefaultKeyThreshold = 30.0

// White is the key color of a logo on a plain white background.
func White() color.NRGBA {
	return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
}

// RemoveBackground returns a copy of img where every pixel whose RGB
// distance to key is below threshold is made fully transparent.
func RemoveBackground(img image.Image, key color.NRGBA, threshold float64) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 0; i+3 < len(out.Pix); i += 4 {
		dr := float64(out.Pix[i]) - float64(key.R)
		dg := float64(out.Pix[i+1]) - float64(key.G)
		db := float64(out.Pix[i+2]) - float64(key.B)
		if math.Sqrt(dr*dr+dg*dg+db*db) < threshold {
			out.Pix[i+3] = 0
		}
	}
	return out
}
