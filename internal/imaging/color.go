package imaging

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorSummary is the mean color of an image.
type ColorSummary struct {
	Hex    string // "#rrggbb", alpha excluded
	HSL    HSLColor
	Pixels int
}

// Summarize averages the non-premultiplied RGB values of every pixel in img.
// An empty image summarizes to black.
func Summarize(img image.Image) ColorSummary {
	pix := imaging.Clone(img).Pix

	var r, g, b, n uint64
	for i := 0; i+3 < len(pix); i += 4 {
		r += uint64(pix[i])
		g += uint64(pix[i+1])
		b += uint64(pix[i+2])
		n++
	}
	if n == 0 {
		return ColorSummary{Hex: "#000000"}
	}

	c := colorful.Color{
		R: float64(r) / float64(n) / 255.0,
		G: float64(g) / float64(n) / 255.0,
		B: float64(b) / float64(n) / 255.0,
	}
	h, s, l := c.Hsl()
	return ColorSummary{
		Hex:    c.Hex(),
		HSL:    HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
		Pixels: int(n),
	}
}
