package blend

import (
	"image"

	"github.com/disintegration/imaging"
)

// PixelBytes flattens img into row-major bytes with layout.Channels bytes per
// pixel, non-premultiplied. A 3-channel layout drops alpha.
func PixelBytes(img image.Image, layout Layout) []byte {
	nrgba := imaging.Clone(img)
	if layout.Channels == 4 {
		return nrgba.Pix
	}

	out := make([]byte, 0, len(nrgba.Pix)/4*layout.Channels)
	for i := 0; i+3 < len(nrgba.Pix); i += 4 {
		out = append(out, nrgba.Pix[i], nrgba.Pix[i+1], nrgba.Pix[i+2])
	}
	return out
}
