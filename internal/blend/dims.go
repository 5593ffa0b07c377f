package blend

import (
	"fmt"
	"image"
)

// Dimensions is a width/height pair. Pairs are compared by pixel count only,
// never by aspect ratio or by a single axis.
type Dimensions struct {
	Width  int
	Height int
}

// DimensionsOf returns the size of img's bounds.
func DimensionsOf(img image.Image) Dimensions {
	b := img.Bounds()
	return Dimensions{Width: b.Dx(), Height: b.Dy()}
}

// Pixels returns Width*Height.
func (d Dimensions) Pixels() int {
	return d.Width * d.Height
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Smallest returns the pair with strictly fewer pixels. Ties go to b.
func Smallest(a, b Dimensions) Dimensions {
	if a.Pixels() < b.Pixels() {
		return a
	}
	return b
}
