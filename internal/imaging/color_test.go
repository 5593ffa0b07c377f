package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
)

func TestSummarize_Solid(t *testing.T) {
	img := imaging.New(10, 10, color.NRGBA{R: 255, A: 255})

	s := Summarize(img)
	assert.Equal(t, "#ff0000", s.Hex)
	assert.Equal(t, 100, s.Pixels)
	assert.Equal(t, HSLColor{H: 0, S: 100, L: 50}, s.HSL)
}

func TestSummarize_Mean(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{A: 255})
	img.Set(1, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	s := Summarize(img)
	assert.Equal(t, "#808080", s.Hex)
	assert.Equal(t, 0, s.HSL.S)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(image.NewNRGBA(image.Rect(0, 0, 0, 0)))
	assert.Equal(t, "#000000", s.Hex)
	assert.Zero(t, s.Pixels)
}
