package blend

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmallest(t *testing.T) {
	tests := []struct {
		name string
		a, b Dimensions
		want Dimensions
	}{
		{"first smaller", Dimensions{10, 10}, Dimensions{20, 20}, Dimensions{10, 10}},
		{"second smaller", Dimensions{640, 480}, Dimensions{320, 240}, Dimensions{320, 240}},
		{"fewer pixels despite wider", Dimensions{1000, 1}, Dimensions{40, 40}, Dimensions{1000, 1}},
		{"tie goes to second", Dimensions{20, 10}, Dimensions{10, 20}, Dimensions{10, 20}},
		{"identical", Dimensions{8, 8}, Dimensions{8, 8}, Dimensions{8, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Smallest(tt.a, tt.b)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, got.Pixels(), tt.a.Pixels())
			assert.LessOrEqual(t, got.Pixels(), tt.b.Pixels())
		})
	}
}

func TestSmallest_Deterministic(t *testing.T) {
	a, b := Dimensions{6, 4}, Dimensions{4, 6}
	for i := 0; i < 10; i++ {
		assert.Equal(t, b, Smallest(a, b))
	}
}

func TestDimensionsOf(t *testing.T) {
	img := image.NewNRGBA(image.Rect(5, 5, 25, 15))
	d := DimensionsOf(img)
	assert.Equal(t, Dimensions{Width: 20, Height: 10}, d)
	assert.Equal(t, 200, d.Pixels())
	assert.Equal(t, "20x10", d.String())
}

func TestLayout_Validate(t *testing.T) {
	assert.NoError(t, DefaultLayout.Validate())
	assert.NoError(t, Layout{Channels: 3, BlockSize: 4}.Validate())
	assert.ErrorIs(t, Layout{Channels: 2, BlockSize: 4}.Validate(), ErrInvalidLayout)
	assert.ErrorIs(t, Layout{Channels: 4, BlockSize: 0}.Validate(), ErrInvalidLayout)
	assert.Equal(t, 2*3*4, DefaultLayout.Capacity(Dimensions{2, 3}))
}
