package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"github.com/ironsheep/image-interleave/internal/blend"
)

// Resampler names accepted by NewResampler.
const (
	ResamplerImaging = "imaging"
	ResamplerBild    = "bild"
	ResamplerNfnt    = "nfnt"
)

// ResamplerNames lists the accepted resampler names, default first.
var ResamplerNames = []string{ResamplerImaging, ResamplerBild, ResamplerNfnt}

// NewResampler returns the named triangle-kernel resampler. An empty name
// selects the default.
func NewResampler(name string) (blend.Resampler, error) {
	switch name {
	case "", ResamplerImaging:
		return imagingResampler{}, nil
	case ResamplerBild:
		return bildResampler{}, nil
	case ResamplerNfnt:
		return nfntResampler{}, nil
	default:
		return nil, errors.Errorf("unknown resampler %q", name)
	}
}

func checkTarget(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Errorf("invalid target dimensions: width=%d, height=%d", width, height)
	}
	return nil
}

type imagingResampler struct{}

func (imagingResampler) Resample(img image.Image, width, height int) (image.Image, error) {
	if err := checkTarget(width, height); err != nil {
		return nil, err
	}
	return imaging.Resize(img, width, height, imaging.Linear), nil
}

type bildResampler struct{}

func (bildResampler) Resample(img image.Image, width, height int) (image.Image, error) {
	if err := checkTarget(width, height); err != nil {
		return nil, err
	}
	return transform.Resize(img, width, height, transform.Linear), nil
}

type nfntResampler struct{}

func (nfntResampler) Resample(img image.Image, width, height int) (image.Image, error) {
	if err := checkTarget(width, height); err != nil {
		return nil, err
	}
	return resize.Resize(uint(width), uint(height), img, resize.Bilinear), nil
}
