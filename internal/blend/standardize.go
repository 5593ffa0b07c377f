package blend

import (
	"image"
	"log"

	"github.com/pkg/errors"
)

// Resampler resizes an image to exactly width x height.
//
// Implementations must use an interpolating kernel and must not crop.
type Resampler interface {
	Resample(img image.Image, width, height int) (image.Image, error)
}

// ResamplerFunc adapts an ordinary function to the Resampler interface.
type ResamplerFunc func(img image.Image, width, height int) (image.Image, error)

// Resample calls f(img, width, height).
func (f ResamplerFunc) Resample(img image.Image, width, height int) (image.Image, error) {
	return f(img, width, height)
}

// Standardizer brings two images to the same dimensions by resampling the
// larger one down (or the differently shaped one across) to the pair with
// fewer pixels.
type Standardizer struct {
	resampler Resampler
	logger    *log.Logger
}

// NewStandardizer creates a Standardizer. A nil logger uses log.Default().
func NewStandardizer(r Resampler, logger *log.Logger) *Standardizer {
	if logger == nil {
		logger = log.Default()
	}
	return &Standardizer{resampler: r, logger: logger}
}

// Standardize returns a and b at identical dimensions.
//
// If b already has the negotiated dimensions, a is resampled and b is
// returned as given; otherwise b is resampled and a is returned as given.
// When both already match, neither is touched.
func (s *Standardizer) Standardize(a, b image.Image) (image.Image, image.Image, error) {
	dimA, dimB := DimensionsOf(a), DimensionsOf(b)
	target := Smallest(dimA, dimB)
	s.logger.Printf("negotiated dimensions width=%d height=%d", target.Width, target.Height)

	if dimB == target {
		if dimA == target {
			return a, b, nil
		}
		resized, err := s.resample(a, target)
		if err != nil {
			return nil, nil, errors.Wrap(err, "resample first image")
		}
		return resized, b, nil
	}

	resized, err := s.resample(b, target)
	if err != nil {
		return nil, nil, errors.Wrap(err, "resample second image")
	}
	return a, resized, nil
}

func (s *Standardizer) resample(img image.Image, target Dimensions) (image.Image, error) {
	out, err := s.resampler.Resample(img, target.Width, target.Height)
	if err != nil {
		return nil, err
	}
	if got := DimensionsOf(out); got != target {
		return nil, errors.Wrapf(ErrResampleSize, "want %s, got %s", target, got)
	}
	return out, nil
}
