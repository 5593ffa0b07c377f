package blend

import "github.com/pkg/errors"

// Layout describes how decoded pixels are flattened and interleaved.
type Layout struct {
	// Channels is the number of bytes per pixel: 3 (RGB) or 4 (RGBA).
	Channels int `yaml:"channels"`

	// BlockSize is the interleave group size in bytes.
	BlockSize int `yaml:"blockSize"`
}

// DefaultLayout is RGBA pixels interleaved one pixel (4 bytes) at a time.
var DefaultLayout = Layout{Channels: 4, BlockSize: 4}

// Validate reports whether l can be used for extraction and interleaving.
func (l Layout) Validate() error {
	if l.Channels != 3 && l.Channels != 4 {
		return errors.Wrapf(ErrInvalidLayout, "channels must be 3 or 4, got %d", l.Channels)
	}
	if l.BlockSize <= 0 {
		return errors.Wrapf(ErrInvalidLayout, "block size must be positive, got %d", l.BlockSize)
	}
	return nil
}

// Capacity returns the byte capacity of a buffer holding d in this layout.
func (l Layout) Capacity(d Dimensions) int {
	return d.Pixels() * l.Channels
}
