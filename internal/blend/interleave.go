package blend

import "github.com/pkg/errors"

// Interleave combines two equal-length pixel buffers by alternating
// BlockSize-byte groups between them.
//
// The group starting at byte offset i is copied from a[i:i+BlockSize] when
// i is a multiple of 2*BlockSize, and from b[i:i+BlockSize] otherwise. Each
// group is read from the same offset it is written to, so with the default
// layout every even pixel comes from a and every odd pixel from b. A trailing
// group shorter than BlockSize is copied up to the end of the buffer.
//
// Parameters:
//   - a: Pixel bytes of the first image. Supplies the groups at even
//     group positions.
//   - b: Pixel bytes of the second image. Must be the same length as a.
//   - layout: Only BlockSize is used here.
//
// Returns:
//   - []byte: A new buffer of len(a) bytes. Neither input is modified.
//   - error: Non-nil if the inputs cannot be interleaved.
//
// # Errors
//
//   - ErrInvalidLayout if layout.BlockSize <= 0
//   - ErrLengthMismatch if len(a) != len(b), before any byte is copied
func Interleave(a, b []byte, layout Layout) ([]byte, error) {
	if layout.BlockSize <= 0 {
		return nil, errors.Wrapf(ErrInvalidLayout, "block size must be positive, got %d", layout.BlockSize)
	}
	if len(a) != len(b) {
		return nil, errors.Wrapf(ErrLengthMismatch, "first=%d second=%d", len(a), len(b))
	}

	block := layout.BlockSize
	period := 2 * block
	out := make([]byte, len(a))
	for i := 0; i < len(out); i += block {
		end := i + block
		if end > len(out) {
			end = len(out)
		}
		src := b
		if i%period == 0 {
			src = a
		}
		copy(out[i:end], src[i:end])
	}
	return out, nil
}
