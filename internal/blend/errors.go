package blend

import "github.com/pkg/errors"

var (
	// ErrLengthMismatch is returned when the two interleave sources differ in length.
	ErrLengthMismatch = errors.New("interleave sources differ in length")

	// ErrBufferTooSmall is returned when committed data exceeds the reserved capacity.
	ErrBufferTooSmall = errors.New("output buffer too small")

	// ErrAlreadyCommitted is returned by a second Commit on the same builder.
	ErrAlreadyCommitted = errors.New("output already committed")

	// ErrInvalidLayout is returned for a channel width or block size that cannot be used.
	ErrInvalidLayout = errors.New("invalid pixel layout")

	// ErrResampleSize is returned when a Resampler produces an image of the wrong size.
	ErrResampleSize = errors.New("resampler returned unexpected dimensions")
)
