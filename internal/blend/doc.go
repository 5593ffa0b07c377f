// Package blend implements the two-source pixel interleaving engine.
//
// A combination runs in four steps, each exposed on its own so callers can
// test or replace them:
//
//  1. Smallest picks the target dimensions (fewest pixels wins).
//  2. Standardizer resamples whichever image is not already at the target.
//  3. Interleave alternates fixed-size byte groups from the two pixel buffers.
//  4. OutputBuilder reserves the output capacity and commits the result.
//
// # Layout
//
// Layout carries the channel width (3 for RGB, 4 for RGBA) and the
// interleave group size in bytes. The same Layout value must be passed to
// PixelBytes, Interleave and NewOutputBuilder; the capacity check in the
// builder is computed from Layout.Channels, so a buffer extracted with a
// different channel width is reported rather than silently accepted.
//
// # Errors
//
// All failures are returned as wrapped sentinel errors (ErrLengthMismatch,
// ErrBufferTooSmall, ErrAlreadyCommitted, ErrInvalidLayout, ErrResampleSize)
// and can be matched with errors.Is.
package blend
