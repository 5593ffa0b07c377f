// Package imaging provides the file-facing half of the interleaver: decoding
// input images, tagging them with their container format, resampling, and
// encoding the combined result back to disk.
//
// # Container Formats
//
// Formats are identified by file extension using the tags from
// github.com/disintegration/imaging (JPEG, PNG, GIF, TIFF, BMP). The tag of
// the first input decides the output encoding, so both inputs must carry the
// same tag before any pixel work starts.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Resamplers are stateless.
//
// # Resampling
//
// Three interchangeable resamplers are available through NewResampler, all
// using a triangle (bilinear) kernel and producing exact target dimensions:
//   - "imaging": github.com/disintegration/imaging (default)
//   - "bild":    github.com/anthonynsimon/bild/transform
//   - "nfnt":    github.com/nfnt/resize
package imaging
