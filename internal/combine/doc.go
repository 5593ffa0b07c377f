// Package combine runs the full two-image interleave: load, format check,
// standardize, interleave, assemble, and encode.
//
// # Stages
//
// Combiner.Run executes the stages in order and stops at the first error:
//
//  1. Load both inputs through the Loader (an imaging.ImageCache in the CLI).
//  2. Reject inputs with different container formats (ErrFormatMismatch).
//  3. Standardize both images to the dimensions with fewer pixels.
//  4. Flatten both to bytes and interleave them using the configured Layout.
//  5. Commit the bytes to an OutputBuilder.
//  6. Encode in the first input's format and write atomically.
//
// Errors from each stage are wrapped with the stage name and keep their
// identity for errors.Is.
package combine
