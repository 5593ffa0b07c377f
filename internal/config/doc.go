// Package config loads interleaver settings from defaults, an optional YAML
// file, and environment variables, in that order of precedence (last wins).
//
// # Sources
//
//   - DefaultConfig: RGBA layout with 4-byte groups, the imaging resampler,
//     JPEG quality 95.
//   - IMAGE_INTERLEAVE_CONFIG: path to a YAML file. When the variable is set
//     the file must exist.
//   - IMAGE_INTERLEAVE_LOG_LEVEL, _CHANNELS, _BLOCK_SIZE, _RESAMPLER: single
//     field overrides. Numeric values that do not parse are errors.
//
// # Errors
//
// Load never falls back to a default for a value the user supplied; an
// unreadable file, a malformed value, or a failed Validate all stop the run.
package config
