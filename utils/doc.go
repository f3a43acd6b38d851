// SPDX-License-Identifier: EPL-2.0

// Package utils holds the sample-level conversions shared by the decoders
// and the encoder: integer PCM normalization by bit depth, 24-bit sign
// extension, and the clamping float to 16-bit quantizer.
package utils
