// SPDX-License-Identifier: EPL-2.0

// Package aiff probes and decodes uncompressed AIFF audio held in memory.
//
// Header parsing and sample unpacking go through github.com/go-audio/aiff.
// AIFF stores big-endian signed integers; Decode normalizes 16, 24 and
// 32-bit samples by their positive full scale, the same divisors the wav
// package uses, so both containers feed identical values into the
// pipeline.
//
// AIFC files are never detected. Their compression types range from
// byte-swapped PCM to lossy codecs, and all of them are left to the
// external transcoder.
//
// Detect also refuses files whose chunks (other than SSND) claim more
// bytes than the input holds. Decode stops at the frame count declared in
// the COMM chunk, so trailing chunks are not read as samples.
package aiff
