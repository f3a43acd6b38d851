// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrResample is wrapped by every failure raised while resampling.
	ErrResample = errors.New("resample failed")

	// ErrInvalidRatePair means no resampler can be built for the two rates.
	ErrInvalidRatePair = errors.New("invalid sample rate pair")

	// ErrChunkSize is returned when Process receives a chunk that is not
	// exactly ChunkFrames long.
	ErrChunkSize = errors.New("chunk must hold exactly ChunkFrames samples")

	// ErrNonFinite is returned when a chunk carries NaN or infinite samples.
	ErrNonFinite = errors.New("non-finite sample")
)
