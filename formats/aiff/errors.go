// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the input or format is not an uncompressed AIFF
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedAiffLayout indicates zero channels or a zero sample rate
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")

	// ErrUnsupportedAiffChunks indicates a missing COMM chunk or a chunk
	// that runs past the end of the input
	ErrUnsupportedAiffChunks = errors.New("unsupported or malformed AIFF chunks")

	// ErrUnsupportedEncoding indicates a bit depth other than 16, 24 or 32
	ErrUnsupportedEncoding = errors.New("unsupported AIFF sample encoding")

	// ErrNoFrames indicates the sound data holds no complete frame
	ErrNoFrames = errors.New("AIFF sound data holds no complete frame")
)
