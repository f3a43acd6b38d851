// SPDX-License-Identifier: EPL-2.0

package speechpcm

import "errors"

var (
	// ErrNoFrames indicates a codec decoded the input into zero frames.
	ErrNoFrames = errors.New("decoded audio holds no frames")
)
