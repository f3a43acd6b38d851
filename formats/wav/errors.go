// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrUnsupportedEncoding  = errors.New("unsupported WAV sample encoding")
	ErrNoPCMData            = errors.New("WAV data chunk not found")
	ErrNoFrames             = errors.New("WAV data chunk holds no complete frame")
	ErrEncode               = errors.New("WAV encoding failed")
)
