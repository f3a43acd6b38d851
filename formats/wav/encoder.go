// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/ik5/speechpcm/utils"
)

// Encode quantizes normalized samples to signed 16-bit PCM and returns a
// complete WAV file. Samples are clamped to [-1, 1], scaled by 32767 and
// truncated toward zero. NaN becomes silence. Failures wrap ErrEncode.
func Encode(samples []float32, sampleRate, channels int) ([]byte, error) {
	pcm := utils.Float32sToInt16(nil, samples)

	ws := &writeSeeker{buf: make([]byte, 0, 44+2*len(pcm))}
	if err := writePCM16(ws, sampleRate, channels, pcm); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}

	return ws.Bytes(), nil
}

// writeSeeker implements io.WriteSeeker over a growing byte slice.
type writeSeeker struct {
	buf []byte
	pos int64
}

func (ws *writeSeeker) Write(p []byte) (int, error) {
	end := ws.pos + int64(len(p))
	if end > int64(len(ws.buf)) {
		if end > int64(cap(ws.buf)) {
			grown := make([]byte, end, max(end, 2*int64(cap(ws.buf))))
			copy(grown, ws.buf)
			ws.buf = grown
		} else {
			ws.buf = ws.buf[:end]
		}
	}

	copy(ws.buf[ws.pos:], p)
	ws.pos = end

	return len(p), nil
}

func (ws *writeSeeker) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = ws.pos + offset
	case io.SeekEnd:
		newOffset = int64(len(ws.buf)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position")
	}

	ws.pos = newOffset
	return newOffset, nil
}

// Bytes returns everything written so far.
func (ws *writeSeeker) Bytes() []byte { return ws.buf }
