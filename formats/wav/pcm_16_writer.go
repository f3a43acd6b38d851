// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate. samples must be int16 PCM.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	ws := &writeSeeker{}
	if err := writePCM16(ws, sampleRate, 1, samples); err != nil {
		return err
	}

	if _, err := w.Write(ws.Bytes()); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// writePCM16 encodes interleaved int16 samples through the go-audio
// encoder. The header sizes are patched on Close, which is why ws must be
// seekable.
func writePCM16(ws io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	if sampleRate < 1 || channels < 1 {
		return fmt.Errorf("%w: %d channels at %d Hz", ErrUnsupportedWavLayout, channels, sampleRate)
	}
	if len(samples)%channels != 0 {
		return fmt.Errorf("%w: %d samples do not fill %d-channel frames",
			ErrUnsupportedWavLayout, len(samples), channels)
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	enc := wav.NewEncoder(ws, sampleRate, 16, channels, formatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing header: %w", err)
	}

	return nil
}
