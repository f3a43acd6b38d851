// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/speechpcm/audio"
	"github.com/ik5/speechpcm/utils"
)

// readSize is the number of samples pulled from go-audio per PCMBuffer call.
const readSize = 4096

// Decode reads the sound data of an AIFF byte slice described by f and
// returns it normalized to [-1, 1], interleaved.
//
// 16, 24 and 32-bit samples are supported. Decoding stops after the frame
// count declared in COMM, and a trailing partial frame is dropped.
func Decode(data []byte, f audio.Format) (audio.Buffer, error) {
	if f.Container != audio.ContainerAIFF {
		return audio.Buffer{}, fmt.Errorf("%w: container %q", ErrNotAiffFile, f.Container)
	}
	if f.Channels < 1 || f.SampleRate < 1 {
		return audio.Buffer{}, fmt.Errorf("%w: %d channels at %d Hz",
			ErrUnsupportedAiffLayout, f.Channels, f.SampleRate)
	}

	scale, ok := utils.FullScale(f.BitsPerSample)
	if !ok || f.Encoding != audio.Integer {
		return audio.Buffer{}, fmt.Errorf("%w: %d-bit %s",
			ErrUnsupportedEncoding, f.BitsPerSample, f.Encoding)
	}

	c, ok := readComm(data)
	if !ok {
		return audio.Buffer{}, ErrUnsupportedAiffChunks
	}

	dec, ok := open(data)
	if !ok {
		return audio.Buffer{}, ErrNotAiffFile
	}

	want := c.frames * f.Channels
	samples := make([]float32, 0, want)
	buf := &goaudio.IntBuffer{
		Format: dec.Format(),
		Data:   make([]int, readSize),
	}

	for len(samples) < want {
		n, err := dec.PCMBuffer(buf)
		for _, v := range buf.Data[:min(n, want-len(samples))] {
			samples = append(samples, utils.IntToFloat32(v, scale))
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return audio.Buffer{}, fmt.Errorf("reading aiff sound data: %w", err)
		}
		if n == 0 {
			break
		}
	}

	frames := len(samples) / f.Channels
	if frames == 0 {
		return audio.Buffer{}, ErrNoFrames
	}

	return audio.Buffer{
		Samples:    samples[:frames*f.Channels],
		Channels:   f.Channels,
		SampleRate: f.SampleRate,
	}, nil
}
