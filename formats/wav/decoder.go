// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/wav"
	"github.com/ik5/speechpcm/audio"
	"github.com/ik5/speechpcm/utils"
)

// sampleFunc converts one little-endian sample at the start of b.
type sampleFunc func(b []byte) float32

// Decode reads the data chunk of a WAV byte slice described by f and
// returns its samples normalized to [-1, 1], still interleaved.
//
// Supported encodings are 16, 24 (packed) and 32-bit signed integers and
// 32-bit IEEE float. Everything else returns ErrUnsupportedEncoding.
// A data chunk that ends mid-frame is cut to whole frames.
func Decode(data []byte, f audio.Format) (audio.Buffer, error) {
	if f.Container != audio.ContainerWAV {
		return audio.Buffer{}, fmt.Errorf("%w: container %q", ErrNotWavFile, f.Container)
	}
	if f.Channels < 1 || f.SampleRate < 1 {
		return audio.Buffer{}, fmt.Errorf("%w: %d channels at %d Hz",
			ErrUnsupportedWavLayout, f.Channels, f.SampleRate)
	}

	width, conv, err := sampleDecoder(f)
	if err != nil {
		return audio.Buffer{}, err
	}

	dec := wav.NewDecoder(bytes.NewReader(data))
	if err := dec.FwdToPCM(); err != nil {
		return audio.Buffer{}, fmt.Errorf("%w: %w", ErrNoPCMData, err)
	}
	if dec.PCMChunk == nil {
		return audio.Buffer{}, ErrNoPCMData
	}

	pcm, err := io.ReadAll(io.LimitReader(dec.PCMChunk, int64(dec.PCMChunk.Size)))
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("reading wav data chunk: %w", err)
	}

	frames := len(pcm) / (width * f.Channels)
	if frames == 0 {
		return audio.Buffer{}, ErrNoFrames
	}

	samples := make([]float32, frames*f.Channels)
	for i := range samples {
		samples[i] = conv(pcm[i*width:])
	}

	return audio.Buffer{
		Samples:    samples,
		Channels:   f.Channels,
		SampleRate: f.SampleRate,
	}, nil
}

func sampleDecoder(f audio.Format) (int, sampleFunc, error) {
	if f.Encoding == audio.Float {
		if f.BitsPerSample != 32 {
			return 0, nil, fmt.Errorf("%w: %d-bit float", ErrUnsupportedEncoding, f.BitsPerSample)
		}
		return 4, func(b []byte) float32 {
			return math.Float32frombits(binary.LittleEndian.Uint32(b))
		}, nil
	}

	scale, ok := utils.FullScale(f.BitsPerSample)
	if !ok {
		return 0, nil, fmt.Errorf("%w: %d-bit integer", ErrUnsupportedEncoding, f.BitsPerSample)
	}

	switch f.BitsPerSample {
	case 16:
		return 2, func(b []byte) float32 {
			return utils.IntToFloat32(int(int16(binary.LittleEndian.Uint16(b))), scale)
		}, nil
	case 24:
		return 3, func(b []byte) float32 {
			v := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
			return utils.IntToFloat32(int(utils.SignExtend24(v)), scale)
		}, nil
	default:
		return 4, func(b []byte) float32 {
			return utils.IntToFloat32(int(int32(binary.LittleEndian.Uint32(b))), scale)
		}, nil
	}
}
