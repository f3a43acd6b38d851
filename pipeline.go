// SPDX-License-Identifier: EPL-2.0

package speechpcm

import (
	"fmt"

	"github.com/ik5/speechpcm/audio"
	"github.com/ik5/speechpcm/formats/wav"
)

// Stage names attached to native pipeline failures.
const (
	StageDecode   = "decode"
	StageMix      = "mix"
	StageResample = "resample"
	StageEncode   = "encode"
)

// StageError reports which native stage failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s: %v", e.Stage, e.Err) }

func (e *StageError) Unwrap() error { return e.Err }

// Normalize runs the native pipeline on data that codec detected as f:
//  1. Decodes the samples to normalized float32
//  2. Averages the channels into mono when there are several
//  3. Resamples to 16 kHz when the rate differs
//  4. Encodes the result as 16-bit PCM WAV
//
// Failures are returned as *StageError. Normalize does not consult any
// fallback; Converter does that.
func Normalize(codec audio.Codec, data []byte, f audio.Format) ([]byte, error) {
	buf, err := codec.Decode(data, f)
	if err != nil {
		return nil, &StageError{Stage: StageDecode, Err: err}
	}
	if buf.Frames() == 0 {
		return nil, &StageError{Stage: StageDecode, Err: ErrNoFrames}
	}

	samples, err := ToMono16k(buf)
	if err != nil {
		return nil, err
	}

	out, err := wav.Encode(samples, audio.Target.SampleRate, audio.Target.Channels)
	if err != nil {
		return nil, &StageError{Stage: StageEncode, Err: err}
	}

	return out, nil
}

// ToMono16k mixes buf down to one channel and resamples it to the target
// rate. Buffers that are already mono at 16 kHz are returned as they are.
func ToMono16k(buf audio.Buffer) ([]float32, error) {
	if buf.Channels < 1 {
		return nil, &StageError{Stage: StageMix, Err: fmt.Errorf("%d channels", buf.Channels)}
	}

	samples := audio.MixToMono(buf.Samples, buf.Channels)

	samples, err := audio.Resample(samples, buf.SampleRate, audio.Target.SampleRate)
	if err != nil {
		return nil, &StageError{Stage: StageResample, Err: err}
	}

	return samples, nil
}
