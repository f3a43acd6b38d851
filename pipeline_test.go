// SPDX-License-Identifier: EPL-2.0

package speechpcm

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/speechpcm/audio"
	"github.com/ik5/speechpcm/formats/wav"
	"github.com/ik5/speechpcm/internal/audiotest"
)

// stubCodec decodes to a fixed buffer.
type stubCodec struct {
	buf audio.Buffer
	err error
}

func (s stubCodec) Detect([]byte) (audio.Format, bool) { return audio.Format{}, false }

func (s stubCodec) Decode([]byte, audio.Format) (audio.Buffer, error) { return s.buf, s.err }

func TestNormalize_Stages(t *testing.T) {
	t.Parallel()

	decodeErr := errors.New("bad sample")

	tests := []struct {
		name      string
		codec     stubCodec
		wantStage string
		wantErr   error
	}{
		{"decode error", stubCodec{err: decodeErr}, StageDecode, decodeErr},
		{"no frames", stubCodec{buf: audio.Buffer{Channels: 2, SampleRate: 8000, Samples: []float32{0.1}}}, StageDecode, ErrNoFrames},
		{"invalid rate pair", stubCodec{buf: audio.Buffer{Channels: 1, SampleRate: 44101, Samples: make([]float32, 100)}}, StageResample, audio.ErrInvalidRatePair},
		{"zero rate", stubCodec{buf: audio.Buffer{Channels: 1, SampleRate: 0, Samples: make([]float32, 100)}}, StageResample, audio.ErrResample},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Normalize(tt.codec, nil, audio.Format{})

			var se *StageError
			if !errors.As(err, &se) {
				t.Fatalf("Normalize() error = %v, want *StageError", err)
			}
			if se.Stage != tt.wantStage {
				t.Errorf("Stage = %q, want %q", se.Stage, tt.wantStage)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Normalize() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNormalize_NonFinite(t *testing.T) {
	t.Parallel()

	data := audiotest.WAV{
		SampleRate: 8000, Channels: 1, BitsPerSample: 32, Float: true,
		Samples: []float32{0, 0.5, float32(math.NaN()), 0.5},
	}.Bytes()

	f, ok := wav.Detect(data)
	if !ok {
		t.Fatal("wav.Detect() ok = false")
	}

	_, err := Normalize(wav.Codec{}, data, f)

	var se *StageError
	if !errors.As(err, &se) || se.Stage != StageResample {
		t.Fatalf("Normalize() error = %v, want a resample *StageError", err)
	}
	if !errors.Is(err, audio.ErrNonFinite) {
		t.Errorf("Normalize() error = %v, want audio.ErrNonFinite", err)
	}
}

func TestToMono16k(t *testing.T) {
	t.Parallel()

	buf := audio.Buffer{
		Samples:    audiotest.Interleave(audiotest.Constant(16000, 0.5), audiotest.Constant(16000, 0.5)),
		Channels:   2,
		SampleRate: 32000,
	}

	got, err := ToMono16k(buf)
	if err != nil {
		t.Fatalf("ToMono16k() error = %v", err)
	}
	if len(got) != 8000 {
		t.Errorf("ToMono16k() length = %d, want 8000", len(got))
	}

	if _, err := ToMono16k(audio.Buffer{Samples: []float32{0}, SampleRate: 16000}); err == nil {
		t.Error("ToMono16k() accepted a buffer without channels")
	}
}

func TestStageError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := &StageError{Stage: StageEncode, Err: cause}

	if got := err.Error(); got != "encode: boom" {
		t.Errorf("Error() = %q, want %q", got, "encode: boom")
	}
	if !errors.Is(err, cause) {
		t.Error("StageError does not unwrap to its cause")
	}
}
