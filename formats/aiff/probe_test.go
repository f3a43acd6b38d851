// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"testing"

	"github.com/ik5/speechpcm/audio"
	"github.com/ik5/speechpcm/internal/audiotest"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	samples := audiotest.Constant(64, 0.25)

	tests := []struct {
		name    string
		fixture audiotest.AIFF
		want    audio.Format
	}{
		{
			name:    "16-bit stereo 44100",
			fixture: audiotest.AIFF{SampleRate: 44100, Channels: 2, BitsPerSample: 16, Samples: samples},
			want:    audio.Format{Container: audio.ContainerAIFF, SampleRate: 44100, Channels: 2, BitsPerSample: 16, Encoding: audio.Integer},
		},
		{
			name:    "24-bit mono 48000",
			fixture: audiotest.AIFF{SampleRate: 48000, Channels: 1, BitsPerSample: 24, Samples: samples},
			want:    audio.Format{Container: audio.ContainerAIFF, SampleRate: 48000, Channels: 1, BitsPerSample: 24, Encoding: audio.Integer},
		},
		{
			name:    "16-bit mono at the target rate",
			fixture: audiotest.AIFF{SampleRate: 16000, Channels: 1, BitsPerSample: 16, Samples: samples},
			want:    audio.Format{Container: audio.ContainerAIFF, SampleRate: 16000, Channels: 1, BitsPerSample: 16, Encoding: audio.Integer},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Detect(tt.fixture.Bytes())
			if !ok {
				t.Fatal("Detect() ok = false, want true")
			}
			if got != tt.want {
				t.Errorf("Detect() = %v, want %v", got, tt.want)
			}
			if got.IsTarget() {
				t.Error("an AIFF format must never equal the WAV target")
			}
		})
	}
}

func TestDetect_Rejects(t *testing.T) {
	t.Parallel()

	valid := audiotest.AIFF{SampleRate: 8000, Channels: 1, BitsPerSample: 16, Samples: audiotest.Constant(32, 0.1)}.Bytes()

	oversized := append([]byte(nil), valid...)
	// COMM size field
	oversized[16], oversized[17], oversized[18], oversized[19] = 0x7F, 0xFF, 0xFF, 0xFF

	tests := []struct {
		name string
		data []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"garbage", []byte("This is not AIFF data")},
		{"form only", valid[:12]},
		{"aifc", audiotest.AIFF{SampleRate: 8000, Channels: 1, BitsPerSample: 16, Compressed: true, Samples: audiotest.Constant(32, 0.1)}.Bytes()},
		{"oversized comm", oversized},
		{"wav", audiotest.PCM16(8000, 1, audiotest.Constant(32, 0.1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if f, ok := Detect(tt.data); ok {
				t.Errorf("Detect() = %v, true; want false", f)
			}
		})
	}
}

func TestReadComm(t *testing.T) {
	t.Parallel()

	data := audiotest.AIFF{SampleRate: 22050, Channels: 2, BitsPerSample: 24, Samples: audiotest.Constant(20, 0)}.Bytes()

	c, ok := readComm(data)
	if !ok {
		t.Fatal("readComm() ok = false")
	}

	want := comm{channels: 2, frames: 10, bits: 24}
	if c != want {
		t.Errorf("readComm() = %+v, want %+v", c, want)
	}
}

func TestCodec_ImplementsAudioCodec(t *testing.T) {
	t.Parallel()

	var c audio.Codec = Codec{}

	data := audiotest.AIFF{SampleRate: 8000, Channels: 1, BitsPerSample: 16, Samples: audiotest.Constant(16, 0.5)}.Bytes()

	f, ok := c.Detect(data)
	if !ok {
		t.Fatal("Codec.Detect() ok = false")
	}

	buf, err := c.Decode(data, f)
	if err != nil {
		t.Fatalf("Codec.Decode() error = %v", err)
	}
	if buf.Frames() != 16 {
		t.Errorf("Codec.Decode() frames = %d, want 16", buf.Frames())
	}
}

func FuzzDetect(f *testing.F) {
	f.Add([]byte("FORM\x00\x00\x00\x04AIFF"))
	f.Add(audiotest.AIFF{SampleRate: 8000, Channels: 1, BitsPerSample: 16, Samples: []float32{0, 0.5}}.Bytes())

	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = Detect(data)
	})
}
