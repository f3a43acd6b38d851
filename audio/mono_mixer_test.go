// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"testing"
)

func TestMixToMono(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		samples  []float32
		channels int
		want     []float32
	}{
		{
			name:     "mono passthrough",
			samples:  []float32{0.1, 0.2, 0.3},
			channels: 1,
			want:     []float32{0.1, 0.2, 0.3},
		},
		{
			name:     "stereo mean",
			samples:  []float32{0.4, 0.6, -1, 1, 0.5, 0.5},
			channels: 2,
			want:     []float32{0.5, 0, 0.5},
		},
		{
			name:     "stereo trailing partial frame dropped",
			samples:  []float32{0.2, 0.4, 0.9},
			channels: 2,
			want:     []float32{0.3},
		},
		{
			name:     "three channels",
			samples:  []float32{0.3, 0.6, 0.9, -0.3, -0.6, -0.9},
			channels: 3,
			want:     []float32{0.6, -0.6},
		},
		{
			name:     "quad",
			samples:  []float32{1, 0, 0, 0, 0.25, 0.25, 0.25, 0.25},
			channels: 4,
			want:     []float32{0.25, 0.25},
		},
		{
			name:     "5.1 layout averaged equally",
			samples:  []float32{0.6, 0.6, 0, 0, 0, 0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.7},
			channels: 6,
			want:     []float32{0.2, 0.3666667},
		},
		{
			name:     "fewer samples than one frame",
			samples:  []float32{0.5},
			channels: 2,
			want:     []float32{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := MixToMono(tt.samples, tt.channels)
			if len(got) != len(tt.want) {
				t.Fatalf("MixToMono() len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(float64(got[i]-tt.want[i])) > 1e-6 {
					t.Errorf("MixToMono()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestMixToMono_LengthProperty checks len(out) == floor(len(in)/channels).
func TestMixToMono_LengthProperty(t *testing.T) {
	t.Parallel()

	for channels := 2; channels <= 8; channels++ {
		for n := range 40 {
			got := MixToMono(make([]float32, n), channels)
			if len(got) != n/channels {
				t.Errorf("MixToMono(%d samples, %d ch) len = %d, want %d", n, channels, len(got), n/channels)
			}
		}
	}
}

func BenchmarkMixToMono_Stereo(b *testing.B) {
	// one second of stereo audio at 44.1kHz
	samples := make([]float32, 44100*2)
	for i := range samples {
		samples[i] = float32(math.Sin(float64(i) * 0.01))
	}

	b.ReportAllocs()

	for b.Loop() {
		_ = MixToMono(samples, 2)
	}
}
