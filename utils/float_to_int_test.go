// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{name: "zero", input: 0.0, want: 0},
		{name: "max positive", input: 1.0, want: math.MaxInt16},
		{name: "max negative", input: -1.0, want: -math.MaxInt16},
		{name: "half positive truncates", input: 0.5, want: 16383},
		{name: "half negative truncates toward zero", input: -0.5, want: -16383},
		{name: "quarter positive", input: 0.25, want: 8191},
		{name: "small positive", input: 0.001, want: 32},
		{name: "small negative", input: -0.001, want: -32},
		{name: "clamp over max", input: 1.5, want: math.MaxInt16},
		{name: "clamp under min", input: -1.5, want: -math.MaxInt16},
		{name: "clamp way over max", input: 100.0, want: math.MaxInt16},
		{name: "clamp way under min", input: -100.0, want: -math.MaxInt16},
		{name: "positive infinity", input: float32(math.Inf(1)), want: math.MaxInt16},
		{name: "negative infinity", input: float32(math.Inf(-1)), want: -math.MaxInt16},
		{name: "nan is silence", input: float32(math.NaN()), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Float32ToInt16(tt.input)
			if got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFloat32sToInt16(t *testing.T) {
	t.Parallel()

	src := []float32{0, 0.5, -0.5, 1, -1, 2}
	want := []int16{0, 16383, -16383, 32767, -32767, 32767}

	tests := []struct {
		name string
		dst  []int16
	}{
		{name: "nil dst", dst: nil},
		{name: "short dst", dst: make([]int16, 2)},
		{name: "large dst", dst: make([]int16, 0, 64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Float32sToInt16(tt.dst, src)
			if len(got) != len(want) {
				t.Fatalf("len = %d, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
				}
			}
		})
	}
}

func TestFloat32sToInt16ReusesDst(t *testing.T) {
	t.Parallel()

	dst := make([]int16, 0, 8)
	got := Float32sToInt16(dst, []float32{0.25, -0.25})

	if &got[0] != &dst[:1][0] {
		t.Error("Float32sToInt16 reallocated a dst with enough capacity")
	}
}

func TestFloat32ToInt16Symmetry(t *testing.T) {
	t.Parallel()

	for _, val := range []float32{0.1, 0.25, 0.5, 0.75, 0.9, 0.99, 1.0} {
		pos := Float32ToInt16(val)
		neg := Float32ToInt16(-val)

		if pos != -neg {
			t.Errorf("Float32ToInt16 not symmetric: +%v=%v, -%v=%v", val, pos, val, neg)
		}
	}
}

func TestFloat32ToInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1.0)

	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := Float32ToInt16(float32(f))
		if curr < prev {
			t.Errorf("Float32ToInt16 not monotonic: f=%v gives %v, but previous was %v", f, curr, prev)
		}
		prev = curr
	}
}

func TestFloat32ToInt16_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = Float32ToInt16(0.5)
	})

	if allocs > 0 {
		t.Errorf("Float32ToInt16 allocated %v times, want 0", allocs)
	}
}

func BenchmarkFloat32ToInt16Realistic(b *testing.B) {
	// one second of mono audio at 16kHz
	floatSamples := make([]float32, 16000)
	int16Samples := make([]int16, 16000)

	for i := range floatSamples {
		floatSamples[i] = float32(math.Sin(float64(i) * 0.1))
	}

	b.ReportAllocs()

	for b.Loop() {
		int16Samples = Float32sToInt16(int16Samples, floatSamples)
	}
}
