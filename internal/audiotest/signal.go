// SPDX-License-Identifier: EPL-2.0

package audiotest

import "math"

// Sine returns frames samples of a sine wave at freq Hz sampled at rate.
func Sine(rate, frames int, freq, amp float64) []float32 {
	out := make([]float32, frames)
	for i := range out {
		out[i] = float32(amp * math.Sin(2*math.Pi*freq*float64(i)/float64(rate)))
	}
	return out
}

// Constant returns frames copies of v.
func Constant(frames int, v float32) []float32 {
	out := make([]float32, frames)
	for i := range out {
		out[i] = v
	}
	return out
}

// Interleave merges equally long per-channel signals into frames.
func Interleave(channels ...[]float32) []float32 {
	if len(channels) == 0 {
		return nil
	}

	frames := len(channels[0])
	out := make([]float32, 0, frames*len(channels))
	for f := range frames {
		for _, ch := range channels {
			out = append(out, ch[f])
		}
	}
	return out
}

// quantize scales s to a signed integer of the given full scale, rounding
// to nearest and clamping.
func quantize(s float32, fullScale float64) int64 {
	v := math.Round(float64(s) * fullScale)
	v = math.Max(-fullScale-1, math.Min(fullScale, v))
	return int64(v)
}
