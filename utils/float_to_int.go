// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 quantizes a normalized sample to signed 16-bit PCM.
// x is clamped to [-1, 1] and scaled by 32767; the conversion truncates
// toward zero, so -1 maps to -32767 and -32768 is never produced.
// NaN maps to silence.
func Float32ToInt16(x float32) int16 {
	if x != x {
		return 0
	}

	return int16(min(max(x, -1), 1) * 32767)
}

// Float32sToInt16 quantizes every sample of src into dst and returns the
// filled prefix of dst. dst is grown when it is too short.
func Float32sToInt16(dst []int16, src []float32) []int16 {
	if cap(dst) < len(src) {
		dst = make([]int16, len(src))
	}
	dst = dst[:len(src)]

	for i, s := range src {
		dst[i] = Float32ToInt16(s)
	}

	return dst
}
