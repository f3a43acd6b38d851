// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"

	goaudio "github.com/go-audio/audio"
)

// Full-scale divisors for signed integer PCM.
const (
	FullScale16 = math.MaxInt16
	FullScale24 = 0x7FFFFF
	FullScale32 = math.MaxInt32
)

// FullScale returns the divisor that maps a signed integer sample of the
// given bit depth into [-1, 1]. Depths other than 16, 24 and 32 report false.
func FullScale(bitDepth int) (float64, bool) {
	switch bitDepth {
	case 16, 24, 32:
		return float64(goaudio.IntMaxSignedValue(bitDepth)), true
	default:
		return 0, false
	}
}

// IntToFloat32 normalizes v by scale. The most negative value of a depth
// lands slightly below -1; encoders clamp it back.
func IntToFloat32(v int, scale float64) float32 {
	return float32(float64(v) / scale)
}

// SignExtend24 interprets the low 24 bits of v as a two's complement value.
func SignExtend24(v uint32) int32 {
	v &= 0xFFFFFF
	if v&0x800000 != 0 {
		v |= 0xFF000000
	}
	return int32(v)
}
