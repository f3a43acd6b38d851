// SPDX-License-Identifier: EPL-2.0

package audio

// MixToMono averages every complete frame of interleaved samples into one
// value. A trailing partial frame is dropped. With one channel (or less)
// the input is returned as is.
func MixToMono(samples []float32, channels int) []float32 {
	if channels <= 1 {
		return samples
	}

	frames := len(samples) / channels
	out := make([]float32, frames)

	invChannels := float32(1.0) / float32(channels)

	// Unrolled loop for common cases
	switch channels {
	case 2:
		for f := range frames {
			idx := f << 1
			out[f] = (samples[idx] + samples[idx+1]) * 0.5
		}
	case 4:
		for f := range frames {
			idx := f << 2
			sum := samples[idx] + samples[idx+1] + samples[idx+2] + samples[idx+3]
			out[f] = sum * 0.25
		}
	default:
		for f := range frames {
			sum := float32(0)
			baseIdx := f * channels
			for c := range channels {
				sum += samples[baseIdx+c]
			}
			out[f] = sum * invChannels
		}
	}

	return out
}
