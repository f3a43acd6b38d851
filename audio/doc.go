// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory building blocks of the conversion
// pipeline.
//
// This package contains:
//   - Format, the header description a container probe reports
//   - Target, the single output format (16 kHz, mono, 16-bit PCM WAV)
//   - Buffer, interleaved samples normalized to [-1, 1]
//   - Codec and Registry, the ordered set of container probes/decoders
//   - MixToMono for channel reduction
//   - Resampler and Resample for sample rate conversion
//
// # Format and Target
//
// A probe reports what a header claims:
//
//	f := audio.Format{Container: audio.ContainerWAV, SampleRate: 44100,
//	    Channels: 2, BitsPerSample: 16, Encoding: audio.Integer}
//	if f.IsTarget() {
//	    // the bytes can be handed over unchanged
//	}
//
// Format implements slog.LogValuer, so it can be logged as a single
// attribute.
//
// # Codec Registry
//
// Codecs are probed in registration order and the first that recognizes
// the data decodes it:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Codec{})
//	registry.Register("aiff", aiff.Codec{})
//	f, codec, ok := registry.Detect(data)
//
// # Channel Mixing
//
// MixToMono averages the channels of each complete frame with equal
// weights. A trailing partial frame is dropped:
//
//	mono := audio.MixToMono([]float32{0.4, 0.6, 0.9}, 2) // [0.5]
//
// # Resampling
//
// Resampler is an FFT overlap-add converter built on gonum's dsp/fourier.
// The rate pair is reduced by its greatest common divisor; each input
// block of blockIn frames maps to exactly blockOut output frames and a
// Blackman-windowed sinc lowpass removes content above the lower Nyquist
// frequency.
//
// Input is consumed in fixed chunks of ChunkFrames frames:
//
//	r, err := audio.NewResampler(44100, 16000)
//	out, err := r.Process(chunk) // len(chunk) == audio.ChunkFrames
//	tail := r.Flush()
//
// Resample wraps the chunk loop for a complete signal, zero pads the last
// chunk, flushes and trims the result to round(n*to/from) frames.
//
// # Error Handling
//
// Every resampling failure wraps ErrResample. Rate pairs that cannot be
// served also wrap ErrInvalidRatePair:
//
//	out, err := audio.Resample(samples, 44101, 16000)
//	if errors.Is(err, audio.ErrInvalidRatePair) {
//	    // hand the input to an external converter
//	}
package audio
