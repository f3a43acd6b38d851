// SPDX-License-Identifier: EPL-2.0

// Package speechpcm normalizes arbitrary audio into the one format speech
// recognizers want: 16 kHz, mono, signed 16-bit PCM in a WAV container.
//
// # Quick Start
//
//	conv := speechpcm.NewConverter()
//	out, err := conv.Convert(ctx, data)
//	if err != nil {
//	    // err is a *fallback.Error: ffmpeg could not convert it either
//	}
//
// # How Convert Decides
//
// The input is probed by every codec in the registry (WAV, then AIFF by
// default):
//   - Already 16 kHz mono 16-bit PCM WAV: the input slice is returned as is
//   - Recognized: decode, average the channels, resample, encode
//   - Not recognized, or any native stage failed: ffmpeg converts the
//     original bytes
//
// The native path handles 16, 24 and 32-bit integer and 32-bit float
// samples. Everything else (8-bit, A-law, mu-law, compressed formats such
// as MP3 or Vorbis) goes to ffmpeg.
//
// # Building Blocks
//
// The stages are usable on their own:
//
//	f, ok := wav.Detect(data)
//	buf, err := wav.Decode(data, f)
//	mono := audio.MixToMono(buf.Samples, buf.Channels)
//	pcm, err := audio.Resample(mono, buf.SampleRate, 16000)
//	out, err := wav.Encode(pcm, 16000, 1)
//
// Normalize runs the same sequence for any audio.Codec and reports the
// failing stage in a *StageError.
//
// # Logging
//
// Converter logs through log/slog. Each call carries a call_id attribute;
// native failures are logged at warn level with the stage name, fallback
// failures at error level. The default logger discards everything.
//
// See the individual subpackages for more detailed documentation.
package speechpcm
