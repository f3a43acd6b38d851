// SPDX-License-Identifier: EPL-2.0

// Package wav probes, decodes and encodes RIFF/WAVE audio held in memory.
//
// It builds on github.com/go-audio/wav for header parsing and for writing
// the canonical 44-byte PCM header.
//
// # Probing
//
// Detect reports the header fields of a WAV byte slice as an audio.Format.
// It never fails: anything that is not a well-formed WAVE stream with a PCM,
// IEEE float or WAVE_FORMAT_EXTENSIBLE format tag is simply not detected.
//
//	f, ok := wav.Detect(data)
//	if !ok {
//	    // hand the bytes to the external transcoder
//	}
//
// Extensible files are resolved through the sub-format GUID, so a
// 24-bit extensible PCM file reports Integer encoding.
//
// # Decoding
//
// Decode normalizes the data chunk into interleaved float32 samples in
// [-1, 1]:
//   - 16-bit integer: divided by 32767
//   - 24-bit packed integer: sign extended, divided by 8388607
//   - 32-bit integer: divided by 2147483647
//   - 32-bit IEEE float: passed through
//
// 8-bit, companded (A-law, mu-law) and 64-bit float data return
// ErrUnsupportedEncoding. A data chunk that ends in the middle of a frame
// is cut to whole frames.
//
// # Encoding
//
// Encode quantizes float32 samples to 16-bit PCM and returns a complete
// file:
//
//	out, err := wav.Encode(samples, 16000, 1)
//
// WriteWAV16 writes int16 samples that are already quantized.
//
// # Errors
//
//   - ErrNotWavFile: the format does not describe a WAV container
//   - ErrUnsupportedWavLayout: zero channels, zero rate or a partial frame
//   - ErrUnsupportedEncoding: a sample encoding the decoder cannot read
//   - ErrNoPCMData: no data chunk could be reached
//   - ErrNoFrames: the data chunk holds less than one frame
//   - ErrEncode: writing the output failed
//
// Codec adapts Detect and Decode to the audio.Codec interface.
package wav
