// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"

	"github.com/go-audio/wav"
	"github.com/ik5/speechpcm/audio"
)

// WAVE format tags.
const (
	formatPCM        = 0x0001
	formatIEEEFloat  = 0x0003
	formatExtensible = 0xFFFE
)

// Codec is the WAV implementation of audio.Codec.
type Codec struct{}

func (Codec) Detect(data []byte) (audio.Format, bool) { return Detect(data) }

func (Codec) Decode(data []byte, f audio.Format) (audio.Buffer, error) { return Decode(data, f) }

// Detect reports the format of a RIFF/WAVE byte slice. Integer PCM, IEEE
// float and WAVE_FORMAT_EXTENSIBLE wrapping either are recognized; every
// other format tag, and any header go-audio refuses, reports false.
func Detect(data []byte) (audio.Format, bool) {
	tag, ok := formatTag(data)
	if !ok {
		return audio.Format{}, false
	}

	var enc audio.Encoding
	switch tag {
	case formatPCM:
		enc = audio.Integer
	case formatIEEEFloat:
		enc = audio.Float
	default:
		return audio.Format{}, false
	}

	dec := wav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return audio.Format{}, false
	}
	if dec.SampleRate == 0 || dec.NumChans == 0 {
		return audio.Format{}, false
	}

	return audio.Format{
		Container:     audio.ContainerWAV,
		SampleRate:    int(dec.SampleRate),
		Channels:      int(dec.NumChans),
		BitsPerSample: int(dec.BitDepth),
		Encoding:      enc,
	}, true
}

// formatTag walks the RIFF chunk list and returns the effective format tag
// of the fmt chunk, resolving WAVE_FORMAT_EXTENSIBLE to the tag stored in
// the first two bytes of its sub-format GUID.
//
// The walk also rejects chunks whose declared size runs past the end of
// data, since go-audio allocates fmt and LIST chunks by their declared
// size. Only the data chunk may be truncated; the walk stops there.
func formatTag(data []byte) (uint16, bool) {
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return 0, false
	}

	var (
		tag    uint16
		hasFmt bool
	)

	pos := int64(12)
	end := int64(len(data))
	for pos+8 <= end {
		id := string(data[pos : pos+4])
		size := int64(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
		body := pos + 8

		if id == "data" {
			break
		}
		if size > end-body {
			return 0, false
		}

		if id == "fmt " && !hasFmt {
			if size < 16 {
				return 0, false
			}
			tag = binary.LittleEndian.Uint16(data[body:])
			if tag == formatExtensible {
				// cbSize, valid bits, channel mask, then the GUID
				if size < 40 {
					return 0, false
				}
				tag = binary.LittleEndian.Uint16(data[body+24:])
			}
			hasFmt = true
		}

		pos = body + size + size%2
	}

	return tag, hasFmt
}
