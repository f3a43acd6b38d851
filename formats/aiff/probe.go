// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"encoding/binary"

	"github.com/go-audio/aiff"
	"github.com/ik5/speechpcm/audio"
)

// commSize is the length of an AIFF (not AIFC) COMM chunk body.
const commSize = 18

// Codec exposes Detect and Decode as an audio.Codec.
type Codec struct{}

func (Codec) Detect(data []byte) (audio.Format, bool) { return Detect(data) }

func (Codec) Decode(data []byte, f audio.Format) (audio.Buffer, error) {
	return Decode(data, f)
}

// comm holds the COMM fields the decoder needs besides go-audio's view.
type comm struct {
	channels int
	frames   int
	bits     int
}

// Detect reports the format of an uncompressed FORM/AIFF byte slice.
// AIFC files are not detected, whatever their compression type.
func Detect(data []byte) (audio.Format, bool) {
	c, ok := readComm(data)
	if !ok || c.channels < 1 {
		return audio.Format{}, false
	}

	dec, ok := open(data)
	if !ok {
		return audio.Format{}, false
	}

	gf := dec.Format()
	if gf == nil || gf.SampleRate < 1 || gf.NumChannels < 1 {
		return audio.Format{}, false
	}

	return audio.Format{
		Container:     audio.ContainerAIFF,
		SampleRate:    gf.SampleRate,
		Channels:      gf.NumChannels,
		BitsPerSample: int(dec.BitDepth),
		Encoding:      audio.Integer,
	}, true
}

func open(data []byte) (*aiff.Decoder, bool) {
	dec := aiff.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return nil, false
	}
	dec.ReadInfo()

	return dec, true
}

// readComm walks the FORM chunks and returns the COMM fields. Every chunk
// but SSND must fit inside data; go-audio trusts declared sizes.
func readComm(data []byte) (comm, bool) {
	if len(data) < 12 || string(data[0:4]) != "FORM" || string(data[8:12]) != "AIFF" {
		return comm{}, false
	}

	var (
		c     comm
		found bool
	)

	end := int64(len(data))
	for pos := int64(12); pos+8 <= end; {
		id := string(data[pos : pos+4])
		size := int64(binary.BigEndian.Uint32(data[pos+4 : pos+8]))
		body := pos + 8

		if id != "SSND" && size > end-body {
			return comm{}, false
		}

		if id == "COMM" {
			if size < commSize {
				return comm{}, false
			}
			b := data[body:]
			c = comm{
				channels: int(int16(binary.BigEndian.Uint16(b[0:2]))),
				frames:   int(binary.BigEndian.Uint32(b[2:6])),
				bits:     int(int16(binary.BigEndian.Uint16(b[6:8]))),
			}
			found = true
		}

		pos = body + size + size%2
	}

	return c, found
}
