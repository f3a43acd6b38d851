// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
)

// ksDataFormatTail is the fixed part of KSDATAFORMAT_SUBTYPE_* GUIDs after
// the two-byte format tag.
var ksDataFormatTail = []byte{
	0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00,
	0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71,
}

// Chunk is an extra RIFF chunk placed between fmt and data.
type Chunk struct {
	ID   string
	Data []byte
}

// WAV describes a RIFF/WAVE fixture. Samples are interleaved and
// normalized; they are quantized on Bytes.
type WAV struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
	// Tag overrides the format tag. Zero means PCM, or IEEE float when
	// Float is set.
	Tag        uint16
	Float      bool
	Extensible bool
	Extra      []Chunk
	Samples    []float32
	// DataSize overrides the declared data chunk size when non-zero.
	DataSize uint32
}

// Bytes renders the fixture.
func (w WAV) Bytes() []byte {
	tag := w.Tag
	if tag == 0 {
		tag = 1
		if w.Float {
			tag = 3
		}
	}

	blockAlign := w.Channels * w.BitsPerSample / 8

	fmtChunk := new(bytes.Buffer)
	le := func(v any) { _ = binary.Write(fmtChunk, binary.LittleEndian, v) }
	if w.Extensible {
		le(uint16(0xFFFE))
	} else {
		le(tag)
	}
	le(uint16(w.Channels))
	le(uint32(w.SampleRate))
	le(uint32(w.SampleRate * blockAlign))
	le(uint16(blockAlign))
	le(uint16(w.BitsPerSample))
	switch {
	case w.Extensible:
		le(uint16(22))
		le(uint16(w.BitsPerSample))
		le(uint32(0))
		le(tag)
		fmtChunk.Write(ksDataFormatTail)
	case tag != 1:
		le(uint16(0))
	}

	data := w.encodeSamples()

	body := new(bytes.Buffer)
	body.WriteString("WAVE")
	writeChunk(body, "fmt ", fmtChunk.Bytes(), 0)
	for _, c := range w.Extra {
		writeChunk(body, c.ID, c.Data, 0)
	}
	writeChunk(body, "data", data, w.DataSize)

	out := new(bytes.Buffer)
	out.WriteString("RIFF")
	_ = binary.Write(out, binary.LittleEndian, uint32(body.Len()))
	out.Write(body.Bytes())
	return out.Bytes()
}

func (w WAV) encodeSamples() []byte {
	buf := new(bytes.Buffer)
	for _, s := range w.Samples {
		switch {
		case w.Float && w.BitsPerSample == 64:
			_ = binary.Write(buf, binary.LittleEndian, float64(s))
		case w.Float:
			_ = binary.Write(buf, binary.LittleEndian, math.Float32bits(s))
		case w.BitsPerSample == 8:
			buf.WriteByte(byte(quantize(s, 127) + 128))
		case w.BitsPerSample == 16:
			_ = binary.Write(buf, binary.LittleEndian, int16(quantize(s, math.MaxInt16)))
		case w.BitsPerSample == 24:
			v := uint32(quantize(s, 0x7FFFFF))
			buf.Write([]byte{byte(v), byte(v >> 8), byte(v >> 16)})
		case w.BitsPerSample == 32:
			_ = binary.Write(buf, binary.LittleEndian, int32(quantize(s, math.MaxInt32)))
		}
	}
	return buf.Bytes()
}

func writeChunk(buf *bytes.Buffer, id string, data []byte, size uint32) {
	if size == 0 {
		size = uint32(len(data))
	}
	buf.WriteString(id)
	_ = binary.Write(buf, binary.LittleEndian, size)
	buf.Write(data)
	if len(data)%2 == 1 {
		buf.WriteByte(0)
	}
}

// PCM16 renders 16-bit integer WAV bytes.
func PCM16(rate, channels int, samples []float32) []byte {
	return WAV{SampleRate: rate, Channels: channels, BitsPerSample: 16, Samples: samples}.Bytes()
}
