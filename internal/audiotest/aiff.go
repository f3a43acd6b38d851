// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
	"math/bits"
)

// AIFF describes a big-endian FORM/AIFF fixture.
type AIFF struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
	// Compressed writes an AIFC form with a "sowt" compression type.
	Compressed bool
	Samples    []float32
}

// Bytes renders the fixture.
func (a AIFF) Bytes() []byte {
	frames := 0
	if a.Channels > 0 {
		frames = len(a.Samples) / a.Channels
	}

	comm := new(bytes.Buffer)
	be := func(v any) { _ = binary.Write(comm, binary.BigEndian, v) }
	be(int16(a.Channels))
	be(uint32(frames))
	be(int16(a.BitsPerSample))
	rate := extended(a.SampleRate)
	comm.Write(rate[:])
	if a.Compressed {
		comm.WriteString("sowt")
		comm.Write([]byte{0, 0})
	}

	ssnd := new(bytes.Buffer)
	_ = binary.Write(ssnd, binary.BigEndian, uint32(0))
	_ = binary.Write(ssnd, binary.BigEndian, uint32(0))
	for _, s := range a.Samples {
		switch a.BitsPerSample {
		case 8:
			ssnd.WriteByte(byte(int8(quantize(s, 127))))
		case 16:
			_ = binary.Write(ssnd, binary.BigEndian, int16(quantize(s, math.MaxInt16)))
		case 24:
			v := uint32(quantize(s, 0x7FFFFF))
			ssnd.Write([]byte{byte(v >> 16), byte(v >> 8), byte(v)})
		case 32:
			_ = binary.Write(ssnd, binary.BigEndian, int32(quantize(s, math.MaxInt32)))
		}
	}

	body := new(bytes.Buffer)
	if a.Compressed {
		body.WriteString("AIFC")
	} else {
		body.WriteString("AIFF")
	}
	writeChunkBE(body, "COMM", comm.Bytes())
	writeChunkBE(body, "SSND", ssnd.Bytes())

	out := new(bytes.Buffer)
	out.WriteString("FORM")
	_ = binary.Write(out, binary.BigEndian, uint32(body.Len()))
	out.Write(body.Bytes())
	return out.Bytes()
}

func writeChunkBE(buf *bytes.Buffer, id string, data []byte) {
	buf.WriteString(id)
	_ = binary.Write(buf, binary.BigEndian, uint32(len(data)))
	buf.Write(data)
	if len(data)%2 == 1 {
		buf.WriteByte(0)
	}
}

// extended encodes a positive integer as an 80-bit IEEE 754 extended float.
func extended(v int) [10]byte {
	var b [10]byte
	if v <= 0 {
		return b
	}

	exp := bits.Len64(uint64(v)) - 1
	binary.BigEndian.PutUint16(b[0:2], uint16(16383+exp))
	binary.BigEndian.PutUint64(b[2:10], uint64(v)<<(63-exp))
	return b
}
