// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"log/slog"
	"sync"
)

// Container identifies the file wrapper around the PCM data.
type Container string

const (
	ContainerWAV  Container = "wav"
	ContainerAIFF Container = "aiff"
)

// Encoding is the numeric representation of a single sample.
type Encoding int

const (
	Integer Encoding = iota
	Float
)

func (e Encoding) String() string {
	switch e {
	case Integer:
		return "int"
	case Float:
		return "float"
	default:
		return fmt.Sprintf("encoding(%d)", int(e))
	}
}

// Format describes a stream as reported by its container header.
// A Format says nothing about whether the samples can be decoded natively;
// the codec decides that when it is asked to decode.
type Format struct {
	Container     Container
	SampleRate    int
	Channels      int
	BitsPerSample int
	Encoding      Encoding
}

// Target is the only output the pipeline produces: 16 kHz, mono,
// signed 16-bit integer PCM inside a WAV container.
var Target = Format{
	Container:     ContainerWAV,
	SampleRate:    16000,
	Channels:      1,
	BitsPerSample: 16,
	Encoding:      Integer,
}

// IsTarget reports whether f already matches Target exactly.
func (f Format) IsTarget() bool {
	return f == Target
}

func (f Format) String() string {
	return fmt.Sprintf("%s %dHz %dch %d-bit %s",
		f.Container, f.SampleRate, f.Channels, f.BitsPerSample, f.Encoding)
}

// LogValue implements slog.LogValuer.
func (f Format) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("container", string(f.Container)),
		slog.Int("sample_rate", f.SampleRate),
		slog.Int("channels", f.Channels),
		slog.Int("bits", f.BitsPerSample),
		slog.String("encoding", f.Encoding.String()),
	)
}

// Buffer holds decoded, interleaved samples normalized to [-1, 1].
type Buffer struct {
	Samples    []float32
	Channels   int
	SampleRate int
}

// Frames returns the number of complete frames in the buffer.
func (b Buffer) Frames() int {
	if b.Channels <= 0 {
		return 0
	}
	return len(b.Samples) / b.Channels
}

// Codec probes and decodes one container type held fully in memory.
type Codec interface {
	// Detect parses the header of data. ok is false when data is not this
	// container or the header is unusable; Detect never returns an error.
	Detect(data []byte) (f Format, ok bool)
	// Decode returns the normalized samples of data, which Detect accepted
	// as f.
	Decode(data []byte, f Format) (Buffer, error)
}

// Registry keeps codecs in registration order. Detect asks them in that
// order and the first one that recognizes the data wins.
type Registry struct {
	codecs map[string]Codec
	order  []string

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Codec),
		mtx:    &sync.Mutex{},
	}
}

// Register adds c under name. Registering an existing name replaces the
// codec but keeps its original position.
func (r *Registry) Register(name string, c Codec) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.codecs[name]; !ok {
		r.order = append(r.order, name)
	}
	r.codecs[name] = c
}

func (r *Registry) Get(name string) (Codec, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	c, ok := r.codecs[name]
	return c, ok
}

// Names returns the registered codec names in probe order.
func (r *Registry) Names() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return append([]string(nil), r.order...)
}

// Detect returns the format reported by the first codec that recognizes data.
func (r *Registry) Detect(data []byte) (Format, Codec, bool) {
	r.mtx.Lock()
	codecs := make([]Codec, 0, len(r.order))
	for _, name := range r.order {
		codecs = append(codecs, r.codecs[name])
	}
	r.mtx.Unlock()

	for _, c := range codecs {
		if f, ok := c.Detect(data); ok {
			return f, c, true
		}
	}

	return Format{}, nil, false
}
