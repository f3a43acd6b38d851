// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// ChunkFrames is the number of input frames Process consumes per call.
const ChunkFrames = 1024

const (
	// maxRateUnit bounds the reduced rate ratio. Pairs such as 44101:16000
	// would need FFT blocks of tens of thousands of samples.
	maxRateUnit = 4096

	// minBlock is the smallest input block; it sets the filter length.
	minBlock = 256

	// cutoffRatio places the lowpass edge below the lower Nyquist frequency
	// so the transition band ends before it.
	cutoffRatio = 0.9
)

// Resampler converts a mono stream between two fixed sample rates with an
// FFT overlap-add filter.
//
// The input is cut into blocks of blockIn frames. Each block is zero padded
// to twice its length, transformed, multiplied by the spectrum of a
// windowed-sinc lowpass, truncated or zero-extended to the spectrum size of
// the output rate and transformed back into 2*blockOut frames. The second
// half of every block overlaps the first half of the next one.
//
// The lowpass delays the signal by blockOut/2 output frames; Resampler
// drops those frames so output frame j lines up with input time j/to.
type Resampler struct {
	from, to int

	blockIn  int
	blockOut int

	fftIn  *fourier.FFT
	fftOut *fourier.FFT
	filter []complex128
	scale  float64

	pending []float64
	overlap []float64
	skip    int

	timeBuf []float64
	spec    []complex128
	outSpec []complex128
	outBuf  []float64
}

// NewResampler builds a resampler from one rate to another. Both rates must
// be positive and their reduced ratio must stay within the supported block
// size, otherwise the returned error wraps ErrInvalidRatePair.
func NewResampler(from, to int) (*Resampler, error) {
	if from <= 0 || to <= 0 {
		return nil, fmt.Errorf("%w: %d Hz to %d Hz", ErrInvalidRatePair, from, to)
	}

	g := gcd(from, to)
	inUnit, outUnit := from/g, to/g
	if inUnit > maxRateUnit || outUnit > maxRateUnit {
		return nil, fmt.Errorf("%w: %d Hz to %d Hz reduces to %d:%d",
			ErrInvalidRatePair, from, to, inUnit, outUnit)
	}

	// An even multiplier keeps blockIn even, which puts the filter delay on
	// a whole output frame.
	m := max(2, (minBlock+inUnit-1)/inUnit)
	if m%2 != 0 {
		m++
	}

	blockIn, blockOut := m*inUnit, m*outUnit

	r := &Resampler{
		from:     from,
		to:       to,
		blockIn:  blockIn,
		blockOut: blockOut,
		fftIn:    fourier.NewFFT(2 * blockIn),
		fftOut:   fourier.NewFFT(2 * blockOut),
		scale:    1 / float64(2*blockIn),
		pending:  make([]float64, 0, blockIn+ChunkFrames),
		overlap:  make([]float64, blockOut),
		skip:     blockOut / 2,
		timeBuf:  make([]float64, 2*blockIn),
		spec:     make([]complex128, blockIn+1),
		outSpec:  make([]complex128, blockOut+1),
		outBuf:   make([]float64, 2*blockOut),
	}

	cutoff := cutoffRatio * math.Min(1, float64(to)/float64(from))
	taps := lowpass(blockIn+1, cutoff)
	copy(r.timeBuf, taps)
	r.filter = r.fftIn.Coefficients(nil, r.timeBuf)

	return r, nil
}

// SampleRates returns the input and output rates.
func (r *Resampler) SampleRates() (from, to int) { return r.from, r.to }

// Process consumes exactly ChunkFrames samples and returns whatever output
// became available. Output may be empty while the filter fills.
func (r *Resampler) Process(chunk []float32) ([]float32, error) {
	if len(chunk) != ChunkFrames {
		return nil, fmt.Errorf("%w: %w: got %d", ErrResample, ErrChunkSize, len(chunk))
	}

	for i, s := range chunk {
		if math.IsNaN(float64(s)) || math.IsInf(float64(s), 0) {
			return nil, fmt.Errorf("%w: %w at chunk offset %d", ErrResample, ErrNonFinite, i)
		}
	}

	for _, s := range chunk {
		r.pending = append(r.pending, float64(s))
	}

	var out []float32
	consumed := 0
	for len(r.pending)-consumed >= r.blockIn {
		out = r.processBlock(out, r.pending[consumed:consumed+r.blockIn])
		consumed += r.blockIn
	}
	n := copy(r.pending, r.pending[consumed:])
	r.pending = r.pending[:n]

	return r.dropDelay(out), nil
}

// Flush pushes the buffered input, zero padded to a full block, and one
// silent block through the filter so every sample still held by the
// overlap buffer comes out. The resampler is empty afterwards.
func (r *Resampler) Flush() []float32 {
	var out []float32

	block := make([]float64, r.blockIn)
	if len(r.pending) > 0 {
		copy(block, r.pending)
		r.pending = r.pending[:0]
		out = r.processBlock(out, block)
		clear(block)
	}
	out = r.processBlock(out, block)

	return r.dropDelay(out)
}

func (r *Resampler) processBlock(out []float32, block []float64) []float32 {
	clear(r.timeBuf)
	copy(r.timeBuf, block)
	r.fftIn.Coefficients(r.spec, r.timeBuf)

	clear(r.outSpec)
	n := min(len(r.spec), len(r.outSpec))
	for i := range n {
		r.outSpec[i] = r.spec[i] * r.filter[i]
	}
	r.fftOut.Sequence(r.outBuf, r.outSpec)

	for i := range r.blockOut {
		out = append(out, float32(r.outBuf[i]*r.scale+r.overlap[i]))
	}
	for i := range r.blockOut {
		r.overlap[i] = r.outBuf[r.blockOut+i] * r.scale
	}

	return out
}

func (r *Resampler) dropDelay(out []float32) []float32 {
	if r.skip == 0 {
		return out
	}
	d := min(r.skip, len(out))
	r.skip -= d
	return out[d:]
}

// Resample converts a complete mono signal from one rate to another.
// Equal rates return samples unchanged. The signal is fed in ChunkFrames
// chunks, the last one zero padded, then flushed; the result is trimmed to
// round(len(samples)*to/from) frames so the padding does not show up as
// trailing silence.
func Resample(samples []float32, from, to int) ([]float32, error) {
	if from == to {
		return samples, nil
	}

	r, err := NewResampler(from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create resampler: %w", ErrResample, err)
	}

	want := int(math.Round(float64(len(samples)) * float64(to) / float64(from)))
	out := make([]float32, 0, want+2*r.blockOut)

	chunk := make([]float32, ChunkFrames)
	for start := 0; start < len(samples); start += ChunkFrames {
		n := copy(chunk, samples[start:min(start+ChunkFrames, len(samples))])
		clear(chunk[n:])

		got, err := r.Process(chunk)
		if err != nil {
			return nil, err
		}
		out = append(out, got...)
	}
	out = append(out, r.Flush()...)

	if len(out) > want {
		out = out[:want]
	}

	return out, nil
}

// lowpass returns a Blackman-windowed sinc with unity DC gain. cutoff is
// relative to the input Nyquist frequency.
func lowpass(taps int, cutoff float64) []float64 {
	h := make([]float64, taps)
	center := float64(taps-1) / 2

	var sum float64
	for n := range h {
		h[n] = cutoff * sinc(cutoff*(float64(n)-center)) * blackman(n, taps)
		sum += h[n]
	}
	for n := range h {
		h[n] /= sum
	}

	return h
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(math.Pi*x) / (math.Pi * x)
}

func blackman(n, size int) float64 {
	t := 2 * math.Pi * float64(n) / float64(size-1)
	return 0.42 - 0.5*math.Cos(t) + 0.08*math.Cos(2*t)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
