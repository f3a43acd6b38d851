// SPDX-License-Identifier: EPL-2.0

package speechpcm

import (
	"log/slog"

	"github.com/ik5/speechpcm/audio"
)

// Plan lists the transformations that separate a detected format from
// audio.Target. It only informs logging and branching.
type Plan struct {
	NeedsMix        bool
	NeedsResample   bool
	NeedsRequantize bool
	// NeedsRewrap is set for any container other than WAV, so an AIFF
	// file already at 16 kHz mono 16-bit is still re-encoded.
	NeedsRewrap bool
}

func NewPlan(f audio.Format) Plan {
	return Plan{
		NeedsMix:        f.Channels > 1,
		NeedsResample:   f.SampleRate != audio.Target.SampleRate,
		NeedsRequantize: f.BitsPerSample != audio.Target.BitsPerSample || f.Encoding != audio.Target.Encoding,
		NeedsRewrap:     f.Container != audio.Target.Container,
	}
}

// IsPassthrough reports whether no transformation is needed at all.
func (p Plan) IsPassthrough() bool {
	return !p.NeedsMix && !p.NeedsResample && !p.NeedsRequantize && !p.NeedsRewrap
}

// LogValue implements slog.LogValuer.
func (p Plan) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("mix", p.NeedsMix),
		slog.Bool("resample", p.NeedsResample),
		slog.Bool("requantize", p.NeedsRequantize),
		slog.Bool("rewrap", p.NeedsRewrap),
	)
}
