// SPDX-License-Identifier: EPL-2.0

package speechpcm

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/ik5/speechpcm/audio"
	"github.com/ik5/speechpcm/fallback"
	"github.com/ik5/speechpcm/formats/aiff"
	"github.com/ik5/speechpcm/formats/wav"
)

// Fallback converts input the native pipeline gave up on. Its result is
// final. *fallback.Transcoder implements it.
type Fallback interface {
	Convert(ctx context.Context, data []byte) ([]byte, error)
}

// stage tracks how far a single Convert call got.
type stage int

const (
	stageNotAttempted stage = iota
	stageNativeFailed
	stageDone
)

// DefaultRegistry returns a registry probing WAV first, then AIFF.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Codec{})
	r.Register("aiff", aiff.Codec{})
	return r
}

// Converter turns arbitrary audio bytes into 16 kHz mono 16-bit PCM WAV.
// It holds no per-call state and is safe for concurrent use.
type Converter struct {
	registry *audio.Registry
	fallback Fallback
	logger   *slog.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithFallback replaces the ffmpeg transcoder.
func WithFallback(f Fallback) Option {
	return func(c *Converter) {
		if f != nil {
			c.fallback = f
		}
	}
}

// WithRegistry replaces the codecs probed on the native path.
func WithRegistry(r *audio.Registry) Option {
	return func(c *Converter) {
		if r != nil {
			c.registry = r
		}
	}
}

// NewConverter returns a Converter with DefaultRegistry and an ffmpeg
// Transcoder from PATH unless options say otherwise.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.registry == nil {
		c.registry = DefaultRegistry()
	}
	if c.fallback == nil {
		c.fallback = fallback.New(fallback.WithLogger(c.logger))
	}

	return c
}

// Convert returns data as 16 kHz mono 16-bit PCM WAV.
//
// Input that already has exactly that format is returned unchanged, the
// same slice. Other input a registered codec recognizes goes through the
// native pipeline. Unrecognized input, and input the native pipeline fails
// on at any stage, is handed once to the fallback, whose result is final.
//
// The only error Convert returns is a *fallback.Error. ctx is passed to the
// fallback.
func (c *Converter) Convert(ctx context.Context, data []byte) ([]byte, error) {
	log := c.logger.With(slog.String("call_id", uuid.NewString()))

	var (
		st  = stageNotAttempted
		out []byte
	)

	f, codec, ok := c.registry.Detect(data)
	if !ok {
		log.DebugContext(ctx, "input format not recognized natively", slog.Int("size", len(data)))
		st = stageNativeFailed
	}

	if st == stageNotAttempted {
		plan := NewPlan(f)
		log.DebugContext(ctx, "input audio format",
			slog.Any("format", f),
			slog.Any("plan", plan),
		)

		if f.IsTarget() {
			log.DebugContext(ctx, "input already matches the target format")
			return data, nil
		}

		res, err := Normalize(codec, data, f)
		if err != nil {
			attrs := []any{slog.Any("error", err)}
			var se *StageError
			if errors.As(err, &se) {
				attrs = append(attrs, slog.String("stage", se.Stage))
			}
			log.WarnContext(ctx, "native conversion failed, using fallback", attrs...)
			st = stageNativeFailed
		} else {
			out = res
			st = stageDone
		}
	}

	switch st {
	case stageDone:
		c.logOutput(ctx, log, out)
		return out, nil
	default:
		return c.runFallback(ctx, log, data)
	}
}

func (c *Converter) runFallback(ctx context.Context, log *slog.Logger, data []byte) ([]byte, error) {
	out, err := c.fallback.Convert(ctx, data)
	if err != nil {
		var fe *fallback.Error
		if !errors.As(err, &fe) {
			fe = &fallback.Error{Op: "run", Err: err}
		}
		log.ErrorContext(ctx, "fallback conversion failed", slog.Any("error", fe))
		return nil, fe
	}

	log.DebugContext(ctx, "fallback conversion finished", slog.Int("size", len(out)))
	c.logOutput(ctx, log, out)

	return out, nil
}

// logOutput re-probes a produced file and logs its format at debug level.
func (c *Converter) logOutput(ctx context.Context, log *slog.Logger, out []byte) {
	if !log.Enabled(ctx, slog.LevelDebug) {
		return
	}

	f, ok := wav.Detect(out)
	if !ok {
		log.DebugContext(ctx, "output audio format not recognized", slog.Int("size", len(out)))
		return
	}
	log.DebugContext(ctx, "output audio format", slog.Any("format", f))
}
