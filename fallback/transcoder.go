// SPDX-License-Identifier: EPL-2.0

package fallback

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// DefaultBinary is looked up in PATH when no binary is configured.
const DefaultBinary = "ffmpeg"

// Transcoder converts arbitrary audio to 16 kHz mono 16-bit PCM WAV by
// running ffmpeg on temporary files.
type Transcoder struct {
	binary  string
	tempDir string
	logger  *slog.Logger
}

// Option configures a Transcoder.
type Option func(*Transcoder)

// WithBinary sets the ffmpeg executable. Empty keeps DefaultBinary.
func WithBinary(path string) Option {
	return func(t *Transcoder) {
		if path != "" {
			t.binary = path
		}
	}
}

// WithTempDir sets the directory for the scratch files. Empty means
// os.TempDir.
func WithTempDir(dir string) Option {
	return func(t *Transcoder) { t.tempDir = dir }
}

// WithLogger sets the logger for subprocess and cleanup records.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Transcoder) {
		if logger != nil {
			t.logger = logger
		}
	}
}

func New(opts ...Option) *Transcoder {
	t := &Transcoder{
		binary: DefaultBinary,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Binary returns the configured ffmpeg executable.
func (t *Transcoder) Binary() string { return t.binary }

// Args returns the ffmpeg arguments that convert in into out.
func Args(in, out string) []string {
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		"-i", in,
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		out,
	}
}

// Convert writes data to a scratch file, runs ffmpeg on it and returns the
// produced WAV bytes. Both scratch files are removed before Convert
// returns, on every path. Every failure is an *Error.
//
// ctx bounds the ffmpeg process; cancelling it kills the subprocess.
func (t *Transcoder) Convert(ctx context.Context, data []byte) ([]byte, error) {
	in, releaseIn, err := t.tempFile("input", "*.audio", data)
	if err != nil {
		return nil, err
	}
	defer releaseIn()

	out, releaseOut, err := t.tempFile("output", "*.wav", nil)
	if err != nil {
		return nil, err
	}
	defer releaseOut()

	args := Args(in, out)
	t.logger.DebugContext(ctx, "running ffmpeg",
		slog.String("binary", t.binary),
		slog.Any("args", args),
	)

	cmd := exec.CommandContext(ctx, t.binary, args...) //nolint:gosec
	output, err := cmd.CombinedOutput()
	if err != nil {
		fe := &Error{
			Op:     "run",
			Output: strings.TrimSpace(string(output)),
			Err:    err,
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			fe.ExitCode = exitErr.ExitCode()
		}
		return nil, fe
	}

	result, err := os.ReadFile(out)
	if err != nil {
		return nil, &Error{Op: "read output", Err: err}
	}
	if len(result) == 0 {
		return nil, &Error{
			Op:     "read output",
			Output: strings.TrimSpace(string(output)),
			Err:    ErrEmptyOutput,
		}
	}

	return result, nil
}

// tempFile creates a randomly named file matching pattern, fills it with
// data and closes it. The returned release func removes the file.
func (t *Transcoder) tempFile(role, pattern string, data []byte) (string, func(), error) {
	op := "create " + role

	f, err := os.CreateTemp(t.tempDir, pattern)
	if err != nil {
		return "", nil, &Error{Op: op, Err: err}
	}

	path := f.Name()
	release := func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			t.logger.Warn("failed to remove scratch file",
				slog.String("path", path),
				slog.Any("error", err),
			)
		}
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		release()
		return "", nil, &Error{Op: "write " + role, Err: err}
	}

	if err := f.Close(); err != nil {
		release()
		return "", nil, &Error{Op: op, Err: err}
	}

	return path, release, nil
}
