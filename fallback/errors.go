// SPDX-License-Identifier: EPL-2.0

package fallback

import (
	"errors"
	"fmt"
)

var (
	// ErrFallback matches every *Error through errors.Is.
	ErrFallback = errors.New("external conversion failed")

	// ErrEmptyOutput indicates ffmpeg exited cleanly but wrote nothing.
	ErrEmptyOutput = errors.New("ffmpeg produced an empty output file")
)

// Error describes a failed external conversion.
type Error struct {
	// Op is the step that failed: "create input", "write input",
	// "create output", "run" or "read output".
	Op string
	// ExitCode is the ffmpeg exit status, zero when it never ran to exit.
	ExitCode int
	// Output is the trimmed combined stdout and stderr of ffmpeg.
	Output string
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.ExitCode != 0:
		return fmt.Sprintf("fallback %s: ffmpeg exited with code %d: %s", e.Op, e.ExitCode, e.Output)
	case e.Output != "":
		return fmt.Sprintf("fallback %s: %v: %s", e.Op, e.Err, e.Output)
	default:
		return fmt.Sprintf("fallback %s: %v", e.Op, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports ErrFallback as a match.
func (e *Error) Is(target error) bool { return target == ErrFallback }
