// SPDX-License-Identifier: EPL-2.0

// Package fallback converts audio the native pipeline cannot handle by
// running ffmpeg as a subprocess.
//
// The input bytes go to a scratch file with the ".audio" suffix, ffmpeg
// writes a ".wav" scratch file, and both are removed when Convert returns:
//
//	ffmpeg -hide_banner -loglevel error -i IN -ar 16000 -ac 1 -c:a pcm_s16le -y OUT
//
// Every failure is reported as an *Error carrying the failed step, the
// exit code and the trimmed ffmpeg output. Callers test for it with
// errors.Is(err, ErrFallback) or errors.As.
package fallback
