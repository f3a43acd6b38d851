// SPDX-License-Identifier: EPL-2.0

// Package config loads, normalizes, and validates speechpcm settings.
//
// Settings come from TOML, looked up at ~/.config/speechpcm/config.toml and
// then ./speechpcm.toml unless a path is given. Missing files fall back to
// the defaults. The SPEECHPCM_FFMPEG environment variable overrides the
// ffmpeg binary, and paths with a leading tilde are expanded.
package config
