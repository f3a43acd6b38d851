// SPDX-License-Identifier: EPL-2.0

// Command speechpcm converts audio files to 16 kHz mono 16-bit PCM WAV.
//
//	speechpcm convert input.flac output.wav
//	speechpcm probe input.wav
//	speechpcm config init
//
// Settings are read from ~/.config/speechpcm/config.toml or ./speechpcm.toml;
// --config, --log-level and --ffmpeg override them.
package main
