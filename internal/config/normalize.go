// SPDX-License-Identifier: EPL-2.0

package config

import (
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeFFmpeg(); err != nil {
		return err
	}
	c.normalizeLog()
	return nil
}

func (c *Config) normalizeFFmpeg() error {
	if value, ok := os.LookupEnv(ffmpegBinaryEnvVar); ok && strings.TrimSpace(value) != "" {
		c.FFmpeg.Binary = value
	}

	c.FFmpeg.Binary = strings.TrimSpace(c.FFmpeg.Binary)
	if c.FFmpeg.Binary == "" {
		c.FFmpeg.Binary = defaultFFmpeg
	}
	// bare names stay as they are for the PATH lookup
	if strings.ContainsAny(c.FFmpeg.Binary, `/\`) || strings.HasPrefix(c.FFmpeg.Binary, "~") {
		expanded, err := expandPath(c.FFmpeg.Binary)
		if err != nil {
			return err
		}
		c.FFmpeg.Binary = expanded
	}

	tempDir, err := expandPath(strings.TrimSpace(c.FFmpeg.TempDir))
	if err != nil {
		return err
	}
	c.FFmpeg.TempDir = tempDir

	return nil
}

func (c *Config) normalizeLog() {
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	if c.Log.Format == "" {
		c.Log.Format = defaultLogFormat
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
}
