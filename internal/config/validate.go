// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateFFmpeg(); err != nil {
		return err
	}
	return c.validateLog()
}

func (c *Config) validateFFmpeg() error {
	if c.FFmpeg.Binary == "" {
		return errors.New("ffmpeg.binary must be set")
	}
	if c.FFmpeg.TempDir != "" {
		info, err := os.Stat(c.FFmpeg.TempDir)
		if err != nil {
			return fmt.Errorf("ffmpeg.temp_dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("ffmpeg.temp_dir %q is not a directory", c.FFmpeg.TempDir)
		}
	}
	return nil
}

func (c *Config) validateLog() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: unsupported value %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format: unsupported value %q", c.Log.Format)
	}
	return nil
}
