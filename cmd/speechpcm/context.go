// SPDX-License-Identifier: EPL-2.0

package main

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/ik5/speechpcm"
	"github.com/ik5/speechpcm/fallback"
	"github.com/ik5/speechpcm/internal/config"
	"github.com/ik5/speechpcm/internal/logging"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string
	ffmpegFlag   *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag, ffmpegFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
		ffmpegFlag:   ffmpegFlag,
	}
}

// ensureConfig loads the config once and applies the flag overrides.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, resolved, _, err := config.Load(flagValue(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}

		if level := flagValue(c.logLevelFlag); level != "" {
			cfg.Log.Level = strings.ToLower(level)
		}
		if bin := flagValue(c.ffmpegFlag); bin != "" {
			// bare names stay as they are for the PATH lookup
			if strings.ContainsAny(bin, `/\`) || strings.HasPrefix(bin, "~") {
				expanded, err := config.ExpandPath(bin)
				if err != nil {
					c.configErr = err
					return
				}
				bin = expanded
			}
			cfg.FFmpeg.Binary = bin
		}

		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}

		c.config = cfg
		c.configPath = resolved
	})
	return c.config, c.configErr
}

func (c *commandContext) logger(w io.Writer) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.NewFromConfig(cfg, w)
}

func (c *commandContext) converter(w io.Writer) (*speechpcm.Converter, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	logger, err := c.logger(w)
	if err != nil {
		return nil, err
	}

	tr := fallback.New(
		fallback.WithBinary(cfg.FFmpeg.Binary),
		fallback.WithTempDir(cfg.FFmpeg.TempDir),
		fallback.WithLogger(logger),
	)

	return speechpcm.NewConverter(
		speechpcm.WithLogger(logger),
		speechpcm.WithFallback(tr),
	), nil
}

func flagValue(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
