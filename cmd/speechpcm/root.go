// SPDX-License-Identifier: EPL-2.0

package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var (
		configFlag   string
		logLevelFlag string
		ffmpegFlag   string
	)

	ctx := newCommandContext(&configFlag, &logLevelFlag, &ffmpegFlag)

	rootCmd := &cobra.Command{
		Use:           "speechpcm",
		Short:         "Normalize audio to 16 kHz mono 16-bit PCM WAV",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&ffmpegFlag, "ffmpeg", "", "ffmpeg executable used for the fallback")

	rootCmd.AddCommand(newConvertCommand(ctx))
	rootCmd.AddCommand(newProbeCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
