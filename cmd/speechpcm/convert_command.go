// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// stdioPath selects stdin or stdout instead of a file.
const stdioPath = "-"

func newConvertCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert an audio file to 16 kHz mono 16-bit PCM WAV",
		Long: "Convert reads the input file (or stdin for \"-\"), converts it natively when\n" +
			"possible and through ffmpeg otherwise, and writes the WAV file to output\n" +
			"(or stdout for \"-\").",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inPath, outPath := args[0], args[1]

			data, err := readInput(cmd.InOrStdin(), inPath)
			if err != nil {
				return err
			}

			conv, err := ctx.converter(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			out, err := conv.Convert(cmd.Context(), data)
			if err != nil {
				return fmt.Errorf("convert %s: %w", inPath, err)
			}

			if outPath == stdioPath {
				if _, err := cmd.OutOrStdout().Write(out); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				return nil
			}

			if err := os.WriteFile(outPath, out, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d bytes to %s\n", len(out), outPath)
			return nil
		},
	}
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == stdioPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}
