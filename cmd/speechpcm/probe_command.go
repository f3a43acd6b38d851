// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/speechpcm"
)

func newProbeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "probe <file>",
		Short: "Show the detected format and the conversion plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			logger, err := ctx.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			f, _, ok := speechpcm.DefaultRegistry().Detect(data)
			logger.Debug("probed input",
				slog.String("path", args[0]),
				slog.Int("size", len(data)),
				slog.Bool("recognized", ok),
			)
			if !ok {
				fmt.Fprintln(out, "Format: unrecognized container (fallback)")
				return nil
			}

			fmt.Fprintf(out, "Format: %s\n", f)
			fmt.Fprintf(out, "Plan:   %s\n", describePlan(speechpcm.NewPlan(f)))
			return nil
		},
	}
}

func describePlan(p speechpcm.Plan) string {
	if p.IsPassthrough() {
		return "passthrough"
	}

	var steps []string
	if p.NeedsMix {
		steps = append(steps, "mix")
	}
	if p.NeedsResample {
		steps = append(steps, "resample")
	}
	if p.NeedsRequantize {
		steps = append(steps, "requantize")
	}
	if p.NeedsRewrap {
		steps = append(steps, "rewrap")
	}
	return strings.Join(steps, ", ")
}
