// SPDX-License-Identifier: EPL-2.0

// Package logging builds the slog loggers used by the speechpcm command.
//
// Library packages never construct loggers; they accept a *slog.Logger
// through options. This package turns the log section of the config into a
// text or JSON handler writing to stderr.
package logging
