// Package logging provides structured logging for the skillmeta CLI using slog.
//
// Text output goes through [Handler], a compact TTY-friendly handler that
// colorizes levels when the writer is a terminal. JSON output uses the
// standard [slog.JSONHandler]. [MultiHandler] fans records out to several
// handlers, which the CLI uses for --log-file.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(verbosity),
//		Format: logging.FormatText,
//	})
//	logger.Info("scanning", "root", root)
//
// Library packages accept an injected *slog.Logger; commands carry it in the
// command context via [NewContext] and [FromContext].
//
// # Testing
//
//	logger := logging.ForTest(t) // output appears on failure or with -v
package logging
