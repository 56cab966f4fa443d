// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// A [Logger] is an immutable value. Options are applied at creation time
// and every derived logger is a copy, so a Logger can be shared freely
// between goroutines.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("started", slog.String("version", pkg.Version()))
//	logger.Error("statement failed", slog.Int("line", 3))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// # Levels
//
// Five levels are defined: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Messages below the configured level
// are discarded.
//
// # Output Formats
//
// [FormatJSON] (default) and [FormatText] are supported. [WithPretty]
// selects colorized variants of either, intended for terminals.
//
// # Package-Level Logger
//
// The package-level functions write to a default logger on stderr.
// [Config] and [SetDefault] replace it atomically.
package log
