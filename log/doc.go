// Package log provides a concurrency-safe leveled logger based on
// [log/slog].
//
// Loggers are configured with functional options when they are made:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatJSON),
//		log.WithTimeLayout("kitchen"),
//		log.WithCaller(true))
//
// Every method takes typed [slog.Attr] values rather than loose key/value
// pairs:
//
//	logger.Info("table loaded", slog.String("path", path))
//
// A zero [Logger] discards everything, so it can be embedded in structs and
// used before anything configures it. [LevelTrace] sits below
// [LevelDebug] and is used for per-token records from the parse engine.
//
// The package-level functions ([Info], [Error], and so on) log through a
// default logger that writes to standard error and is reconfigured with
// [Config]. Context-unaware variants use [DefaultContextProvider].
//
// # Output Formats
//
// [FormatText] (default) and [FormatJSON] are supported. With
// [WithPretty], both are colorized when writing to a terminal.
package log
