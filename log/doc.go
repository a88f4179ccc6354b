// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// Loggers are created with [Make] and configured with functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithCaller(true))
//
// A package-level default logger writes to stderr; [Config] reconfigures it
// in place so early CLI flag handling can adjust logging before commands
// run. The zero Logger discards all messages, which lets library code accept
// a Logger without null checks.
//
// Two output formats are supported, [FormatJSON] and [FormatText]; the text
// format optionally renders with ANSI colors ([WithPretty]).
package log
