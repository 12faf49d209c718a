// Package logger is the public API of conlog. Most users only need to
// import this package.
//
// A ConsoleLogger writes leveled messages to a handler.StyledOutput. Each
// call goes through the same steps:
//
//   - The output's verbosity decides whether the level is shown at all.
//     Hidden messages return before anything is touched.
//   - The logger's style table replaces the output's for the duration of
//     the call. The output keeps its decoration flag, and both are put
//     back by a deferred restore, whatever happens during the writes.
//   - {key} placeholders are filled from the context.
//   - The text is split into lines (\n, \r\n or \r) and every line is
//     written on its own, wrapped in the level's style.
//   - An error stored under "exception" or "error" adds its trace as
//     further lines in the same style.
//
// The package initializes a default ConsoleLogger on stdout in init().
// The package-level functions Info, Error, Warningf, etc. delegate to it:
//
//	logger.Notice("user {name} logged in", logger.String("name", "alice"))
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithOutput(out).
//	    WithStyles(styles).
//	    WithFields(logger.String("service", "api")).
//	    Build()
//
// A ConsoleLogger is immutable after construction but it is not
// synchronized: the style swap mutates the shared output, so concurrent
// calls on one output must be serialized by the caller.
//
// LineWriter turns the logger into an io.WriteCloser for piping command
// output. NewSlogHandler and NewZapCore let log/slog and zap loggers write
// through a ConsoleLogger.
package logger
