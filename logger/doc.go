// Package logger defines the Logger capability consumed by the wrap
// engine and provides its built-in implementations.
//
// The engine talks to a single small interface:
//
//	type Logger interface {
//	    Emit(level core.Level, msg string, fields ...core.Field) error
//	}
//
// A Ref points at a Logger either directly (To) or by name (Named);
// named refs resolve against the registry at emission time, so a
// logger configured after the Ref was created is still picked up.
//
// Std is the writer-backed implementation: immutable after
// construction, level-gated before any allocation, writing through an
// Output. Outputs compose: a synchronous writer, an append-only file,
// an asynchronous bounded queue that drops on overflow and drains on
// Close, and a fan-out over several outputs.
//
// The package keeps a process-wide default logger. Configure installs
// a Std built from a Setup in one call; AddConsole and AddFile extend
// it with further sinks:
//
//	logger.Configure(logger.Setup{Level: core.DebugLevel, Format: "json"})
//	logger.AddFile("app.log", nil)
//
// Adapters for zap, zerolog, logrus, and log/slog live in the
// subpackages zapadapter, zerologadapter, logrusadapter, and
// slogadapter; each turns a third-party logger into a Logger so the
// engine can emit through it.
package logger
