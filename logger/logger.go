package logger

import (
	"github.com/goatl/goatl-go/core"
)

// Logger is the capability through which the wrap engine emits log
// records. Implementations must be safe for concurrent use. A non-nil
// error signals a backend failure; callers on a surfaced path are
// expected to propagate it rather than swallow it.
type Logger interface {
	Emit(level core.Level, msg string, fields ...core.Field) error
}

// Ref is a lazy reference to a Logger: either a concrete instance or a
// name resolved against the registry at emission time. The zero Ref
// resolves to the default logger.
type Ref struct {
	name   string
	logger Logger
}

// To returns a Ref bound to a concrete logger
func To(l Logger) Ref {
	return Ref{logger: l}
}

// Named returns a Ref that resolves the name at emission time
func Named(name string) Ref {
	return Ref{name: name}
}

// IsZero reports whether the Ref carries neither a logger nor a name
func (r Ref) IsZero() bool {
	return r.logger == nil && r.name == ""
}

// Resolve returns the concrete logger the Ref points at. Resolution of
// named refs is deliberately late so that loggers registered or
// reconfigured after the Ref was created are still picked up.
func (r Ref) Resolve() Logger {
	if r.logger != nil {
		return r.logger
	}
	if r.name != "" {
		return Get(r.name)
	}
	return Default()
}
