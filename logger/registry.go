package logger

import (
	"sync"

	"github.com/goatl/goatl-go/core"
)

var (
	registryMu    sync.RWMutex
	registry      = make(map[string]Logger)
	defaultLogger Logger = NewStd(Config{})
)

// Default returns the default logger
func Default() Logger {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l Logger) {
	registryMu.Lock()
	defer registryMu.Unlock()
	defaultLogger = l
}

// Register binds a name to a logger so that Named refs and Get resolve
// to it.
func Register(name string, l Logger) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = l
}

// Get returns the logger registered under name. When no logger is
// registered, it returns a child that emits through the current default
// logger with a "logger" field carrying the name, so configuring the
// default later still takes effect.
func Get(name string) Logger {
	registryMu.RLock()
	l, ok := registry[name]
	registryMu.RUnlock()
	if ok {
		return l
	}
	return childLogger{name: name}
}

// childLogger is an unregistered named logger. It holds no backend of
// its own; every emission goes through the default logger active at
// that moment.
type childLogger struct {
	name string
}

func (c childLogger) Emit(level core.Level, msg string, fields ...core.Field) error {
	tagged := make([]core.Field, 0, len(fields)+1)
	tagged = append(tagged, String("logger", c.name))
	tagged = append(tagged, fields...)
	return Default().Emit(level, msg, tagged...)
}
