package goatl

import (
	"github.com/goatl/goatl-go/core"
)

// Level re-exports the core type and constants for convenience
type Level = core.Level

const (
	DebugLevel    = core.DebugLevel
	InfoLevel     = core.InfoLevel
	WarnLevel     = core.WarnLevel
	ErrorLevel    = core.ErrorLevel
	CriticalLevel = core.CriticalLevel
)

// ParseLevel converts a level name to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
