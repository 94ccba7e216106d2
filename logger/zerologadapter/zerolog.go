// Package zerologadapter turns a zerolog.Logger into the goatl Logger
// capability.
package zerologadapter

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/goatl/goatl-go/core"
)

// Adapter implements logger.Logger on top of a zerolog.Logger
type Adapter struct {
	l zerolog.Logger
}

// New creates an adapter around l
func New(l zerolog.Logger) *Adapter {
	return &Adapter{l: l}
}

// Emit implements logger.Logger
func (a *Adapter) Emit(level core.Level, msg string, fields ...core.Field) error {
	// WithLevel never terminates the process, unlike Fatal
	e := a.l.WithLevel(toZerologLevel(level))
	for _, f := range fields {
		e = addField(e, f)
	}
	e.Msg(msg)
	return nil
}

func toZerologLevel(level core.Level) zerolog.Level {
	switch level {
	case core.DebugLevel:
		return zerolog.DebugLevel
	case core.InfoLevel:
		return zerolog.InfoLevel
	case core.WarnLevel:
		return zerolog.WarnLevel
	case core.ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.FatalLevel
	}
}

func addField(e *zerolog.Event, f core.Field) *zerolog.Event {
	switch f.Type {
	case core.StringType, core.ErrorType:
		return e.Str(f.Key, f.Str)
	case core.Int64Type:
		return e.Int64(f.Key, f.Int64)
	case core.Float64Type:
		return e.Float64(f.Key, f.Float64)
	case core.BoolType:
		return e.Bool(f.Key, f.Int64 == 1)
	case core.TimeType:
		return e.Time(f.Key, time.Unix(0, f.Int64))
	case core.DurationType:
		return e.Dur(f.Key, time.Duration(f.Int64))
	default:
		return e.Interface(f.Key, f.Any)
	}
}
