// Package zapadapter turns a zap.Logger into the goatl Logger
// capability, so wrapped functions emit through zap.
package zapadapter

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goatl/goatl-go/core"
)

// Adapter implements logger.Logger on top of a zap.Logger
type Adapter struct {
	l *zap.Logger
}

// New creates an adapter around l
func New(l *zap.Logger) *Adapter {
	return &Adapter{l: l}
}

// Emit implements logger.Logger
func (a *Adapter) Emit(level core.Level, msg string, fields ...core.Field) error {
	zf := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		zf = append(zf, toZapField(f))
	}
	a.l.Log(toZapLevel(level), msg, zf...)
	return nil
}

// toZapLevel maps core levels onto zapcore levels. Critical maps to
// Error: zap's higher levels carry panic/exit side effects this
// adapter must not trigger.
func toZapLevel(level core.Level) zapcore.Level {
	switch level {
	case core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

func toZapField(f core.Field) zap.Field {
	switch f.Type {
	case core.StringType, core.ErrorType:
		return zap.String(f.Key, f.Str)
	case core.Int64Type:
		return zap.Int64(f.Key, f.Int64)
	case core.Float64Type:
		return zap.Float64(f.Key, f.Float64)
	case core.BoolType:
		return zap.Bool(f.Key, f.Int64 == 1)
	case core.TimeType:
		return zap.Time(f.Key, time.Unix(0, f.Int64))
	case core.DurationType:
		return zap.Duration(f.Key, time.Duration(f.Int64))
	default:
		return zap.Any(f.Key, f.Any)
	}
}
