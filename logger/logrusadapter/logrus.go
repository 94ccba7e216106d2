// Package logrusadapter turns a logrus.Logger into the goatl Logger
// capability.
package logrusadapter

import (
	"github.com/sirupsen/logrus"

	"github.com/goatl/goatl-go/core"
)

// Adapter implements logger.Logger on top of a logrus.Logger
type Adapter struct {
	l *logrus.Logger
}

// New creates an adapter around l
func New(l *logrus.Logger) *Adapter {
	return &Adapter{l: l}
}

// Emit implements logger.Logger
func (a *Adapter) Emit(level core.Level, msg string, fields ...core.Field) error {
	lf := make(logrus.Fields, len(fields))
	for _, f := range fields {
		lf[f.Key] = f.Value()
	}
	a.l.WithFields(lf).Log(toLogrusLevel(level), msg)
	return nil
}

// toLogrusLevel maps core levels onto logrus levels. Critical maps to
// Error rather than Fatal or Panic, whose logrus semantics carry
// process side effects.
func toLogrusLevel(level core.Level) logrus.Level {
	switch level {
	case core.DebugLevel:
		return logrus.DebugLevel
	case core.InfoLevel:
		return logrus.InfoLevel
	case core.WarnLevel:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}
