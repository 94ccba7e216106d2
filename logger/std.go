package logger

import (
	"time"

	"github.com/goatl/goatl-go/core"
	"github.com/goatl/goatl-go/format"
)

// Config holds configuration for a Std logger
type Config struct {
	// Level is the minimum severity to emit; the zero value admits
	// everything
	Level core.Level
	// Output receives formatted records (default: sync stdout, text)
	Output Output
	// Fields are attached to every record
	Fields []core.Field
	// IncludeCaller enables call-site information
	IncludeCaller bool
	// CallerSkip is the number of frames to skip when IncludeCaller
	// is set (default: 3, the Emit call site)
	CallerSkip int
}

// Std is the built-in writer-backed logger. It is immutable after
// construction: the level, output, and bound fields never change,
// which makes it safe for concurrent use without locking.
type Std struct {
	level         core.Level
	out           Output
	fields        []core.Field
	includeCaller bool
	callerSkip    int
}

// NewStd creates a Std logger from cfg, filling unset values with
// defaults.
func NewStd(cfg Config) *Std {
	if cfg.Output == nil {
		cfg.Output = NewWriterOutput(nil, format.NewTextFormatter(format.Config{}))
	}
	if cfg.CallerSkip == 0 {
		cfg.CallerSkip = 3
	}
	return &Std{
		level:         cfg.Level,
		out:           cfg.Output,
		fields:        cfg.Fields,
		includeCaller: cfg.IncludeCaller,
		callerSkip:    cfg.CallerSkip,
	}
}

// With returns a new Std carrying additional bound fields
func (s *Std) With(fields ...core.Field) *Std {
	merged := make([]core.Field, 0, len(s.fields)+len(fields))
	merged = append(merged, s.fields...)
	merged = append(merged, fields...)

	return &Std{
		level:         s.level,
		out:           s.out,
		fields:        merged,
		includeCaller: s.includeCaller,
		callerSkip:    s.callerSkip,
	}
}

// WithOutput returns a new Std that writes to both the current output
// and out.
func (s *Std) WithOutput(out Output) *Std {
	return &Std{
		level:         s.level,
		out:           NewMultiOutput(s.out, out),
		fields:        s.fields,
		includeCaller: s.includeCaller,
		callerSkip:    s.callerSkip,
	}
}

// WithLevel returns a new Std gated at level
func (s *Std) WithLevel(level core.Level) *Std {
	return &Std{
		level:         level,
		out:           s.out,
		fields:        s.fields,
		includeCaller: s.includeCaller,
		callerSkip:    s.callerSkip,
	}
}

// Emit implements Logger. Records below the configured level are
// dropped before any allocation.
func (s *Std) Emit(level core.Level, msg string, fields ...core.Field) error {
	if level < s.level {
		return nil
	}

	rec := &core.Record{
		Time:    time.Now(),
		Level:   level,
		Message: msg,
	}

	if len(s.fields) > 0 || len(fields) > 0 {
		rec.Fields = make([]core.Field, 0, len(s.fields)+len(fields))
		rec.Fields = append(rec.Fields, s.fields...)
		rec.Fields = append(rec.Fields, fields...)
	}

	if s.includeCaller {
		rec.Caller = core.Caller(s.callerSkip)
	}

	return s.out.Write(rec)
}

// Debug emits a debug record, discarding any backend error
func (s *Std) Debug(msg string, fields ...core.Field) {
	_ = s.Emit(core.DebugLevel, msg, fields...)
}

// Info emits an info record, discarding any backend error
func (s *Std) Info(msg string, fields ...core.Field) {
	_ = s.Emit(core.InfoLevel, msg, fields...)
}

// Warn emits a warn record, discarding any backend error
func (s *Std) Warn(msg string, fields ...core.Field) {
	_ = s.Emit(core.WarnLevel, msg, fields...)
}

// Error emits an error record, discarding any backend error
func (s *Std) Error(msg string, fields ...core.Field) {
	_ = s.Emit(core.ErrorLevel, msg, fields...)
}

// Critical emits a critical record, discarding any backend error
func (s *Std) Critical(msg string, fields ...core.Field) {
	_ = s.Emit(core.CriticalLevel, msg, fields...)
}

// Close closes the underlying output
func (s *Std) Close() error {
	return s.out.Close()
}
