package format

import (
	"bytes"
	"strconv"
	"time"

	"github.com/goatl/goatl-go/core"
)

// TextFormatter renders records as human-readable text:
//
//	2024-01-02T15:04:05Z [INFO] message key=value key=value
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// Format renders a record as a single text line
func (f *TextFormatter) Format(rec *core.Record) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(128)

	buf.WriteString(rec.Time.Format(f.TimestampFormat))
	buf.WriteString(" [")
	buf.WriteString(rec.Level.String())
	buf.WriteString("] ")

	if f.IncludeCaller && rec.Caller.Defined {
		buf.WriteByte('[')
		buf.WriteString(rec.Caller.ShortFile)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(rec.Caller.Line))
		buf.WriteString("] ")
	}

	buf.WriteString(rec.Message)

	for _, field := range rec.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}

	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
