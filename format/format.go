package format

import (
	"github.com/goatl/goatl-go/core"
)

// Formatter renders a log record into bytes, including the trailing
// newline where the output is line-oriented.
type Formatter interface {
	Format(rec *core.Record) ([]byte, error)
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time layout (empty for RFC3339)
	TimestampFormat string
	// IncludeCaller enables caller information in the output
	IncludeCaller bool
}
