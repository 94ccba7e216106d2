package logger

import (
	"fmt"
	"io"

	"github.com/goatl/goatl-go/core"
	"github.com/goatl/goatl-go/format"
)

// Setup describes a one-call configuration of the default logger,
// covering the common cases of console and file logging.
type Setup struct {
	// Level is the minimum severity; the zero value admits everything
	Level core.Level
	// Format selects the formatter: "text" (default) or "json"
	Format string
	// TimestampFormat overrides the formatter's time layout
	TimestampFormat string
	// Writer receives console output (default: os.Stdout); set to
	// io.Discard to disable console output when File is set
	Writer io.Writer
	// File, when non-empty, additionally appends records to this path
	File string
	// Async buffers writes behind a bounded queue
	Async bool
	// BufferSize is the async queue size (default: 1000)
	BufferSize int
	// IncludeCaller enables call-site information
	IncludeCaller bool
}

// Configure builds a Std logger from s and installs it as the default.
// It is the programmatic analog of a basic logging config: level,
// format, console, and an optional file in one call.
func Configure(s Setup) error {
	f, err := newFormatter(s.Format, s.TimestampFormat, s.IncludeCaller)
	if err != nil {
		return err
	}

	out := NewWriterOutput(s.Writer, f)
	if s.File != "" {
		fileOut, err := NewFileOutput(s.File, f)
		if err != nil {
			return err
		}
		out = NewMultiOutput(out, fileOut)
	}
	if s.Async {
		out = NewAsyncOutput(out, s.BufferSize)
	}

	SetDefault(NewStd(Config{
		Level:         s.Level,
		Output:        out,
		IncludeCaller: s.IncludeCaller,
	}))
	return nil
}

// AddConsole extends the default logger with an additional console
// output. The default logger must be a Std.
func AddConsole(w io.Writer, f format.Formatter) error {
	return addOutput(NewWriterOutput(w, f))
}

// AddFile extends the default logger with a file output appending to
// path. The default logger must be a Std.
func AddFile(path string, f format.Formatter) error {
	out, err := NewFileOutput(path, f)
	if err != nil {
		return err
	}
	return addOutput(out)
}

func addOutput(out Output) error {
	std, ok := Default().(*Std)
	if !ok {
		return fmt.Errorf("logger: default logger is %T, not *Std", Default())
	}
	SetDefault(std.WithOutput(out))
	return nil
}

func newFormatter(name, timestampFormat string, includeCaller bool) (format.Formatter, error) {
	cfg := format.Config{TimestampFormat: timestampFormat, IncludeCaller: includeCaller}
	switch name {
	case "", "text":
		return format.NewTextFormatter(cfg), nil
	case "json":
		return format.NewJSONFormatter(cfg), nil
	default:
		return nil, fmt.Errorf("logger: unknown format %q", name)
	}
}
