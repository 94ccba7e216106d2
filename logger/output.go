package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/goatl/goatl-go/core"
	"github.com/goatl/goatl-go/format"
)

// Output receives finished records and delivers them to a sink
type Output interface {
	Write(rec *core.Record) error
	Close() error
}

// ErrOutputClosed is returned when writing to a closed output
var ErrOutputClosed = errors.New("logger: output closed")

// writerOutput formats records and writes them synchronously to an
// io.Writer, serialized by a mutex.
type writerOutput struct {
	mu        sync.Mutex
	w         io.Writer
	formatter format.Formatter
	closed    bool
}

// NewWriterOutput creates a synchronous output writing to w
// (default: os.Stdout) using the given formatter (default: text).
func NewWriterOutput(w io.Writer, f format.Formatter) Output {
	if w == nil {
		w = os.Stdout
	}
	if f == nil {
		f = format.NewTextFormatter(format.Config{})
	}
	return &writerOutput{w: w, formatter: f}
}

func (o *writerOutput) Write(rec *core.Record) error {
	b, err := o.formatter.Format(rec)
	if err != nil {
		return fmt.Errorf("format record: %w", err)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return ErrOutputClosed
	}
	_, err = o.w.Write(b)
	return err
}

func (o *writerOutput) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.closed = true
	if c, ok := o.w.(io.Closer); ok && o.w != os.Stdout && o.w != os.Stderr {
		return c.Close()
	}
	return nil
}

// NewFileOutput creates a synchronous output appending to the file at
// path, creating it if necessary.
func NewFileOutput(path string, f format.Formatter) (Output, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return NewWriterOutput(file, f), nil
}

// asyncOutput decouples callers from the sink with a bounded queue
// drained by a background goroutine. When the queue is full the record
// is dropped rather than blocking the caller. Shutdown is signalled
// through a separate channel; the queue itself is never closed, so a
// producer racing Close gets ErrOutputClosed instead of a panic.
type asyncOutput struct {
	next         Output
	queue        chan *core.Record
	closed       chan struct{}
	done         chan struct{}
	closeOnce    sync.Once
	drainTimeout time.Duration
}

// NewAsyncOutput wraps next with a bounded asynchronous queue of the
// given size (default: 1000). Close drains outstanding records for up
// to five seconds before closing next.
func NewAsyncOutput(next Output, size int) Output {
	if size <= 0 {
		size = 1000
	}
	o := &asyncOutput{
		next:         next,
		queue:        make(chan *core.Record, size),
		closed:       make(chan struct{}),
		done:         make(chan struct{}),
		drainTimeout: 5 * time.Second,
	}
	go o.run()
	return o
}

func (o *asyncOutput) run() {
	defer close(o.done)
	for {
		select {
		case rec := <-o.queue:
			_ = o.next.Write(rec)
		case <-o.closed:
			// drain what is left, bounded by the drain timeout
			deadline := time.After(o.drainTimeout)
			for {
				select {
				case rec := <-o.queue:
					_ = o.next.Write(rec)
				case <-deadline:
					return
				default:
					return
				}
			}
		}
	}
}

func (o *asyncOutput) Write(rec *core.Record) error {
	select {
	case <-o.closed:
		return ErrOutputClosed
	default:
	}
	select {
	case o.queue <- rec:
		return nil
	default:
		// queue full: drop instead of stalling the caller
		return nil
	}
}

func (o *asyncOutput) Close() error {
	o.closeOnce.Do(func() {
		close(o.closed)
	})

	select {
	case <-o.done:
	case <-time.After(o.drainTimeout):
	}
	return o.next.Close()
}

// multiOutput fans one record out to several outputs
type multiOutput struct {
	outs []Output
}

// NewMultiOutput creates an output that delivers each record to every
// given output, returning the first error encountered.
func NewMultiOutput(outs ...Output) Output {
	return &multiOutput{outs: outs}
}

func (m *multiOutput) Write(rec *core.Record) error {
	var first error
	for _, o := range m.outs {
		if err := o.Write(rec); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (m *multiOutput) Close() error {
	var first error
	for _, o := range m.outs {
		if err := o.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
