package logger

import (
	"sync"
	"time"

	"github.com/goatl/goatl-go/core"
)

// Memory is a Logger that retains every record in memory. It exists
// for tests and for inspecting emissions programmatically.
type Memory struct {
	mu      sync.Mutex
	records []core.Record
}

// NewMemory creates an empty in-memory logger
func NewMemory() *Memory {
	return &Memory{}
}

// Emit implements Logger
func (m *Memory) Emit(level core.Level, msg string, fields ...core.Field) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, core.Record{
		Time:    time.Now(),
		Level:   level,
		Message: msg,
		Fields:  append([]core.Field(nil), fields...),
	})
	return nil
}

// Records returns a copy of everything emitted so far
func (m *Memory) Records() []core.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]core.Record(nil), m.records...)
}

// Len returns the number of records emitted so far
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

// Reset discards all retained records
func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = nil
}
