package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goatl/goatl-go/core"
	"github.com/goatl/goatl-go/format"
)

func textRecord(msg string) *core.Record {
	return &core.Record{
		Time:    time.Now(),
		Level:   core.InfoLevel,
		Message: msg,
	}
}

func TestWriterOutput_Closed(t *testing.T) {
	var buf bytes.Buffer
	out := NewWriterOutput(&buf, nil)

	if err := out.Write(textRecord("before")); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if err := out.Write(textRecord("after")); !errors.Is(err, ErrOutputClosed) {
		t.Errorf("Expected ErrOutputClosed, got %v", err)
	}
	if strings.Contains(buf.String(), "after") {
		t.Error("Record written after Close reached the writer")
	}
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	out, err := NewFileOutput(path, format.NewTextFormatter(format.Config{}))
	if err != nil {
		t.Fatalf("NewFileOutput returned error: %v", err)
	}
	if err := out.Write(textRecord("to file")); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("Expected 'to file' in log file, got: %s", data)
	}
}

func TestFileOutput_Append(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	for _, msg := range []string{"first", "second"} {
		out, err := NewFileOutput(path, format.NewTextFormatter(format.Config{}))
		if err != nil {
			t.Fatalf("NewFileOutput returned error: %v", err)
		}
		if err := out.Write(textRecord(msg)); err != nil {
			t.Fatalf("Write returned error: %v", err)
		}
		if err := out.Close(); err != nil {
			t.Fatalf("Close returned error: %v", err)
		}
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "first") || !strings.Contains(string(data), "second") {
		t.Errorf("Expected both records in the file, got: %s", data)
	}
}

func TestAsyncOutput_DrainOnClose(t *testing.T) {
	var buf bytes.Buffer
	out := NewAsyncOutput(NewWriterOutput(&buf, nil), 64)

	for i := 0; i < 10; i++ {
		if err := out.Write(textRecord("queued")); err != nil {
			t.Fatalf("Write returned error: %v", err)
		}
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	if got := strings.Count(buf.String(), "queued"); got != 10 {
		t.Errorf("Expected 10 drained records, got %d", got)
	}
}

func TestAsyncOutput_WriteAfterClose(t *testing.T) {
	var buf bytes.Buffer
	out := NewAsyncOutput(NewWriterOutput(&buf, nil), 8)
	if err := out.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	if err := out.Write(textRecord("late")); !errors.Is(err, ErrOutputClosed) {
		t.Errorf("Expected ErrOutputClosed after Close, got: %v", err)
	}
	if strings.Contains(buf.String(), "late") {
		t.Error("Record written after Close reached the sink")
	}
}

func TestAsyncOutput_CloseTwice(t *testing.T) {
	out := NewAsyncOutput(NewWriterOutput(&bytes.Buffer{}, nil), 8)
	if err := out.Close(); err != nil {
		t.Fatalf("First Close returned error: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Second Close returned error: %v", err)
	}
}

func TestMultiOutput(t *testing.T) {
	var a, b bytes.Buffer
	out := NewMultiOutput(
		NewWriterOutput(&a, nil),
		NewWriterOutput(&b, nil),
	)

	if err := out.Write(textRecord("fan out")); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if !strings.Contains(a.String(), "fan out") {
		t.Error("First output did not receive the record")
	}
	if !strings.Contains(b.String(), "fan out") {
		t.Error("Second output did not receive the record")
	}
}
