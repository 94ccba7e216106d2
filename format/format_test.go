package format

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/goatl/goatl-go/core"
)

func testRecord() *core.Record {
	return &core.Record{
		Time:    time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC),
		Level:   core.InfoLevel,
		Message: "test message",
		Fields: []core.Field{
			{Key: "str", Type: core.StringType, Str: "value"},
			{Key: "int", Type: core.Int64Type, Int64: 42},
		},
	}
}

func TestTextFormatter(t *testing.T) {
	f := NewTextFormatter(Config{})
	b, err := f.Format(testRecord())
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}

	out := string(b)
	if !strings.HasPrefix(out, "2024-01-02T15:04:05Z [INFO] test message") {
		t.Errorf("Unexpected prefix: %s", out)
	}
	if !strings.Contains(out, "str=value") {
		t.Errorf("Expected 'str=value' in output, got: %s", out)
	}
	if !strings.Contains(out, "int=42") {
		t.Errorf("Expected 'int=42' in output, got: %s", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("Expected trailing newline")
	}
}

func TestTextFormatter_CustomTimestamp(t *testing.T) {
	f := NewTextFormatter(Config{TimestampFormat: "15:04:05"})
	b, err := f.Format(testRecord())
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	if !strings.HasPrefix(string(b), "15:04:05 ") {
		t.Errorf("Expected custom timestamp layout, got: %s", b)
	}
}

func TestTextFormatter_Caller(t *testing.T) {
	f := NewTextFormatter(Config{IncludeCaller: true})
	rec := testRecord()
	rec.Caller = core.CallerInfo{ShortFile: "app.go", Line: 17, Defined: true}

	b, err := f.Format(rec)
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	if !strings.Contains(string(b), "[app.go:17]") {
		t.Errorf("Expected '[app.go:17]' in output, got: %s", b)
	}
}

func TestJSONFormatter(t *testing.T) {
	f := NewJSONFormatter(Config{})
	b, err := f.Format(testRecord())
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, b)
	}

	if decoded["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", decoded["level"])
	}
	if decoded["message"] != "test message" {
		t.Errorf("message = %v, want 'test message'", decoded["message"])
	}

	fields, ok := decoded["fields"].(map[string]interface{})
	if !ok {
		t.Fatalf("fields = %v, want an object", decoded["fields"])
	}
	if fields["str"] != "value" {
		t.Errorf("fields.str = %v, want value", fields["str"])
	}
	if fields["int"] != float64(42) {
		t.Errorf("fields.int = %v, want 42", fields["int"])
	}
}

func TestJSONFormatter_NoFields(t *testing.T) {
	f := NewJSONFormatter(Config{})
	rec := testRecord()
	rec.Fields = nil

	b, err := f.Format(rec)
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	if strings.Contains(string(b), "fields") {
		t.Errorf("Expected fields to be omitted, got: %s", b)
	}
}
