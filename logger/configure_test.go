package logger

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goatl/goatl-go/core"
	"github.com/goatl/goatl-go/format"
)

func TestConfigure(t *testing.T) {
	old := Default()
	defer SetDefault(old)

	var buf bytes.Buffer
	if err := Configure(Setup{Level: core.WarnLevel, Writer: &buf}); err != nil {
		t.Fatalf("Configure returned error: %v", err)
	}

	_ = Default().Emit(core.InfoLevel, "filtered")
	_ = Default().Emit(core.WarnLevel, "kept")

	output := buf.String()
	if strings.Contains(output, "filtered") {
		t.Error("Info record passed a Warn gate")
	}
	if !strings.Contains(output, "kept") {
		t.Errorf("Expected 'kept' in output, got: %s", output)
	}
}

func TestConfigure_File(t *testing.T) {
	old := Default()
	defer SetDefault(old)

	path := filepath.Join(t.TempDir(), "app.log")
	if err := Configure(Setup{Writer: io.Discard, File: path}); err != nil {
		t.Fatalf("Configure returned error: %v", err)
	}

	_ = Default().Emit(core.InfoLevel, "to file")
	if std, ok := Default().(*Std); ok {
		_ = std.Close()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("Expected 'to file' in log file, got: %s", data)
	}
}

func TestConfigure_UnknownFormat(t *testing.T) {
	if err := Configure(Setup{Format: "xml"}); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestConfigure_JSON(t *testing.T) {
	old := Default()
	defer SetDefault(old)

	var buf bytes.Buffer
	if err := Configure(Setup{Format: "json", Writer: &buf}); err != nil {
		t.Fatalf("Configure returned error: %v", err)
	}

	_ = Default().Emit(core.InfoLevel, "structured")
	if !strings.Contains(buf.String(), `"message":"structured"`) {
		t.Errorf("Expected JSON output, got: %s", buf.String())
	}
}

func TestAddConsole(t *testing.T) {
	old := Default()
	defer SetDefault(old)

	var primary, secondary bytes.Buffer
	if err := Configure(Setup{Writer: &primary}); err != nil {
		t.Fatalf("Configure returned error: %v", err)
	}
	if err := AddConsole(&secondary, format.NewTextFormatter(format.Config{})); err != nil {
		t.Fatalf("AddConsole returned error: %v", err)
	}

	_ = Default().Emit(core.InfoLevel, "both sinks")

	if !strings.Contains(primary.String(), "both sinks") {
		t.Error("Primary output did not receive the record")
	}
	if !strings.Contains(secondary.String(), "both sinks") {
		t.Error("Secondary output did not receive the record")
	}
}

func TestAddConsole_NonStdDefault(t *testing.T) {
	old := Default()
	defer SetDefault(old)

	SetDefault(NewMemory())
	if err := AddConsole(&bytes.Buffer{}, nil); err == nil {
		t.Error("Expected error when the default logger is not a *Std")
	}
}
