package wrap

import (
	"errors"
	"testing"

	"github.com/goatl/goatl-go/core"
	"github.com/goatl/goatl-go/logger"
)

func newCounter(n int) *counter { return &counter{n: n} }

func TestConstructor_InitRecord(t *testing.T) {
	mem := logger.NewMemory()
	c, err := NewConstructor(newCounter, memConfig(mem))
	if err != nil {
		t.Fatalf("NewConstructor returned error: %v", err)
	}

	got := c.Interface().(func(int) *counter)(5)
	if got == nil || got.n != 5 {
		t.Fatalf("Constructed value = %+v, want n=5", got)
	}

	recs := mem.Records()
	if len(recs) != 1 {
		t.Fatalf("Expected a single init record, got %d", len(recs))
	}
	if recs[0].Message != "initialized wrap.counter with (5)" {
		t.Errorf("Init record message = %q", recs[0].Message)
	}
	if recs[0].Level != core.InfoLevel {
		t.Errorf("Init record level = %v, want INFO", recs[0].Level)
	}
}

func TestConstructor_Off(t *testing.T) {
	mem := logger.NewMemory()
	c, _ := NewConstructor(newCounter, memConfig(mem, WithInit(Off())))

	if got := c.Interface().(func(int) *counter)(3); got.n != 3 {
		t.Errorf("Constructed value = %+v, want n=3", got)
	}
	if mem.Len() != 0 {
		t.Errorf("Expected no records with init off, got %d", mem.Len())
	}
}

func TestConstructor_InitLevel(t *testing.T) {
	mem := logger.NewMemory()
	c, _ := NewConstructor(newCounter, memConfig(mem, WithInitLevel(core.WarnLevel)))
	_ = c.Interface().(func(int) *counter)(1)

	if mem.Records()[0].Level != core.WarnLevel {
		t.Errorf("Init record level = %v, want WARN", mem.Records()[0].Level)
	}
}

func TestConstructor_GenericLevel(t *testing.T) {
	mem := logger.NewMemory()
	c, _ := NewConstructor(newCounter, memConfig(mem, WithLevel(core.ErrorLevel)))
	_ = c.Interface().(func(int) *counter)(1)

	if mem.Records()[0].Level != core.ErrorLevel {
		t.Errorf("Init record level = %v, want the generic level", mem.Records()[0].Level)
	}
}

func TestConstructor_PolicyAt(t *testing.T) {
	mem := logger.NewMemory()
	c, _ := NewConstructor(newCounter, memConfig(mem, WithInit(At(core.DebugLevel))))
	_ = c.Interface().(func(int) *counter)(1)

	if mem.Records()[0].Level != core.DebugLevel {
		t.Errorf("Init record level = %v, want DEBUG", mem.Records()[0].Level)
	}
}

func TestConstructor_CustomMessage(t *testing.T) {
	mem := logger.NewMemory()
	c, _ := NewConstructor(newCounter, memConfig(mem, WithInitMessage("built {type}")))
	_ = c.Interface().(func(int) *counter)(1)

	if mem.Records()[0].Message != "built wrap.counter" {
		t.Errorf("Init record message = %q", mem.Records()[0].Message)
	}
}

func TestConstructor_ErrorReturning(t *testing.T) {
	mem := logger.NewMemory()
	ctor := func(n int) (*counter, error) {
		if n < 0 {
			return nil, errors.New("negative")
		}
		return &counter{n: n}, nil
	}

	c, _ := NewConstructor(ctor, memConfig(mem))
	got, err := c.Interface().(func(int) (*counter, error))(2)
	if err != nil || got.n != 2 {
		t.Fatalf("Constructor result = (%+v, %v)", got, err)
	}

	recs := mem.Records()
	if len(recs) != 1 {
		t.Fatalf("Expected a single init record, got %d", len(recs))
	}
	if recs[0].Message != "initialized wrap.counter with (2)" {
		t.Errorf("Init record message = %q, want the non-error result type named", recs[0].Message)
	}
}

func TestConstructor_Idempotent(t *testing.T) {
	c1, _ := NewConstructor(newCounter, nil)
	c2, err := NewConstructor(c1, nil)
	if err != nil {
		t.Fatalf("Re-wrap returned error: %v", err)
	}
	if c2 != c1 {
		t.Error("Re-wrapping a constructor should return it unchanged")
	}
}

func TestConstructor_RewrapLayers(t *testing.T) {
	mem := logger.NewMemory()
	c1, _ := NewConstructor(newCounter, memConfig(mem))
	c2, err := NewConstructor(c1, NewConfig(WithCallLevel(core.ErrorLevel)))
	if err != nil {
		t.Fatalf("Re-wrap returned error: %v", err)
	}

	_ = c2.Interface().(func(int) *counter)(5)

	recs := mem.Records()
	if len(recs) != 1 {
		t.Fatalf("Expected a single init record, got %d", len(recs))
	}
	if recs[0].Level != core.ErrorLevel {
		t.Errorf("Newest layer should win: init level = %v, want ERROR", recs[0].Level)
	}
	if recs[0].Message != "initialized wrap.counter with (5)" {
		t.Errorf("Init record message = %q", recs[0].Message)
	}

	// the first wrap is untouched
	mem.Reset()
	_ = c1.Interface().(func(int) *counter)(5)
	if mem.Records()[0].Level != core.InfoLevel {
		t.Error("Re-wrapping mutated the original constructor")
	}
}

func TestNewConstructor_Unsupported(t *testing.T) {
	_, err := NewConstructor("not a func", nil)
	var ute *UnsupportedTargetError
	if !errors.As(err, &ute) {
		t.Fatalf("Expected UnsupportedTargetError, got %v", err)
	}
}
