package wrap

import (
	"context"
	"errors"
	"testing"

	"github.com/goatl/goatl-go/core"
	"github.com/goatl/goatl-go/logger"
)

func TestResolve_GenericLevel(t *testing.T) {
	mem := logger.NewMemory()
	c, _ := NewCallable(add, memConfig(mem, WithLevel(core.WarnLevel)))
	_ = c.Interface().(func(int, int) int)(1, 1)

	recs := mem.Records()
	if recs[0].Level != core.WarnLevel {
		t.Errorf("Call record level = %v, want WARN", recs[0].Level)
	}
	if recs[1].Level != core.WarnLevel {
		t.Errorf("Return record level = %v, want WARN", recs[1].Level)
	}
}

func TestResolve_SpecificBeatsGeneric(t *testing.T) {
	mem := logger.NewMemory()
	c, _ := NewCallable(add, memConfig(mem,
		WithLevel(core.ErrorLevel),
		WithReturnLevel(core.DebugLevel),
	))
	_ = c.Interface().(func(int, int) int)(1, 1)

	recs := mem.Records()
	if recs[0].Level != core.ErrorLevel {
		t.Errorf("Call record level = %v, want ERROR", recs[0].Level)
	}
	if recs[1].Level != core.DebugLevel {
		t.Errorf("Return record level = %v, want DEBUG", recs[1].Level)
	}
}

func TestResolve_SpecificBeatsGenericAcrossLayers(t *testing.T) {
	SetDefaults(WithCallMessage("module says {func}"))
	defer ResetDefaults()

	mem := logger.NewMemory()
	c, _ := NewCallable(add, memConfig(mem, WithMessage("generic")))
	_ = c.Interface().(func(int, int) int)(1, 1)

	recs := mem.Records()
	if recs[0].Message != "module says wrap.add" {
		t.Errorf("Call record message = %q, want the module's specific template", recs[0].Message)
	}
	if recs[1].Message != "generic" {
		t.Errorf("Return record message = %q, want the generic template", recs[1].Message)
	}
}

func TestResolve_ModuleDefaults(t *testing.T) {
	SetDefaults(WithCallLevel(core.WarnLevel))
	defer ResetDefaults()

	mem := logger.NewMemory()
	c, _ := NewCallable(add, memConfig(mem))
	_ = c.Interface().(func(int, int) int)(1, 1)

	if mem.Records()[0].Level != core.WarnLevel {
		t.Errorf("Call record level = %v, want WARN from module defaults", mem.Records()[0].Level)
	}
}

func TestResolve_ExplicitBeatsModule(t *testing.T) {
	SetDefaults(WithCallLevel(core.WarnLevel))
	defer ResetDefaults()

	mem := logger.NewMemory()
	c, _ := NewCallable(add, memConfig(mem, WithCallLevel(core.CriticalLevel)))
	_ = c.Interface().(func(int, int) int)(1, 1)

	if mem.Records()[0].Level != core.CriticalLevel {
		t.Errorf("Call record level = %v, want CRITICAL", mem.Records()[0].Level)
	}
}

func TestResolve_ResetDefaults(t *testing.T) {
	SetDefaults(WithCallLevel(core.WarnLevel))
	ResetDefaults()

	mem := logger.NewMemory()
	c, _ := NewCallable(add, memConfig(mem))
	_ = c.Interface().(func(int, int) int)(1, 1)

	if mem.Records()[0].Level != core.InfoLevel {
		t.Errorf("Call record level = %v, want INFO after reset", mem.Records()[0].Level)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	mem := logger.NewMemory()
	c, _ := NewCallable(add, memConfig(mem, WithCallMessage("call {func}")))
	f := c.Interface().(func(int, int) int)

	for i := 0; i < 3; i++ {
		_ = f(1, 1)
	}

	recs := mem.Records()
	for i := 0; i < len(recs); i += 2 {
		if recs[i].Message != "call wrap.add" {
			t.Fatalf("Invocation %d resolved differently: %q", i/2, recs[i].Message)
		}
	}
}

func TestResolve_Direct(t *testing.T) {
	p := Resolve("msg", NewConfig(WithLevel(core.WarnLevel)))
	if p.Message != "msg" {
		t.Errorf("Message = %q, want msg", p.Message)
	}
	if p.Level != core.WarnLevel {
		t.Errorf("Level = %v, want WARN", p.Level)
	}
}

func TestResolve_DirectDefaultLevel(t *testing.T) {
	p := Resolve("msg", NewConfig())
	if p.Level != core.InfoLevel {
		t.Errorf("Level = %v, want INFO", p.Level)
	}
}

func TestEmit_Direct(t *testing.T) {
	mem := logger.NewMemory()
	if err := Emit("hello", memConfig(mem)); err != nil {
		t.Fatalf("Emit returned error: %v", err)
	}

	recs := mem.Records()
	if len(recs) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(recs))
	}
	if recs[0].Message != "hello" || recs[0].Level != core.InfoLevel {
		t.Errorf("Unexpected record: %+v", recs[0])
	}
}

func TestEmit_ScopeFromContext(t *testing.T) {
	mem := logger.NewMemory()
	ctx := WithScope(context.Background(), WithLevel(core.ErrorLevel))

	if err := Emit("scoped", memConfig(mem, WithContext(ctx))); err != nil {
		t.Fatalf("Emit returned error: %v", err)
	}
	if mem.Records()[0].Level != core.ErrorLevel {
		t.Errorf("Level = %v, want ERROR from scope", mem.Records()[0].Level)
	}
}

func TestEmit_ExplicitBeatsScope(t *testing.T) {
	mem := logger.NewMemory()
	ctx := WithScope(context.Background(), WithLevel(core.ErrorLevel))

	_ = Emit("scoped", memConfig(mem, WithContext(ctx), WithLevel(core.DebugLevel)))
	if mem.Records()[0].Level != core.DebugLevel {
		t.Errorf("Level = %v, want DEBUG from explicit option", mem.Records()[0].Level)
	}
}

type failingLogger struct {
	err error
}

func (f failingLogger) Emit(core.Level, string, ...core.Field) error {
	return f.err
}

func TestEmit_BackendError(t *testing.T) {
	sink := errors.New("sink down")
	err := Emit("x", NewConfig(WithLogger(failingLogger{err: sink})))
	if !errors.Is(err, sink) {
		t.Errorf("Expected the backend error back, got %v", err)
	}
}
