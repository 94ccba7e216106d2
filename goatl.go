package goatl

import (
	"fmt"

	"github.com/goatl/goatl-go/core"
	"github.com/goatl/goatl-go/wrap"
)

// Log is the polymorphic entry point. Its behavior depends on the
// classified target:
//
//   - a string is emitted directly through the resolved logger and
//     Log returns (nil, nil), or the backend's emission error;
//   - a func is wrapped and returned as a *wrap.Callable;
//   - a struct or pointer to struct is wrapped and returned as a
//     *wrap.Instance;
//   - nil returns a *Decorator capturing the options, to be applied
//     to a later target.
//
// Any other target fails with *wrap.UnsupportedTargetError.
func Log(target any, opts ...Option) (any, error) {
	cfg := wrap.NewConfig(opts...)

	t, err := wrap.Classify(target)
	if err != nil {
		return nil, err
	}

	switch t.Kind {
	case wrap.KindMessage:
		return nil, wrap.Emit(t.Message, cfg)
	case wrap.KindFunc:
		return wrap.NewCallable(target, cfg)
	case wrap.KindStruct:
		return wrap.NewInstance(target, cfg)
	default:
		return NewDecorator(opts...), nil
	}
}

// Debug dispatches like Log with the level fixed to Debug
func Debug(target any, opts ...Option) (any, error) {
	return Log(target, withFixedLevel(core.DebugLevel, opts)...)
}

// Info dispatches like Log with the level fixed to Info
func Info(target any, opts ...Option) (any, error) {
	return Log(target, withFixedLevel(core.InfoLevel, opts)...)
}

// Warn dispatches like Log with the level fixed to Warn
func Warn(target any, opts ...Option) (any, error) {
	return Log(target, withFixedLevel(core.WarnLevel, opts)...)
}

// Error dispatches like Log with the level fixed to Error
func Error(target any, opts ...Option) (any, error) {
	return Log(target, withFixedLevel(core.ErrorLevel, opts)...)
}

// Critical dispatches like Log with the level fixed to Critical
func Critical(target any, opts ...Option) (any, error) {
	return Log(target, withFixedLevel(core.CriticalLevel, opts)...)
}

// withFixedLevel prepends the level so explicit options still win
func withFixedLevel(l core.Level, opts []Option) []Option {
	return append([]Option{WithLevel(l)}, opts...)
}

// Message emits msg directly through the resolved logger. It is the
// typed form of Log with a string target.
func Message(msg string, opts ...Option) error {
	return wrap.Emit(msg, wrap.NewConfig(opts...))
}

// Func wraps fn, preserving its signature at compile time. The
// wrapped function emits a call record before and a return record
// after every invocation and passes values, errors, and panics
// through unchanged. F must be a function type; anything else panics,
// as it is a programming error the type system could not catch.
func Func[F any](fn F, opts ...Option) F {
	c, err := wrap.NewCallable(fn, wrap.NewConfig(opts...))
	if err != nil {
		panic(fmt.Sprintf("goatl: Func on non-func %T: %v", fn, err))
	}
	return c.Interface().(F)
}

// FuncMeta wraps fn like Func and additionally returns the metadata
// record of the wrapped callable.
func FuncMeta[F any](fn F, opts ...Option) (F, wrap.Meta) {
	c, err := wrap.NewCallable(fn, wrap.NewConfig(opts...))
	if err != nil {
		panic(fmt.Sprintf("goatl: FuncMeta on non-func %T: %v", fn, err))
	}
	return c.Interface().(F), c.Meta()
}

// Constructor wraps a constructor function so that a successful call
// emits a single "initialized" record naming the constructed type.
// F must be a function type; anything else panics.
func Constructor[F any](ctor F, opts ...Option) F {
	c, err := wrap.NewConstructor(ctor, wrap.NewConfig(opts...))
	if err != nil {
		panic(fmt.Sprintf("goatl: Constructor on non-func %T: %v", ctor, err))
	}
	return c.Interface().(F)
}

// Struct wraps the method set of v according to the class policies
func Struct(v any, opts ...Option) (*wrap.Instance, error) {
	return wrap.NewInstance(v, wrap.NewConfig(opts...))
}

// Method retrieves a method from a wrapped instance with its concrete
// func type.
func Method[F any](in *wrap.Instance, name string) (F, error) {
	var zero F
	m, err := in.Method(name)
	if err != nil {
		return zero, err
	}
	f, ok := m.(F)
	if !ok {
		return zero, fmt.Errorf("goatl: method %s.%s is %T", in.TypeName(), name, m)
	}
	return f, nil
}

// Decorator is the curried form of the dispatcher: a value capturing
// configuration to be applied to a target later.
type Decorator struct {
	opts []Option
}

// NewDecorator captures opts for later application
func NewDecorator(opts ...Option) *Decorator {
	return &Decorator{opts: append([]Option(nil), opts...)}
}

// Apply dispatches target with the captured configuration, with any
// additional options taking precedence.
func (d *Decorator) Apply(target any, extra ...Option) (any, error) {
	return Log(target, append(append([]Option(nil), d.opts...), extra...)...)
}

// ApplyFunc applies a decorator to fn, preserving its signature
func ApplyFunc[F any](d *Decorator, fn F) F {
	return Func(fn, d.opts...)
}
