package wrap

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/goatl/goatl-go/core"
	"github.com/goatl/goatl-go/logger"
)

// Meta is the explicit metadata record carried alongside a wrapped
// callable. MakeFunc-produced values lose their runtime name, so
// introspection reads from here instead.
type Meta struct {
	// Name is the qualified name of the original callable
	Name string
	// Signature is the callable's type, e.g. "func(int, int) int"
	Signature string
	NumIn     int
	NumOut    int
	Variadic  bool
}

func metaFor(fv reflect.Value, name string) Meta {
	t := fv.Type()
	if name == "" {
		if fn := runtime.FuncForPC(fv.Pointer()); fn != nil {
			name = fn.Name()
			if i := strings.LastIndex(name, "/"); i >= 0 {
				name = name[i+1:]
			}
			// method values carry a -fm suffix
			name = strings.TrimSuffix(name, "-fm")
		}
	}
	if name == "" {
		name = t.String()
	}
	return Meta{
		Name:      name,
		Signature: t.String(),
		NumIn:     t.NumIn(),
		NumOut:    t.NumOut(),
		Variadic:  t.IsVariadic(),
	}
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// Callable is a wrapped function: a callable with the exact signature
// of the original that emits a call record before every invocation
// and a return (or failure) record after it. The original's return
// values and panics pass through unchanged.
type Callable struct {
	orig    reflect.Value
	wrapped reflect.Value
	// expr is the receiver-explicit form of a wrapped method; zero
	// for plain functions
	expr reflect.Value
	meta Meta

	fields []core.Field
	// layers is the function-scope configuration stack, newest first
	layers   []*layer
	instance *layer
	class    *layer
	callOnly bool
	// recvOffset is 1 for method callables, whose first invoke
	// argument is the receiver and stays out of the argument text
	recvOffset int
}

// NewCallable wraps fn according to cfg. Wrapping an existing
// *Callable never duplicates emissions: without further options the
// callable is returned unchanged, with options a new callable is
// built whose configuration layers over the old one.
func NewCallable(fn any, cfg *Config) (*Callable, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if c, ok := fn.(*Callable); ok {
		if cfg.isZero() {
			return c, nil
		}
		return c.extend(cfg), nil
	}

	rv := reflect.ValueOf(fn)
	if !rv.IsValid() || rv.Kind() != reflect.Func || rv.IsNil() {
		var t reflect.Type
		if rv.IsValid() {
			t = rv.Type()
		}
		return nil, &UnsupportedTargetError{Type: t}
	}

	c := &Callable{
		orig:     rv,
		meta:     metaFor(rv, ""),
		fields:   cfg.fields,
		callOnly: cfg.callOnly,
	}
	if !cfg.layer.isZero() {
		l := cfg.layer
		c.layers = []*layer{&l}
	}
	c.wrapped = c.makeWrapper()
	return c, nil
}

// extend layers additional configuration over an already wrapped
// callable. The new configuration is the explicit layer and wins over
// the previous function-scope layers; emission still happens once.
func (c *Callable) extend(cfg *Config) *Callable {
	n := &Callable{
		orig:       c.orig,
		expr:       c.expr,
		meta:       c.meta,
		instance:   c.instance,
		class:      c.class,
		callOnly:   c.callOnly || cfg.callOnly,
		recvOffset: c.recvOffset,
	}
	n.fields = append(append([]core.Field(nil), cfg.fields...), c.fields...)
	n.layers = make([]*layer, 0, len(c.layers)+1)
	if !cfg.layer.isZero() {
		l := cfg.layer
		n.layers = append(n.layers, &l)
	}
	n.layers = append(n.layers, c.layers...)
	n.wrapped = n.makeWrapper()
	return n
}

func (c *Callable) makeWrapper() reflect.Value {
	return reflect.MakeFunc(c.orig.Type(), c.invoke)
}

// invoke is the instrumented body shared by every form of the
// callable: resolve, emit the call record, run the original, emit the
// return or failure record, pass everything through.
func (c *Callable) invoke(args []reflect.Value) []reflect.Value {
	chain := c.chain(scopeFromArgs(args, c.recvOffset))

	lg := resolveRef(chain).Resolve()

	callMsg, callLvl := resolveCall(chain)
	argsText := formatArgs(args[c.recvOffset:])
	_ = lg.Emit(callLvl,
		expand(callMsg, "{func}", c.meta.Name, "{args}", argsText, "{type}", c.meta.Name),
		c.withFields(logger.String("func", c.meta.Name), logger.String("args", argsText))...)

	failMsg, failLvl := resolveFailure(chain)

	var results []reflect.Value
	if failLvl != nil {
		// observe a panic only when failure records are wanted;
		// otherwise no recover is installed and the panic crosses
		// the wrapper untouched
		func() {
			defer func() {
				if r := recover(); r != nil {
					_ = lg.Emit(*failLvl,
						expand(failMsg, "{func}", c.meta.Name, "{err}", fmt.Sprintf("panic: %v", r)),
						c.withFields(logger.String("func", c.meta.Name), logger.Any("panic", r))...)
					panic(r)
				}
			}()
			results = c.call(args)
		}()
	} else {
		results = c.call(args)
	}

	if c.callOnly {
		return results
	}

	if err := trailingError(results); err != nil && failLvl != nil {
		_ = lg.Emit(*failLvl,
			expand(failMsg, "{func}", c.meta.Name, "{err}", err.Error()),
			c.withFields(logger.String("func", c.meta.Name), logger.Err(err))...)
		return results
	}

	retMsg, retLvl := resolveReturn(chain)
	resultText := formatResult(results)
	_ = lg.Emit(retLvl,
		expand(retMsg, "{func}", c.meta.Name, "{result}", resultText),
		c.withFields(logger.String("func", c.meta.Name), logger.String("result", resultText))...)

	return results
}

func (c *Callable) call(args []reflect.Value) []reflect.Value {
	if c.orig.Type().IsVariadic() {
		return c.orig.CallSlice(args)
	}
	return c.orig.Call(args)
}

// chain assembles the precedence chain for one invocation: scope,
// instance, function stack, class, module defaults. Hard defaults are
// applied by the resolvers.
func (c *Callable) chain(scope *layer) []*layer {
	chain := make([]*layer, 0, len(c.layers)+4)
	if scope != nil {
		chain = append(chain, scope)
	}
	if c.instance != nil {
		chain = append(chain, c.instance)
	}
	chain = append(chain, c.layers...)
	if c.class != nil {
		chain = append(chain, c.class)
	}
	if m := moduleLayer(); m != nil {
		chain = append(chain, m)
	}
	return chain
}

func (c *Callable) withFields(extra ...core.Field) []core.Field {
	if len(c.fields) == 0 {
		return extra
	}
	out := make([]core.Field, 0, len(c.fields)+len(extra))
	out = append(out, c.fields...)
	out = append(out, extra...)
	return out
}

// Interface returns the wrapped function as an interface value. It
// type-asserts back to the original function type.
func (c *Callable) Interface() any {
	return c.wrapped.Interface()
}

// Unwrap returns the original function
func (c *Callable) Unwrap() any {
	return c.orig.Interface()
}

// Meta returns the metadata record of the original callable
func (c *Callable) Meta() Meta {
	return c.meta
}

func trailingError(results []reflect.Value) error {
	if len(results) == 0 {
		return nil
	}
	last := results[len(results)-1]
	if last.Kind() != reflect.Interface || !last.Type().Implements(errType) {
		return nil
	}
	if last.IsNil() {
		return nil
	}
	err, _ := last.Interface().(error)
	return err
}

// Call invokes the wrapped function dynamically. Arguments and
// results cross as interface values; a nil argument selects the zero
// value of the parameter type. The argument count is validated, the
// types are checked by reflect itself.
func (c *Callable) Call(args ...any) ([]any, error) {
	t := c.wrapped.Type()
	if t.IsVariadic() {
		if len(args) < t.NumIn()-1 {
			return nil, fmt.Errorf("wrap: %s needs at least %d args, got %d", c.meta.Name, t.NumIn()-1, len(args))
		}
	} else if len(args) != t.NumIn() {
		return nil, fmt.Errorf("wrap: %s needs %d args, got %d", c.meta.Name, t.NumIn(), len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		if a == nil {
			in[i] = reflect.Zero(paramType(t, i))
			continue
		}
		in[i] = reflect.ValueOf(a)
	}

	out := c.wrapped.Call(in)
	res := make([]any, len(out))
	for i, v := range out {
		res[i] = v.Interface()
	}
	return res, nil
}

func paramType(t reflect.Type, i int) reflect.Type {
	if t.IsVariadic() && i >= t.NumIn()-1 {
		return t.In(t.NumIn() - 1).Elem()
	}
	return t.In(i)
}
