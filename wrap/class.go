package wrap

import (
	"reflect"
	"sort"
	"strings"
)

// defaultPrivateMatcher marks a method name as private. Go reflection
// only reaches exported methods, so the private category works on a
// naming convention over exported names.
func defaultPrivateMatcher(name string) bool {
	return strings.HasPrefix(name, "Internal")
}

// Instance is a wrapped struct value: an object observably
// substitutable for the original whose instrumented methods emit call
// and return records. The original value is never mutated; methods
// excluded by policy dispatch straight to the original with no
// wrapper attached.
type Instance struct {
	value    reflect.Value
	original any
	typeName string
	methods  map[string]*Callable
	plain    map[string]reflect.Value
}

// NewInstance wraps the method set of v, a struct or pointer to
// struct, according to cfg. Wrapping an existing *Instance returns it
// unchanged and discards cfg; to reconfigure, wrap its Unwrap value
// again. A value with no methods yields a valid no-op wrap.
func NewInstance(v any, cfg *Config) (*Instance, error) {
	if in, ok := v.(*Instance); ok {
		return in, nil
	}
	if cfg == nil {
		cfg = &Config{}
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, &UnsupportedTargetError{}
	}
	switch {
	case rv.Kind() == reflect.Struct:
	case rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Struct:
	default:
		return nil, &UnsupportedTargetError{Type: rv.Type()}
	}

	t := rv.Type()
	in := &Instance{
		value:    rv,
		original: v,
		typeName: typeName(t),
		methods:  make(map[string]*Callable),
		plain:    make(map[string]reflect.Value),
	}

	matcher := cfg.privateMatcher
	if matcher == nil {
		matcher = defaultPrivateMatcher
	}

	var instanceLayer *layer
	if !cfg.layer.isZero() {
		l := cfg.layer
		instanceLayer = &l
	}

	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)

		pol, defaultOn := cfg.class.LogMethods, true
		if matcher(m.Name) {
			pol, defaultOn = cfg.class.LogPrivateMethods, false
		}
		if !pol.Enabled(defaultOn) {
			in.plain[m.Name] = rv.Method(i)
			continue
		}
		if !m.Func.IsValid() {
			return nil, &AmbiguousBindingError{Type: t, Method: m.Name, Reason: "no receiver-explicit form"}
		}

		in.methods[m.Name] = newMethodCallable(m, rv, in.typeName, instanceLayer, pol.asLayer(), cfg)
	}

	return in, nil
}

// newMethodCallable instruments the receiver-explicit form of m and
// binds it to recv afterwards.
func newMethodCallable(m reflect.Method, recv reflect.Value, typeName string, instanceLayer, classLayer *layer, cfg *Config) *Callable {
	c := &Callable{
		orig:       m.Func,
		meta:       metaFor(m.Func, typeName+"."+m.Name),
		fields:     cfg.fields,
		instance:   instanceLayer,
		class:      classLayer,
		recvOffset: 1,
	}
	c.expr = reflect.MakeFunc(m.Func.Type(), c.invoke)
	c.wrapped = bindToInstance(c.expr, recv)
	c.meta.Signature = c.wrapped.Type().String()
	c.meta.NumIn = c.wrapped.Type().NumIn()
	c.meta.Variadic = c.wrapped.Type().IsVariadic()
	return c
}

// Unwrap returns the original value
func (in *Instance) Unwrap() any {
	return in.original
}

// TypeName returns the qualified name of the original type
func (in *Instance) TypeName() string {
	return in.typeName
}

// Wrapped reports whether the named method is instrumented
func (in *Instance) Wrapped(name string) bool {
	_, ok := in.methods[name]
	return ok
}

// MethodNames returns the names of all methods, wrapped or not,
// in sorted order.
func (in *Instance) MethodNames() []string {
	names := make([]string, 0, len(in.methods)+len(in.plain))
	for name := range in.methods {
		names = append(names, name)
	}
	for name := range in.plain {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Method returns the named method as a func value bound to the
// wrapped instance. Instrumented methods come back wrapped; methods
// excluded by policy come back as the original bound method.
func (in *Instance) Method(name string) (any, error) {
	if c, ok := in.methods[name]; ok {
		return c.Interface(), nil
	}
	if m, ok := in.plain[name]; ok {
		return m.Interface(), nil
	}
	return nil, &AmbiguousBindingError{Type: in.value.Type(), Method: name, Reason: "no such method"}
}

// MethodMeta returns the metadata record of an instrumented method
func (in *Instance) MethodMeta(name string) (Meta, bool) {
	c, ok := in.methods[name]
	if !ok {
		return Meta{}, false
	}
	return c.meta, true
}

// Expr returns the named method in receiver-explicit form, bound to
// the type rather than the instance: the receiver is passed as the
// first argument.
func (in *Instance) Expr(name string) (any, error) {
	if c, ok := in.methods[name]; ok {
		return c.expr.Interface(), nil
	}
	if m, ok := in.value.Type().MethodByName(name); ok && m.Func.IsValid() {
		return m.Func.Interface(), nil
	}
	return nil, &AmbiguousBindingError{Type: in.value.Type(), Method: name, Reason: "no such method"}
}

// Call invokes the named method dynamically with the same conventions
// as Callable.Call.
func (in *Instance) Call(name string, args ...any) ([]any, error) {
	if c, ok := in.methods[name]; ok {
		return c.Call(args...)
	}
	m, ok := in.plain[name]
	if !ok {
		return nil, &AmbiguousBindingError{Type: in.value.Type(), Method: name, Reason: "no such method"}
	}

	t := m.Type()
	if t.IsVariadic() {
		if len(args) < t.NumIn()-1 {
			return nil, &AmbiguousBindingError{Type: in.value.Type(), Method: name, Reason: "not enough arguments"}
		}
	} else if len(args) != t.NumIn() {
		return nil, &AmbiguousBindingError{Type: in.value.Type(), Method: name, Reason: "wrong argument count"}
	}
	inArgs := make([]reflect.Value, len(args))
	for i, a := range args {
		if a == nil {
			inArgs[i] = reflect.Zero(paramType(t, i))
			continue
		}
		inArgs[i] = reflect.ValueOf(a)
	}
	out := m.Call(inArgs)
	res := make([]any, len(out))
	for i, v := range out {
		res[i] = v.Interface()
	}
	return res, nil
}

func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}
