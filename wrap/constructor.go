package wrap

import (
	"reflect"
)

// NewConstructor wraps a constructor function: a successful call
// emits a single "initialized" record and no return record, so
// construction reads as one event. The LogInit policy governs the
// record; with the policy off the original function is passed through
// without a wrapper. Wrapping an existing *Callable layers cfg on top
// the same way NewCallable does.
func NewConstructor(fn any, cfg *Config) (*Callable, error) {
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

	if !cfg.class.LogInit.Enabled(true) {
		// pass-through: no wrapper attached
		return &Callable{orig: rv, wrapped: rv, meta: metaFor(rv, "")}, nil
	}

	initMsg := DefaultInitMessage
	if cfg.layer.initMessage != nil {
		initMsg = *cfg.layer.initMessage
	}
	name := constructedName(rv.Type())
	if name == "" {
		name = metaFor(rv, "").Name
	}
	msg := expand(initMsg, "{type}", name)

	initLayer := &layer{callMessage: &msg}
	if cfg.layer.initLevel != nil {
		initLayer.callLevel = cfg.layer.initLevel
	} else if pl := cfg.class.LogInit.asLayer(); pl != nil {
		initLayer.callLevel = pl.callLevel
		if pl.callMessage != nil {
			m := expand(*pl.callMessage, "{type}", name)
			initLayer.callMessage = &m
		}
	}
	if initLayer.callLevel == nil && cfg.layer.level == nil {
		lvl := defaultInitLevel
		initLayer.callLevel = &lvl
	}

	c := &Callable{
		orig:     rv,
		meta:     metaFor(rv, ""),
		fields:   cfg.fields,
		callOnly: true,
	}
	if !cfg.layer.isZero() {
		l := cfg.layer
		c.layers = []*layer{&l, initLayer}
	} else {
		c.layers = []*layer{initLayer}
	}
	c.wrapped = c.makeWrapper()
	return c, nil
}

// constructedName finds the type a constructor produces: the first
// non-error result, pointers stripped.
func constructedName(t reflect.Type) string {
	for i := 0; i < t.NumOut(); i++ {
		o := t.Out(i)
		if o == errType {
			continue
		}
		for o.Kind() == reflect.Pointer {
			o = o.Elem()
		}
		return o.String()
	}
	return ""
}
