package wrap

import (
	"sync/atomic"

	"github.com/goatl/goatl-go/core"
	"github.com/goatl/goatl-go/logger"
)

// Hard defaults, the last link of the precedence chain.
const (
	DefaultCallMessage    = "calling {func} with {args}"
	DefaultReturnMessage  = "{func} returned {result}"
	DefaultFailureMessage = "{func} failed with {err}"
	DefaultInitMessage    = "initialized {type} with {args}"
)

const (
	defaultDirectLevel = core.InfoLevel
	defaultCallLevel   = core.InfoLevel
	defaultReturnLevel = core.DebugLevel
	defaultInitLevel   = core.InfoLevel
)

// moduleDefaults holds the module-scope configuration layer. It is
// expected to be set once at startup, before concurrent use begins.
var moduleDefaults atomic.Pointer[layer]

// SetDefaults installs the module-level configuration layer consulted
// after the function and class layers. Call it once during startup.
func SetDefaults(opts ...Option) {
	cfg := NewConfig(opts...)
	moduleDefaults.Store(&cfg.layer)
}

// ResetDefaults removes the module-level configuration layer
func ResetDefaults() {
	moduleDefaults.Store(nil)
}

func moduleLayer() *layer {
	return moduleDefaults.Load()
}

func firstString(layers []*layer, get func(*layer) *string) *string {
	for _, l := range layers {
		if l == nil {
			continue
		}
		if v := get(l); v != nil {
			return v
		}
	}
	return nil
}

func firstLevel(layers []*layer, get func(*layer) *core.Level) *core.Level {
	for _, l := range layers {
		if l == nil {
			continue
		}
		if v := get(l); v != nil {
			return v
		}
	}
	return nil
}

// resolveRef picks the logger reference, defaulting to the zero Ref
// which resolves to the default logger.
func resolveRef(layers []*layer) logger.Ref {
	for _, l := range layers {
		if l == nil {
			continue
		}
		if !l.ref.IsZero() {
			return l.ref
		}
	}
	return logger.Ref{}
}

// resolveCall resolves the message template and level of a call
// record. The specific slot wins over the generic slot across the
// whole chain; each resolves independently.
func resolveCall(layers []*layer) (string, core.Level) {
	msg := firstString(layers, func(l *layer) *string { return l.callMessage })
	if msg == nil {
		msg = firstString(layers, func(l *layer) *string { return l.message })
	}
	lvl := firstLevel(layers, func(l *layer) *core.Level { return l.callLevel })
	if lvl == nil {
		lvl = firstLevel(layers, func(l *layer) *core.Level { return l.level })
	}

	out, outLvl := DefaultCallMessage, defaultCallLevel
	if msg != nil {
		out = *msg
	}
	if lvl != nil {
		outLvl = *lvl
	}
	return out, outLvl
}

// resolveReturn resolves the message template and level of a return
// record.
func resolveReturn(layers []*layer) (string, core.Level) {
	msg := firstString(layers, func(l *layer) *string { return l.returnMessage })
	if msg == nil {
		msg = firstString(layers, func(l *layer) *string { return l.message })
	}
	lvl := firstLevel(layers, func(l *layer) *core.Level { return l.returnLevel })
	if lvl == nil {
		lvl = firstLevel(layers, func(l *layer) *core.Level { return l.level })
	}

	out, outLvl := DefaultReturnMessage, defaultReturnLevel
	if msg != nil {
		out = *msg
	}
	if lvl != nil {
		outLvl = *lvl
	}
	return out, outLvl
}

// resolveFailure resolves the failure record parameters. A nil level
// means failure records are disabled: nothing extra is logged and the
// failure propagates silently.
func resolveFailure(layers []*layer) (string, *core.Level) {
	lvl := firstLevel(layers, func(l *layer) *core.Level { return l.failureLevel })
	if lvl == nil {
		return "", nil
	}
	if *lvl < core.ErrorLevel {
		// failure records are at least ERROR
		e := core.ErrorLevel
		lvl = &e
	}

	msg := firstString(layers, func(l *layer) *string { return l.failureMessage })
	out := DefaultFailureMessage
	if msg != nil {
		out = *msg
	}
	return out, lvl
}

// Resolve produces the effective LogParams for a direct emission:
// only the explicit call-site layer, an open scope, and the module
// defaults apply.
func Resolve(msg string, cfg *Config) LogParams {
	chain := directChain(cfg)

	lvl := firstLevel(chain, func(l *layer) *core.Level { return l.level })
	out := defaultDirectLevel
	if lvl != nil {
		out = *lvl
	}

	if m := firstString(chain, func(l *layer) *string { return l.message }); m != nil && msg == "" {
		msg = *m
	}

	return LogParams{Message: msg, Level: out, Logger: resolveRef(chain)}
}

func directChain(cfg *Config) []*layer {
	chain := make([]*layer, 0, 3)
	chain = append(chain, &cfg.layer)
	if scope := scopeFrom(cfg.ctx); scope != nil {
		chain = append(chain, scope)
	}
	if m := moduleLayer(); m != nil {
		chain = append(chain, m)
	}
	return chain
}

// Emit performs a direct emission through the resolved parameters,
// returning any backend error unmodified.
func Emit(msg string, cfg *Config) error {
	p := Resolve(msg, cfg)
	return p.Logger.Resolve().Emit(p.Level, p.Message, cfg.fields...)
}
