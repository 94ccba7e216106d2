package goatl

import (
	"context"

	"github.com/goatl/goatl-go/core"
	"github.com/goatl/goatl-go/logger"
	"github.com/goatl/goatl-go/wrap"
)

// Option configures a dispatch call. The concrete options live in the
// wrap package; this package re-exports the common ones so that most
// callers only import goatl.
type Option = wrap.Option

// MethodLogParams re-exports wrap.MethodLogParams
type MethodLogParams = wrap.MethodLogParams

// ClassLogParams re-exports wrap.ClassLogParams
type ClassLogParams = wrap.ClassLogParams

// Policy re-exports wrap.Policy
type Policy = wrap.Policy

func WithMessage(msg string) Option       { return wrap.WithMessage(msg) }
func WithLevel(l Level) Option            { return wrap.WithLevel(l) }
func WithCallMessage(msg string) Option   { return wrap.WithCallMessage(msg) }
func WithCallLevel(l Level) Option        { return wrap.WithCallLevel(l) }
func WithReturnMessage(msg string) Option { return wrap.WithReturnMessage(msg) }
func WithReturnLevel(l Level) Option      { return wrap.WithReturnLevel(l) }
func WithInitMessage(msg string) Option   { return wrap.WithInitMessage(msg) }
func WithInitLevel(l Level) Option        { return wrap.WithInitLevel(l) }
func WithFailureLevel(l Level) Option     { return wrap.WithFailureLevel(l) }

func WithLogger(l logger.Logger) Option      { return wrap.WithLogger(l) }
func WithLoggerName(name string) Option      { return wrap.WithLoggerName(name) }
func WithFields(fields ...core.Field) Option { return wrap.WithFields(fields...) }
func WithContext(ctx context.Context) Option { return wrap.WithContext(ctx) }

func WithInit(p Policy) Option           { return wrap.WithInit(p) }
func WithMethods(p Policy) Option        { return wrap.WithMethods(p) }
func WithPrivateMethods(p Policy) Option { return wrap.WithPrivateMethods(p) }
func WithPrivateMatcher(matcher func(string) bool) Option {
	return wrap.WithPrivateMatcher(matcher)
}

// Policy constructors, re-exported for readability at call sites:
// goatl.On(), goatl.At(goatl.DebugLevel), goatl.Using(params).

func On() Policy                     { return wrap.On() }
func Off() Policy                    { return wrap.Off() }
func At(l Level) Policy              { return wrap.At(l) }
func Using(p MethodLogParams) Policy { return wrap.Using(p) }

// WithScope returns a context carrying a scoped logging override; see
// wrap.WithScope.
func WithScope(ctx context.Context, opts ...Option) context.Context {
	return wrap.WithScope(ctx, opts...)
}

// SetDefaults installs the module-level configuration layer. Call
// once during startup, before concurrent use.
func SetDefaults(opts ...Option) {
	wrap.SetDefaults(opts...)
}

// ResetDefaults removes the module-level configuration layer
func ResetDefaults() {
	wrap.ResetDefaults()
}
