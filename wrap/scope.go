package wrap

import (
	"context"
	"reflect"
)

type scopeKey struct{}

// WithScope returns a context carrying a scoped logging override.
// Wrapped functions whose leading parameter is a context.Context pick
// the scope up from the context they receive; direct emission accepts
// it via WithContext. Scopes nest: the innermost scope wins per field,
// outer scopes fill the gaps.
func WithScope(ctx context.Context, opts ...Option) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := NewConfig(opts...)
	l := cfg.layer
	if parent := scopeFrom(ctx); parent != nil {
		l.fillFrom(parent)
	}
	return context.WithValue(ctx, scopeKey{}, &l)
}

// scopeFrom extracts the scope layer from a context, or nil when no
// scope is open. A context without a scope contributes nothing to the
// precedence chain; that is not an error.
func scopeFrom(ctx context.Context) *layer {
	if ctx == nil {
		return nil
	}
	l, _ := ctx.Value(scopeKey{}).(*layer)
	return l
}

var ctxType = reflect.TypeOf((*context.Context)(nil)).Elem()

// scopeFromArgs looks for a context in the leading parameter of a
// wrapped invocation; offset skips the receiver of a bound method. A
// context anywhere else in the signature does not open a scope.
func scopeFromArgs(args []reflect.Value, offset int) *layer {
	if len(args) <= offset {
		return nil
	}
	a := args[offset]
	if !a.IsValid() || !a.Type().Implements(ctxType) {
		return nil
	}
	if a.Kind() == reflect.Interface && a.IsNil() {
		return nil
	}
	if ctx, ok := a.Interface().(context.Context); ok {
		return scopeFrom(ctx)
	}
	return nil
}
