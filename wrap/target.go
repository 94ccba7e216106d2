package wrap

import (
	"reflect"
)

// Kind identifies the wrapping strategy a dispatch target requires
type Kind uint8

const (
	// KindNone means no target was given: the dispatch curries into a
	// configured decorator.
	KindNone Kind = iota
	// KindMessage means the target is a message to emit directly
	KindMessage
	// KindFunc means the target is a callable to wrap
	KindFunc
	// KindStruct means the target is a struct whose method set is to
	// be wrapped
	KindStruct
)

// Target is the classified form of a dispatch argument. It is
// produced once per dispatch; all downstream logic switches on Kind
// instead of re-inspecting the value.
type Target struct {
	Kind    Kind
	Message string
	Value   reflect.Value
}

// Classify determines the wrapping strategy for a dispatch target.
// Engine artifacts classify as their underlying strategy so that
// re-dispatching them stays idempotent.
func Classify(target any) (Target, error) {
	if target == nil {
		return Target{Kind: KindNone}, nil
	}

	switch v := target.(type) {
	case string:
		return Target{Kind: KindMessage, Message: v}, nil
	case *Callable:
		return Target{Kind: KindFunc, Value: reflect.ValueOf(v)}, nil
	case *Instance:
		return Target{Kind: KindStruct, Value: reflect.ValueOf(v)}, nil
	}

	rv := reflect.ValueOf(target)
	switch rv.Kind() {
	case reflect.Func:
		if rv.IsNil() {
			return Target{}, &UnsupportedTargetError{Type: rv.Type()}
		}
		return Target{Kind: KindFunc, Value: rv}, nil
	case reflect.Struct:
		return Target{Kind: KindStruct, Value: rv}, nil
	case reflect.Pointer:
		if rv.IsNil() {
			return Target{}, &UnsupportedTargetError{Type: rv.Type()}
		}
		if rv.Elem().Kind() == reflect.Struct {
			return Target{Kind: KindStruct, Value: rv}, nil
		}
	}
	return Target{}, &UnsupportedTargetError{Type: rv.Type()}
}
