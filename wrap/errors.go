package wrap

import (
	"fmt"
	"reflect"
)

// UnsupportedTargetError reports a dispatch target that is neither a
// message, a callable, nor a struct.
type UnsupportedTargetError struct {
	Type reflect.Type
}

func (e *UnsupportedTargetError) Error() string {
	if e.Type == nil {
		return "wrap: unsupported target <nil>"
	}
	return fmt.Sprintf("wrap: unsupported target type %s", e.Type)
}

// AmbiguousBindingError reports a method that could not be classified
// or bound for wrapping.
type AmbiguousBindingError struct {
	Type   reflect.Type
	Method string
	Reason string
}

func (e *AmbiguousBindingError) Error() string {
	return fmt.Sprintf("wrap: cannot bind %s.%s: %s", e.Type, e.Method, e.Reason)
}
