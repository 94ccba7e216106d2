package wrap

import (
	"reflect"
)

// The binding strategies of method wrapping. Instrumentation is
// installed on the receiver-explicit form of a method first, so the
// wrapper observes the real argument list exactly once; binding
// happens afterwards through these adapters.

// boundType derives the receiver-implicit signature from a
// receiver-explicit method type.
func boundType(ft reflect.Type) reflect.Type {
	in := make([]reflect.Type, 0, ft.NumIn()-1)
	for i := 1; i < ft.NumIn(); i++ {
		in = append(in, ft.In(i))
	}
	out := make([]reflect.Type, 0, ft.NumOut())
	for i := 0; i < ft.NumOut(); i++ {
		out = append(out, ft.Out(i))
	}
	return reflect.FuncOf(in, out, ft.IsVariadic())
}

// bindToInstance adapts a receiver-explicit func to the
// receiver-implicit signature by prepending recv on every call.
func bindToInstance(full reflect.Value, recv reflect.Value) reflect.Value {
	ft := full.Type()
	return reflect.MakeFunc(boundType(ft), func(args []reflect.Value) []reflect.Value {
		all := make([]reflect.Value, 0, len(args)+1)
		all = append(all, recv)
		all = append(all, args...)
		if ft.IsVariadic() {
			return full.CallSlice(all)
		}
		return full.Call(all)
	})
}
