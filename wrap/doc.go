// Package wrap is the dispatch-and-wrap engine behind goatl: it
// classifies a dispatch target, produces behavior-preserving wrapped
// callables and wrapped struct instances that log invocation and
// completion, and resolves the effective logging parameters through a
// layered precedence chain.
//
// # Classification
//
// Classify turns a dispatch target into a tagged Target exactly once;
// everything downstream switches on the tag. Strings are messages,
// funcs are callables, structs (or pointers to structs) are classes,
// nil curries. Anything else is an UnsupportedTargetError.
//
// # Wrapping
//
// NewCallable builds a Callable around any func value using
// reflect.MakeFunc, so the wrapped form has the exact signature of
// the original. Each invocation emits a call record, runs the
// original, and emits a return record; return values, error results,
// and panics cross the wrapper unchanged. Because MakeFunc values
// lose their runtime name, the Callable carries an explicit Meta
// record for introspection.
//
// NewInstance wraps the exported method set of a struct value.
// Methods are instrumented in receiver-explicit form first and bound
// to the instance afterwards through an explicit adapter, so the
// instrumentation sees the receiver as an ordinary first argument,
// once. Public and private methods are policy-toggled independently;
// the private category is selected by a configurable name matcher
// (default: the "Internal" prefix), since Go reflection cannot reach
// unexported methods. The original value is never mutated.
//
// NewConstructor wraps constructor functions so that construction
// emits a single "initialized" record.
//
// # Parameter resolution
//
// Every record's message, level, and target logger resolve
// independently by scanning, in order: the explicit call-site
// options, an open scope carried in a context.Context (WithScope),
// the instance layer, the function layer stack, the class layer, the
// module defaults (SetDefaults), and finally hard defaults: call
// records at Info, return records at Debug, messages generated from
// the callable's name and arguments. Message templates may use the
// placeholders {func}, {args}, {result}, {type}, and {err}.
//
// # Idempotence
//
// Re-dispatching an engine artifact never duplicates emissions:
// a *Callable given to NewCallable or NewConstructor without options
// comes back unchanged, with options it is rebuilt with the new
// configuration layered on top. A *Instance always comes back
// unchanged and any options are discarded; its per-method callables
// are built once, so reconfiguring a wrapped instance means wrapping
// its Unwrap() value again. Raw func values obtained from a Callable
// cannot be recognized again, so applying the engine at most once per
// definition remains the caller's responsibility.
package wrap
