// Package goatl is a logging-augmentation engine: one polymorphic
// entry point that either emits a log record directly, or, given a
// function or a struct, returns an instrumented equivalent that logs
// invocation and completion automatically.
//
//	// direct emission
//	goatl.Log("service starting")
//	goatl.Error("that went wrong")
//
//	// function wrapping, signature preserved
//	add := goatl.Func(func(a, b int) int { return a + b })
//	add(1, 2) // emits "calling ... with (1, 2)" and "... returned 3"
//
//	// struct wrapping
//	in, _ := goatl.Struct(&Service{}, goatl.WithMethods(goatl.At(goatl.DebugLevel)))
//	in.Call("Start")
//
//	// curried form
//	dec := goatl.NewDecorator(goatl.WithLevel(goatl.WarnLevel))
//	slow := goatl.ApplyFunc(dec, slowQuery)
//
// Effective parameters resolve per record through a precedence chain:
// explicit options, an open scope (WithScope), instance, function,
// and class configuration, module defaults (SetDefaults), then hard
// defaults. Emission goes through the small logger.Logger capability;
// the logger package provides a writer-backed implementation and
// adapters for zap, zerolog, logrus, and log/slog.
package goatl
