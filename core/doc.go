// Package core defines the shared value types used across goatl.
//
// It provides the Level type for severity ordering, the Record type
// that represents a single log event, and the Field type for typed
// key-value pairs.
//
// Levels are totally ordered: Debug < Info < Warn < Error < Critical.
// Comparisons on Level values are plain integer comparisons, so a
// severity gate costs nothing.
//
// Field encodes values into fixed-size numeric slots (Int64, Float64)
// wherever possible so that common types like int, bool, and time.Time
// do not allocate. The Any slot exists as a fallback for arbitrary
// types.
package core
