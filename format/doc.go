// Package format renders log records into bytes.
//
// Two formatters are provided: TextFormatter for human-readable
// single-line output and JSONFormatter for structured machine-readable
// output. Both implement the Formatter interface consumed by the
// logger package's outputs.
package format
