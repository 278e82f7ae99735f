// Package consolesink provides a console-like sink that writes one text
// line per call to any io.Writer (default: os.Stderr).
//
// Lines have the layout
//
//	2006-01-02T15:04:05Z07:00 [INFO] message arg1 arg2
//
// with the level tag colored through fatih/color unless NoColor is set or
// the output is not a terminal. Writes are serialized with a mutex, so one
// Sink can be shared by several policies and goroutines.
package consolesink
