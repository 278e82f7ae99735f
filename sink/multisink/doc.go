// Package multisink provides a fan-out sink that forwards each call to
// multiple child sinks in order. Trace calls reach only the children that
// implement core.TraceSink.
package multisink
