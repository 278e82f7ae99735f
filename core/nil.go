package core

import "reflect"

// IsNil reports whether s is nil or an interface holding a nil pointer,
// map, slice, func or channel.
func IsNil(s Sink) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Attachable returns s, or an untyped nil when IsNil(s). Policies store
// sinks through it so a typed nil counts as detached.
func Attachable(s Sink) Sink {
	if IsNil(s) {
		return nil
	}
	return s
}
