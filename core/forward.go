package core

// Forward calls the method of s matching level.
//
// With no args the sink method receives exactly message, otherwise message
// followed by args in order. A nil sink (typed nil included), a sink without
// Trace, NoneLevel and out-of-range levels are all silent no-ops.
func Forward(s Sink, level Level, message any, args []any) {
	if IsNil(s) {
		return
	}

	switch level {
	case TraceLevel:
		ts, ok := s.(TraceSink)
		if !ok {
			return
		}
		if len(args) == 0 {
			ts.Trace(message)
		} else {
			ts.Trace(message, args...)
		}
	case DebugLevel:
		if len(args) == 0 {
			s.Debug(message)
		} else {
			s.Debug(message, args...)
		}
	case InfoLevel:
		if len(args) == 0 {
			s.Info(message)
		} else {
			s.Info(message, args...)
		}
	case WarnLevel:
		if len(args) == 0 {
			s.Warn(message)
		} else {
			s.Warn(message, args...)
		}
	case ErrorLevel:
		if len(args) == 0 {
			s.Error(message)
		} else {
			s.Error(message, args...)
		}
	}
}

// ForwardPrefixed forwards like Forward with prefix as the first argument
// and message moved to the second position.
func ForwardPrefixed(s Sink, level Level, prefix string, message any, args []any) {
	if IsNil(s) {
		return
	}
	rest := make([]any, 0, len(args)+1)
	rest = append(rest, message)
	rest = append(rest, args...)
	Forward(s, level, prefix, rest)
}
