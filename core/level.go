package core

import (
	"fmt"
	"strings"
)

// Level is a rank on the fixed severity scale.
type Level int8

const (
	// NoneLevel is below every other level. As a threshold it lets
	// everything through, as a keyed mapping it silences the key.
	NoneLevel Level = iota
	// TraceLevel for very fine-grained diagnostics
	TraceLevel
	// DebugLevel for detailed debugging information (default threshold)
	DebugLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
)

var levelNames = [...]string{
	NoneLevel:  "None",
	TraceLevel: "Trace",
	DebugLevel: "Debug",
	InfoLevel:  "Info",
	WarnLevel:  "Warn",
	ErrorLevel: "Error",
}

// Levels returns the valid levels in ascending order.
func Levels() []Level {
	return []Level{NoneLevel, TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel}
}

// IsValid reports whether l is one of the fixed ranks.
func IsValid(l Level) bool {
	return l >= NoneLevel && l <= ErrorLevel
}

// Valid reports whether l is one of the fixed ranks.
func (l Level) Valid() bool {
	return IsValid(l)
}

// AssertValid returns an *InvalidSeverityError when l is not a valid level.
func AssertValid(l Level) error {
	if IsValid(l) {
		return nil
	}
	return &InvalidSeverityError{Value: l}
}

// String returns the name of the level
func (l Level) String() string {
	if IsValid(l) {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", int8(l))
}

// LevelName is the strict form of String: it fails for out-of-range values.
func LevelName(l Level) (string, error) {
	if err := AssertValid(l); err != nil {
		return "", err
	}
	return levelNames[l], nil
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive
// and "warning" is accepted for WarnLevel.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none":
		return NoneLevel, nil
	case "trace":
		return TraceLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	default:
		return 0, &InvalidSeverityError{Value: name}
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	name, err := LevelName(l)
	if err != nil {
		return nil, err
	}
	return []byte(strings.ToLower(name)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
