package logger

import (
	"github.com/philipp01105/levelgate/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	NoneLevel  = core.NoneLevel
	TraceLevel = core.TraceLevel
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
)

// ParseLevel converts a level name to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
