package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidSeverity matches any *InvalidSeverityError.
	ErrInvalidSeverity = errors.New("invalid log level")
	// ErrUnknownLogKey matches any *UnknownLogKeyError.
	ErrUnknownLogKey = errors.New("unknown log key")
	// ErrOverrideAlreadyActive is returned by a bulk override while a
	// previous one has not been reset.
	ErrOverrideAlreadyActive = errors.New("override already active, reset it first")
)

// InvalidSeverityError reports a value used where a valid Level is required.
type InvalidSeverityError struct {
	// Value is the offending value: a Level, or the name that failed to parse.
	Value any
}

// Valid returns the full set of accepted levels.
func (e *InvalidSeverityError) Valid() []Level {
	return Levels()
}

func (e *InvalidSeverityError) Error() string {
	valid := e.Valid()
	ranks := make([]string, len(valid))
	for i, l := range valid {
		ranks[i] = strconv.Itoa(int(l))
	}
	value := e.Value
	if l, ok := value.(Level); ok {
		value = int(l)
	}
	return fmt.Sprintf("invalid log level: %v, expected one of [%s]", value, strings.Join(ranks, ", "))
}

func (e *InvalidSeverityError) Is(target error) bool {
	return target == ErrInvalidSeverity
}

// UnknownLogKeyError reports a key missing from a keyed logger's mapping.
type UnknownLogKeyError struct {
	Key string
}

func (e *UnknownLogKeyError) Error() string {
	return "unknown log key: " + e.Key
}

func (e *UnknownLogKeyError) Is(target error) bool {
	return target == ErrUnknownLogKey
}
