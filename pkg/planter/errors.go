package planter

import (
	"errors"
	"strings"
)

var (
	ErrPlantNotFound = errors.New("plant not found")
	ErrNoReadings    = errors.New("no sensor data available")
)

// ValidationError is a client input problem. Missing lists required fields
// that were absent, Invalid lists fields whose value was rejected.
type ValidationError struct {
	Missing []string
	Invalid []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required field(s): "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid value for field(s): "+strings.Join(e.Invalid, ", "))
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Fields() []string {
	return append(append([]string{}, e.Missing...), e.Invalid...)
}

func (e *ValidationError) empty() bool {
	return len(e.Missing) == 0 && len(e.Invalid) == 0
}

// orNil keeps a typed nil *ValidationError from turning into a non-nil error.
func (e *ValidationError) orNil() error {
	if e.empty() {
		return nil
	}
	return e
}

func invalid(fields ...string) error {
	return &ValidationError{Invalid: fields}
}
