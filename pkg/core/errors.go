package core

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrInvalidDateTime  = errors.New("invalid ISO-8601 date-time")
	ErrMalformedEscape  = errors.New("malformed percent escape")
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
	ErrGuardReleased    = errors.New("signal guard already released")
	ErrNilSignal        = errors.New("nil signal")
	ErrUnknownSignal    = errors.New("unknown signal")
)

// ConfigError represents configuration-related errors
type ConfigError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in field %s (value: %v): %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ValidationError represents a rejected request parameter
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error in field %s (value: %q): %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ProtocolError represents protocol-level errors
type ProtocolError struct {
	Operation string
	Code      int
	Body      string
	Err       error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol error in %s (code: %d): %v", e.Operation, e.Code, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// SignalError represents a failure to set up or tear down a signal guard.
// It is fatal for callers that use the Must variants.
type SignalError struct {
	Op     string
	Signal string
	Err    error
}

func (e *SignalError) Error() string {
	if e.Signal == "" {
		return fmt.Sprintf("signal error in %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("signal error in %s for %s: %v", e.Op, e.Signal, e.Err)
}

func (e *SignalError) Unwrap() error {
	return e.Err
}
