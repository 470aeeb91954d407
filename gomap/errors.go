package gomap

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrTypeConversion = errors.New("type conversion error")
	ErrUnregistered   = errors.New("no codec registered")
)

// TypeError represents a node which cannot be converted to the requested
// type.
type TypeError struct {
	Expected string
	Actual   string
	Message  string
	Err      error
}

func (e *TypeError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("expected %s, got %s", e.Expected, e.Actual)
	}
	return fmt.Sprintf("type error: %s", msg)
}

func (e *TypeError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTypeConversion}
	}
	return []error{ErrTypeConversion, e.Err}
}

// UnregisteredError reports a type with no codec and no marshaling methods.
type UnregisteredError struct {
	Type reflect.Type
}

func (e *UnregisteredError) Error() string {
	return fmt.Sprintf("%s for %s", ErrUnregistered, e.Type)
}

func (e *UnregisteredError) Unwrap() error {
	return ErrUnregistered
}
