package ir

import (
	"errors"

	"github.com/bmsexpr/bms/token"
)

var (
	ErrParse = token.ErrParse

	// ErrInvalidAccess is wrapped by panics from kind specific accessors
	// called on a node of the wrong kind.
	ErrInvalidAccess = errors.New("invalid access")
	// ErrInvalidOperation is wrapped by panics from mutations of non-lists.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrLookupMiss is returned or wrapped when a path does not resolve.
	ErrLookupMiss = errors.New("lookup miss")
)
