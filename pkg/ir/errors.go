package ir

import (
	"errors"
	"fmt"
)

// Internal-consistency failures. They mean the IR handed to a back end was
// not produced by a well-behaved front end, or an opcode was added without
// teaching every encoder about it.
var (
	ErrInvalidValue    = errors.New("invalid value")
	ErrUnknownOpcode   = errors.New("unknown opcode")
	ErrUnknownRegister = errors.New("unknown register")
)

// FatalError is the panic value raised by Fatal.
type FatalError struct {
	Kind   error
	Detail string
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, e.Detail)
}

func (e *FatalError) Unwrap() error { return e.Kind }

// Fatal aborts encoding. Back ends never recover; the driver turns the panic
// into an error before any output is written.
func Fatal(kind error, format string, args ...any) {
	panic(&FatalError{Kind: kind, Detail: fmt.Sprintf(format, args...)})
}
