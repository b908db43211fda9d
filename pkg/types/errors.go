package types

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every validation failure of the lift pipeline.
var ErrInvalidInput = errors.New("invalid input")

// InputError reports which pipeline stage rejected its inputs.
type InputError struct {
	Stage  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidInput, e.Stage, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}
