package rings

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates a configuration that cannot be composed.
	// Validation errors wrap it and describe the offending field.
	ErrInvalidConfig = errors.New("rings: invalid configuration")
	// ErrUnknownMode indicates an unrecognised segment transform mode.
	ErrUnknownMode = errors.New("rings: unknown segment transform mode")
	// ErrUnknownGeneration indicates an unrecognised ring generation mode.
	ErrUnknownGeneration = errors.New("rings: unknown generation mode")
	// ErrUnknownNoiseKind indicates an unrecognised noise algorithm.
	ErrUnknownNoiseKind = errors.New("rings: unknown noise kind")
	// ErrUnknownPreset indicates a preset name that is not registered.
	ErrUnknownPreset = errors.New("rings: unknown preset")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}
