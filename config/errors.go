package config

import "errors"

var (
	// ErrUnknownPreset is returned when a named preset does not exist.
	ErrUnknownPreset = errors.New("config: unknown preset")

	// ErrInvalidValue is returned when a resolved setting fails validation.
	ErrInvalidValue = errors.New("config: invalid value")
)
