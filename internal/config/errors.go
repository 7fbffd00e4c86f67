package config

import "errors"

var (
	// ErrInvalidNumber is returned for numeric input that does not parse
	// to a finite number.
	ErrInvalidNumber = errors.New("config: invalid number")

	// ErrUnknownField is returned by SetField for unrecognised keys.
	ErrUnknownField = errors.New("config: unknown field")

	// ErrUnknownPreset is returned when a preset name is not defined.
	ErrUnknownPreset = errors.New("config: unknown preset")
)
