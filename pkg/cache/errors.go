package cache

import (
	"errors"
	"fmt"
)

// Package-specific errors
var (
	// ErrInvalidArgument is the root of every argument validation failure.
	// All other sentinels in this package wrap it.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidCapacity is returned when a cache is constructed with capacity <= 0
	ErrInvalidCapacity = fmt.Errorf("%w: capacity must be positive", ErrInvalidArgument)

	// ErrInvalidDuration is returned when a live or idle time limit is negative
	ErrInvalidDuration = fmt.Errorf("%w: time limit must not be negative", ErrInvalidArgument)

	// ErrNilKey is returned when a nil-equivalent key is passed to a keyed operation
	ErrNilKey = fmt.Errorf("%w: key must not be nil", ErrInvalidArgument)

	// ErrNilValue is returned when a nil-equivalent value is passed to a valued operation
	ErrNilValue = fmt.Errorf("%w: value must not be nil", ErrInvalidArgument)

	// ErrNilMap is returned when PutAll receives a nil map
	ErrNilMap = fmt.Errorf("%w: values map must not be nil", ErrInvalidArgument)

	// ErrNilPolicy is returned when NewMap receives a nil policy
	ErrNilPolicy = fmt.Errorf("%w: policy must not be nil", ErrInvalidArgument)
)
