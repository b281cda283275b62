package shash

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("shash: invalid argument")

	ErrNilTable    = fmt.Errorf("%w: nil table", ErrInvalidArgument)
	ErrNilKey      = fmt.Errorf("%w: nil key", ErrInvalidArgument)
	ErrNilValue    = fmt.Errorf("%w: nil value", ErrInvalidArgument)
	ErrInvalidSize = fmt.Errorf("%w: size must be positive", ErrInvalidArgument)

	// ErrAllocation is returned for a bucket count above MaxBuckets, or when
	// the entry arena would grow beyond what can be indexed.
	ErrAllocation = errors.New("shash: allocation failed")

	ErrDestroyed = errors.New("shash: table destroyed")
)
