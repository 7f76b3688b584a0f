package memutils

import "github.com/cockroachdb/errors"

// ErrInvalidInput is the error returned from CheckNonNegative, ParseSizes, and the allocators
// when a block capacity or process size is not a non-negative integer
var ErrInvalidInput error = errors.New("sizes must be non-negative integers")

// ErrUnknownStrategy is the error returned when a strategy selector does not name one of the
// placement strategies
var ErrUnknownStrategy error = errors.New("unknown allocation strategy")
