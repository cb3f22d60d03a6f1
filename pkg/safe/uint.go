// Package safe provides overflow-checked integer conversions and arithmetic.
package safe

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is returned when a value does not fit the target type.
var ErrOutOfRange = errors.New("value out of range")

// Uint32 converts a length or count to uint32.
func Uint32[T ~int | ~int64 | ~uint | ~uint64](v T) (uint32, error) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%d to uint32: %w", v, ErrOutOfRange)
	}
	return uint32(v), nil
}

// Int64 converts a satoshi amount to int64, as used by btcutil.Amount.
func Int64(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("%d to int64: %w", v, ErrOutOfRange)
	}
	return int64(v), nil
}

// Add returns a+b or ErrOutOfRange when the sum wraps.
func Add(a, b uint64) (uint64, error) {
	sum := a + b
	if sum < a {
		return 0, fmt.Errorf("%d + %d: %w", a, b, ErrOutOfRange)
	}
	return sum, nil
}
