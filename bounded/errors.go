package bounded

import (
	"errors"
	"fmt"

	"boundedvalue/maths"
)

// ErrInvalidRange is matched by every *RangeError.
var ErrInvalidRange = errors.New("minimum exceeds maximum")

// RangeError reports a minimum/maximum pair that would break minimum <= maximum.
type RangeError[T maths.Number] struct {
	Op      string
	Minimum T
	Maximum T
}

func (e *RangeError[T]) Error() string {
	return fmt.Sprintf("bounded: %s: invalid range [%v, %v]: %v", e.Op, e.Minimum, e.Maximum, ErrInvalidRange)
}

func (e *RangeError[T]) Unwrap() error {
	return ErrInvalidRange
}

// checkRange also rejects NaN on either side, since NaN is unordered.
func checkRange[T maths.Number](op string, minimum, maximum T) error {
	if !(minimum <= maximum) {
		return &RangeError[T]{Op: op, Minimum: minimum, Maximum: maximum}
	}
	return nil
}
