package types

import (
	"errors"
)

// ErrorAs finds the first error in err's chain that matches T.
// It returns the zero value of T and false if none does.
func ErrorAs[T error](err error) (T, bool) {
	var target T
	if errors.As(err, &target) {
		return target, true
	}
	return *new(T), false
}
