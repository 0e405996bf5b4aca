package replay

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrUnknownOp         = errors.New("unknown operation")
	ErrArity             = errors.New("wrong number of arguments")
	ErrBadArgument       = errors.New("bad argument")
	ErrMissingNew        = errors.New("script must start with " + OpNew)
	ErrExpectationFailed = errors.New("expectation failed")
)

// StepError ties a failure to the script line that caused it.
type StepError struct {
	Line int
	Op   string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Op, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
