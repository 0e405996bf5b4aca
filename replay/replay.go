// Package replay drives a bounded.Value through a textual script of operations.
package replay

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"boundedvalue/bounded"
	"boundedvalue/maths"
	"boundedvalue/panicrecovery"
	"boundedvalue/slices"
)

// Result is a copy of the gauge taken right after Step was applied.
type Result[T maths.Number] struct {
	Step  Step
	Gauge bounded.Value[T]
}

func (r Result[T]) String() string {
	return fmt.Sprintf("line %d: %s -> %s", r.Step.Line, r.Step, r.Gauge)
}

type Summary[T maths.Number] struct {
	Steps        int
	Expectations int
	Peak         T
	Trough       T
	Final        string
}

// Run applies steps in order and stops at the first failure, returning the results
// collected so far along with a *StepError.
func Run[T maths.Number](steps []Step, logger *zap.Logger) ([]Result[T], error) {
	if len(steps) == 0 {
		return nil, ErrMissingNew
	}
	if steps[0].Op != OpNew {
		return nil, &StepError{Line: steps[0].Line, Op: steps[0].Op, Err: ErrMissingNew}
	}

	results := make([]Result[T], 0, len(steps))
	var gauge bounded.Value[T]
	for _, step := range steps {
		if err := apply(&gauge, step); err != nil {
			logger.Warn("step failed", zap.Int("line", step.Line), zap.Stringer("step", step), zap.Error(err))
			return results, &StepError{Line: step.Line, Op: step.Op, Err: err}
		}
		logger.Debug("applied step", zap.Int("line", step.Line), zap.Stringer("step", step), zap.Object("gauge", gauge))
		results = append(results, Result[T]{Step: step, Gauge: gauge})
	}

	return results, nil
}

func apply[T maths.Number](gauge *bounded.Value[T], step Step) (err error) {
	defer panicrecovery.RecoverAsError(&err)

	args, err := parseNumbers[T](step.Args)
	if err != nil {
		return err
	}

	switch step.Op {
	case OpNew:
		if len(args) == 2 {
			*gauge, err = bounded.NewFull(args[0], args[1])
		} else {
			*gauge, err = bounded.New(args[0], args[1], args[2])
		}
		return err
	case OpSet:
		gauge.Set(args[0])
	case OpAdd:
		gauge.Add(args[0])
	case OpSub:
		gauge.Sub(args[0])
	case OpMul:
		gauge.Mul(args[0])
	case OpDiv:
		gauge.Div(args[0])
	case OpToMax:
		gauge.ToMaximum()
	case OpToMin:
		gauge.ToMinimum()
	case OpSetPercent:
		gauge.SetToPercent(args[0])
	case OpAddPercent:
		gauge.AddPercent(args[0])
	case OpSubPercent:
		gauge.SubPercent(args[0])
	case OpAddOverMax:
		gauge.AddOverMaximum(args[0])
	case OpSubUnderMin:
		gauge.SubUnderMinimum(args[0])
	case OpSetMin:
		return gauge.SetMinimum(args[0])
	case OpSetMax:
		return gauge.SetMaximum(args[0])
	case OpExpect:
		if !gauge.Equal(args[0]) {
			return errors.Wrapf(ErrExpectationFailed, "current is %v, want %v", gauge.Current(), args[0])
		}
	case OpExpectPercent:
		if p := gauge.AsPercent(); p != args[0] {
			return errors.Wrapf(ErrExpectationFailed, "percent is %v, want %v", p, args[0])
		}
	default:
		return errors.Wrapf(ErrUnknownOp, "%q", step.Op)
	}

	return nil
}

func parseNumbers[T maths.Number](args []string) ([]T, error) {
	result := make([]T, 0, len(args))
	for _, arg := range args {
		n, err := parseNumber[T](arg)
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, nil
}

var (
	integerRegexp = regexp.MustCompile(`^[+-]?[0-9]+$`)
	decimalRegexp = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
)

// parseNumber accepts base-10 literals only, so "010" is ten for every gauge type.
// Integer gauges reject fractions and values that do not fit in T.
func parseNumber[T maths.Number](s string) (T, error) {
	if maths.IsInteger[T]() {
		if !integerRegexp.MatchString(s) {
			return 0, errors.Wrapf(ErrBadArgument, "%q is not an integer", s)
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil || int64(T(n)) != n {
			return 0, errors.Wrapf(ErrBadArgument, "%q is out of range", s)
		}
		return T(n), nil
	}
	if !decimalRegexp.MatchString(s) {
		return 0, errors.Wrapf(ErrBadArgument, "%q is not a number", s)
	}
	f, err := cast.ToFloat64E(s)
	if err != nil || math.IsInf(float64(T(f)), 0) {
		return 0, errors.Wrapf(ErrBadArgument, "%q is out of range", s)
	}
	return T(f), nil
}

// Summarize reports the extremes current reached over a run.
func Summarize[T maths.Number](results []Result[T]) Summary[T] {
	currents := slices.Map(results, func(r Result[T]) T { return r.Gauge.Current() })
	expectations := slices.Filter(results, func(r Result[T]) bool {
		return slices.Contains(expectationOps, r.Step.Op)
	})

	summary := Summary[T]{
		Steps:        len(results),
		Expectations: len(expectations),
		Peak:         slices.Max(currents),
		Trough:       slices.Min(currents),
	}
	if len(results) > 0 {
		summary.Final = results[len(results)-1].Gauge.String()
	}
	return summary
}
