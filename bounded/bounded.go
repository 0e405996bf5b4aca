// Package bounded provides Value, a number that can never leave its [minimum, maximum] range.
//
// Typical use is a gauge embedded in a larger entity:
//
//	health := bounded.MustNewFull(0, 100)
//	health.Sub(30).AddPercent(10)
//	if health.LtPercent(25) { ... }
//
// Percent operations assume a range anchored at zero. SetToPercent computes
// p * (maximum - minimum) / 100 without adding minimum, and AsPercent divides by
// maximum rather than by the span, so both are skewed when minimum != 0.
//
// Value is not safe for concurrent use.
package bounded

import (
	"fmt"

	"go.uber.org/zap/zapcore"

	"boundedvalue/maths"
)

// Value holds current clamped to [minimum, maximum]. The zero value is the range (0, 0, 0).
type Value[T maths.Number] struct {
	minimum T
	maximum T
	current T
}

// New returns a value with the given bounds and current clamped into them.
func New[T maths.Number](minimum, maximum, current T) (Value[T], error) {
	if err := checkRange("new", minimum, maximum); err != nil {
		return Value[T]{}, err
	}
	v := Value[T]{minimum: minimum, maximum: maximum}
	v.Set(current)
	return v, nil
}

// NewFull returns a value with current set to maximum.
func NewFull[T maths.Number](minimum, maximum T) (Value[T], error) {
	return New(minimum, maximum, maximum)
}

// MustNew is like New but panics if minimum > maximum.
func MustNew[T maths.Number](minimum, maximum, current T) Value[T] {
	v, err := New(minimum, maximum, current)
	if err != nil {
		panic(err)
	}
	return v
}

// MustNewFull is like NewFull but panics if minimum > maximum.
func MustNewFull[T maths.Number](minimum, maximum T) Value[T] {
	return MustNew(minimum, maximum, maximum)
}

// Minimum returns the inclusive lower bound.
func (v Value[T]) Minimum() T { return v.minimum }

// Maximum returns the inclusive upper bound.
func (v Value[T]) Maximum() T { return v.maximum }

// Current returns the clamped value.
func (v Value[T]) Current() T { return v.current }

// Span returns maximum - minimum.
func (v Value[T]) Span() T { return v.maximum - v.minimum }

// Set assigns n clamped into [minimum, maximum]. NaN clamps to minimum.
func (v *Value[T]) Set(n T) *Value[T] {
	v.current = maths.Clamp(n, v.minimum, v.maximum)
	return v
}

// Add adds n to current and re-clamps.
func (v *Value[T]) Add(n T) *Value[T] {
	return v.Set(v.current + n)
}

// Sub subtracts n from current and re-clamps.
func (v *Value[T]) Sub(n T) *Value[T] {
	return v.Add(-n)
}

// Mul multiplies current by n and re-clamps.
func (v *Value[T]) Mul(n T) *Value[T] {
	return v.Set(v.current * n)
}

// Div divides current by n. Integer division by zero panics as it does for T.
func (v *Value[T]) Div(n T) *Value[T] {
	return v.Set(v.current / n)
}

// ToMaximum fills the value.
func (v *Value[T]) ToMaximum() *Value[T] {
	return v.Set(v.maximum)
}

// ToMinimum empties the value.
func (v *Value[T]) ToMinimum() *Value[T] {
	return v.Set(v.minimum)
}

// SetToPercent sets current to p percent of the span. minimum is not added.
func (v *Value[T]) SetToPercent(p T) *Value[T] {
	return v.Set(maths.PercentOf(p, v.Span()))
}

// AddPercent adds p percent of the span to current.
func (v *Value[T]) AddPercent(p T) *Value[T] {
	return v.Add(maths.PercentOf(p, v.Span()))
}

// SubPercent subtracts p percent of the span from current.
func (v *Value[T]) SubPercent(p T) *Value[T] {
	return v.AddPercent(-p)
}

// AddOverMaximum raises maximum by n and then adds n, so the amount is never clipped.
// It panics with a *RangeError if a negative n would drop maximum below minimum.
func (v *Value[T]) AddOverMaximum(n T) *Value[T] {
	if err := checkRange("add over maximum", v.minimum, v.maximum+n); err != nil {
		panic(err)
	}
	v.maximum += n
	return v.Add(n)
}

// SubUnderMinimum lowers minimum by n and then subtracts n.
// It panics with a *RangeError if a negative n would raise minimum above maximum.
func (v *Value[T]) SubUnderMinimum(n T) *Value[T] {
	if err := checkRange("sub under minimum", v.minimum-n, v.maximum); err != nil {
		panic(err)
	}
	v.minimum -= n
	return v.Sub(n)
}

// SetMinimum moves the lower bound. current is only ever raised to follow it.
func (v *Value[T]) SetMinimum(m T) error {
	if err := checkRange("set minimum", m, v.maximum); err != nil {
		return err
	}
	v.minimum = m
	v.current = maths.Max(v.current, v.minimum)
	return nil
}

// SetMaximum moves the upper bound. current is only ever lowered to follow it.
func (v *Value[T]) SetMaximum(m T) error {
	if err := checkRange("set maximum", v.minimum, m); err != nil {
		return err
	}
	v.maximum = m
	v.current = maths.Min(v.current, v.maximum)
	return nil
}

// AtMaximum reports whether current equals maximum.
func (v Value[T]) AtMaximum() bool { return v.current == v.maximum }

// AtMinimum reports whether current equals minimum.
func (v Value[T]) AtMinimum() bool { return v.current == v.minimum }

// Gt, Gte, Lt and Lte compare current against a raw scalar.
func (v Value[T]) Gt(n T) bool  { return v.current > n }
func (v Value[T]) Gte(n T) bool { return v.current >= n }
func (v Value[T]) Lt(n T) bool  { return v.current < n }
func (v Value[T]) Lte(n T) bool { return v.current <= n }

// Equal compares current against a raw scalar.
func (v Value[T]) Equal(n T) bool { return v.current == n }

// AsPercent returns floor(current / maximum * 100), evaluated as
// floor(current * 100 / maximum) so that 57 of 100 yields 57 rather than 56.
// Integer types go through float64. It is 0 when maximum is 0.
//
// The divisor is maximum, not the span.
func (v Value[T]) AsPercent() T {
	return maths.Percent(v.current, v.maximum)
}

// GtPercent, GtePercent, LtPercent and LtePercent compare AsPercent against p.
func (v Value[T]) GtPercent(p T) bool  { return v.AsPercent() > p }
func (v Value[T]) GtePercent(p T) bool { return v.AsPercent() >= p }
func (v Value[T]) LtPercent(p T) bool  { return v.AsPercent() < p }
func (v Value[T]) LtePercent(p T) bool { return v.AsPercent() <= p }

// String renders the value as (minimum, maximum, current).
func (v Value[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.minimum, v.maximum, v.current)
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (v Value[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	addNumber(enc, "minimum", v.minimum)
	addNumber(enc, "maximum", v.maximum)
	addNumber(enc, "current", v.current)
	return nil
}

func addNumber[T maths.Number](enc zapcore.ObjectEncoder, key string, n T) {
	if maths.IsInteger[T]() {
		enc.AddInt64(key, int64(n))
		return
	}
	enc.AddFloat64(key, float64(n))
}
