package interval

import (
	"strconv"

	"github.com/iotaledger/hive.go/lo"
)

// IntervalLimit is one endpoint of an Interval. Besides its LimitValue it knows on which side of the Interval it sits
// (lower or upper) and whether the endpoint itself belongs to the Interval (closed) or not (open).
//
// A Limitless IntervalLimit is always open.
type IntervalLimit[T Value[T]] struct {
	closed bool
	lower  bool
	value  LimitValue[T]
}

// NewIntervalLimit creates a new IntervalLimit. The closed flag is ignored for Limitless values.
func NewIntervalLimit[T Value[T]](closed bool, lower bool, value LimitValue[T]) IntervalLimit[T] {
	return IntervalLimit[T]{
		closed: closed && !value.IsLimitless(),
		lower:  lower,
		value:  value,
	}
}

// NewLowerLimit creates a new IntervalLimit for the lower side of an Interval.
func NewLowerLimit[T Value[T]](closed bool, value LimitValue[T]) IntervalLimit[T] {
	return NewIntervalLimit(closed, true, value)
}

// NewUpperLimit creates a new IntervalLimit for the upper side of an Interval.
func NewUpperLimit[T Value[T]](closed bool, value LimitValue[T]) IntervalLimit[T] {
	return NewIntervalLimit(closed, false, value)
}

// IsClosed returns true if the endpoint belongs to the Interval.
func (i IntervalLimit[T]) IsClosed() bool {
	return i.closed
}

// IsOpen returns true if the endpoint does not belong to the Interval.
func (i IntervalLimit[T]) IsOpen() bool {
	return !i.closed
}

// IsLower returns true if this is the lower endpoint of an Interval.
func (i IntervalLimit[T]) IsLower() bool {
	return i.lower
}

// IsUpper returns true if this is the upper endpoint of an Interval.
func (i IntervalLimit[T]) IsUpper() bool {
	return !i.lower
}

// IsLimitless returns true if the endpoint is unbounded.
func (i IntervalLimit[T]) IsLimitless() bool {
	return i.value.IsLimitless()
}

// IsInfinity is an alias for IsLimitless.
func (i IntervalLimit[T]) IsInfinity() bool {
	return i.value.IsLimitless()
}

// IsFinite returns true if the endpoint holds a concrete value.
func (i IntervalLimit[T]) IsFinite() bool {
	return i.value.IsLimit()
}

// LimitValue returns the LimitValue of the endpoint.
func (i IntervalLimit[T]) LimitValue() LimitValue[T] {
	return i.value
}

// Value returns the concrete value of the endpoint or an error wrapping ErrNotFound if it is unbounded.
func (i IntervalLimit[T]) Value() (T, error) {
	return i.value.Value()
}

// Compare returns -1, 0 or 1 if this IntervalLimit sorts before, together with or after the other one.
//
// Unbounded lower limits sort below and unbounded upper limits sort above everything else. Limits on the same finite
// value are ordered by how far they reach: a closed lower limit sorts before an open one, an open upper limit sorts
// before a closed one and a lower limit sorts before an upper limit.
func (i IntervalLimit[T]) Compare(other IntervalLimit[T]) int {
	switch {
	case i.IsLimitless() && other.IsLimitless():
		if i.lower == other.lower {
			return 0
		}

		return lo.Cond(i.lower, -1, 1)
	case i.IsLimitless():
		return lo.Cond(i.lower, -1, 1)
	case other.IsLimitless():
		return lo.Cond(other.lower, 1, -1)
	case i.value.Equal(other.value):
		switch {
		case i.lower && other.lower:
			if i.closed == other.closed {
				return 0
			}

			return lo.Cond(i.closed, -1, 1)
		case !i.lower && !other.lower:
			if i.closed == other.closed {
				return 0
			}

			return lo.Cond(i.closed, 1, -1)
		default:
			return lo.Cond(i.lower, -1, 1)
		}
	default:
		return i.value.Compare(other.value)
	}
}

// Equal returns true if both IntervalLimits sit on the same side, share their closedness and their value.
func (i IntervalLimit[T]) Equal(other IntervalLimit[T]) bool {
	return i.Compare(other) == 0
}

// String returns a human-readable version of the IntervalLimit.
func (i IntervalLimit[T]) String() string {
	return "IntervalLimit(" + strconv.FormatBool(i.closed) + ", " + strconv.FormatBool(i.lower) + ", " + i.value.String() + ")"
}
