package interval

import (
	"github.com/iotaledger/hive.go/ierrors"
)

// LimitValue is either a concrete bound value or the Limitless sentinel that stands for an unbounded endpoint.
//
// A bare Limitless has no side, so its context-free ordering (see Compare) is an implementation detail. The side-aware
// ordering that the Intervals rely on is implemented by IntervalLimit.
type LimitValue[T Value[T]] struct {
	value     T
	limitless bool
}

// Limit returns a LimitValue that holds the given concrete value.
func Limit[T Value[T]](value T) LimitValue[T] {
	return LimitValue[T]{value: value}
}

// Limitless returns the sentinel LimitValue that represents an unbounded endpoint.
func Limitless[T Value[T]]() LimitValue[T] {
	return LimitValue[T]{limitless: true}
}

// NewLimitValue returns Limitless for a nil value and a Limit holding *value otherwise.
func NewLimitValue[T Value[T]](value *T) LimitValue[T] {
	if value == nil {
		return Limitless[T]()
	}

	return Limit(*value)
}

// IsLimit returns true if the LimitValue holds a concrete value.
func (l LimitValue[T]) IsLimit() bool {
	return !l.limitless
}

// IsLimitless returns true if the LimitValue is the unbounded sentinel.
func (l LimitValue[T]) IsLimitless() bool {
	return l.limitless
}

// Value returns the contained value or an error wrapping ErrNotFound if the LimitValue is Limitless.
func (l LimitValue[T]) Value() (value T, err error) {
	if l.limitless {
		return value, ierrors.Wrapf(ErrNotFound, "no value in %s", l)
	}

	return l.value, nil
}

// ValueOr returns the contained value or the result of defaultValue if the LimitValue is Limitless. The default is
// only evaluated when it is needed.
func (l LimitValue[T]) ValueOr(defaultValue func() T) T {
	if l.limitless {
		return defaultValue()
	}

	return l.value
}

// Equal returns true if both LimitValues are Limitless or if both hold values that compare as equal.
func (l LimitValue[T]) Equal(other LimitValue[T]) bool {
	if l.limitless || other.limitless {
		return l.limitless == other.limitless
	}

	return l.value.Compare(other.value) == 0
}

// Compare returns -1, 0 or 1 if the LimitValue is smaller, equal or bigger than the other one. Limitless sorts below
// every concrete value and is equal to itself.
func (l LimitValue[T]) Compare(other LimitValue[T]) int {
	switch {
	case l.limitless && other.limitless:
		return 0
	case l.limitless:
		return -1
	case other.limitless:
		return 1
	default:
		return sign(l.value.Compare(other.value))
	}
}

// String returns a human-readable version of the LimitValue.
func (l LimitValue[T]) String() string {
	if l.limitless {
		return "Limitless"
	}

	return "Limit(" + l.value.String() + ")"
}

// sign normalizes the result of a Compare method to -1, 0 or 1.
func sign(result int) int {
	switch {
	case result < 0:
		return -1
	case result > 0:
		return 1
	default:
		return 0
	}
}
