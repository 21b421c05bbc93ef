// Package interval implements intervals over arbitrary ordered values: bounded, half-bounded and unbounded ranges
// with open or closed endpoints, the set operations on them and an ordered sequence of intervals.
//
// Notation         Definition          Factory
// (a, b)           {x | a < x < b}     Open
// [a, b]           {x | a <= x <= b}   Closed
// (a, b]           {x | a < x <= b}    Over(a, false, b, true)
// [a, b)           {x | a <= x < b}    Over(a, true, b, false)
// (a, Infinity)    {x | x > a}         MoreThan
// [a, Infinity)    {x | x >= a}        AndMore
// (Infinity, b)    {x | x < b}         Under
// (Infinity, b]    {x | x <= b}        UpTo
// {a}              {a}                 SingleElement
// (Infinity, Inf.) {x}                 All
package interval

import (
	"strings"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
)

// Interval is a contiguous span of Values between a lower and an upper IntervalLimit. Intervals are immutable: every
// operation returns a new Interval.
type Interval[T Value[T]] struct {
	lower IntervalLimit[T]
	upper IntervalLimit[T]
}

// region constructors /////////////////////////////////////////////////////////////////////////////////////////////////

// NewInterval creates a new Interval and returns an error wrapping ErrInvalidInterval if the lower limit is greater
// than the upper limit.
//
// If both limits hold the same finite value and only one of them is open, both limits are closed so that the result is
// the single element Interval instead of an accidental empty one.
func NewInterval[T Value[T]](lower LimitValue[T], lowerClosed bool, upper LimitValue[T], upperClosed bool) (Interval[T], error) {
	lowerLimit := NewLowerLimit(lowerClosed, lower)
	upperLimit := NewUpperLimit(upperClosed, upper)

	if lowerLimit.Compare(upperLimit) > 0 {
		return Interval[T]{}, ierrors.Wrapf(ErrInvalidInterval, "%s is greater than %s", lower, upper)
	}

	if lowerLimit.IsFinite() && upperLimit.IsFinite() && lower.Equal(upper) && lowerLimit.closed != upperLimit.closed {
		lowerLimit.closed = true
		upperLimit.closed = true
	}

	return Interval[T]{
		lower: lowerLimit,
		upper: upperLimit,
	}, nil
}

// Over returns an Interval with explicitly configured endpoints. It panics if lower is greater than upper.
func Over[T Value[T]](lower LimitValue[T], lowerClosed bool, upper LimitValue[T], upperClosed bool) Interval[T] {
	return lo.PanicOnErr(NewInterval(lower, lowerClosed, upper, upperClosed))
}

// Closed returns the Interval {x | lower <= x <= upper}. It panics if lower is greater than upper.
func Closed[T Value[T]](lower LimitValue[T], upper LimitValue[T]) Interval[T] {
	return Over(lower, true, upper, true)
}

// Open returns the Interval {x | lower < x < upper}. It panics if lower is greater than upper.
func Open[T Value[T]](lower LimitValue[T], upper LimitValue[T]) Interval[T] {
	return Over(lower, false, upper, false)
}

// AndMore returns the Interval {x | x >= lower}.
func AndMore[T Value[T]](lower LimitValue[T]) Interval[T] {
	return Over(lower, true, Limitless[T](), false)
}

// MoreThan returns the Interval {x | x > lower}.
func MoreThan[T Value[T]](lower LimitValue[T]) Interval[T] {
	return Over(lower, false, Limitless[T](), false)
}

// UpTo returns the Interval {x | x <= upper}.
func UpTo[T Value[T]](upper LimitValue[T]) Interval[T] {
	return Over(Limitless[T](), false, upper, true)
}

// Under returns the Interval {x | x < upper}.
func Under[T Value[T]](upper LimitValue[T]) Interval[T] {
	return Over(Limitless[T](), false, upper, false)
}

// SingleElement returns the Interval that only contains the given value.
func SingleElement[T Value[T]](element LimitValue[T]) Interval[T] {
	return Closed(element, element)
}

// All returns the Interval that contains every value.
func All[T Value[T]]() Interval[T] {
	return Open(Limitless[T](), Limitless[T]())
}

// NewOfSameType creates a new Interval of the same family as this one. It panics if lower is greater than upper.
func (i Interval[T]) NewOfSameType(lower LimitValue[T], lowerClosed bool, upper LimitValue[T], upperClosed bool) Interval[T] {
	return Over(lower, lowerClosed, upper, upperClosed)
}

// EmptyOfSameType returns an empty Interval of the same family as this one. The empty Interval is open on both sides
// of a single point: the lower value, the upper value if there is no lower one or the zero value of T if the Interval
// is unbounded on both sides.
func (i Interval[T]) EmptyOfSameType() Interval[T] {
	var anchor T
	switch {
	case i.lower.IsFinite():
		anchor = i.lower.value.value
	case i.upper.IsFinite():
		anchor = i.upper.value.value
	}

	return i.NewOfSameType(Limit(anchor), false, Limit(anchor), false)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region accessors ////////////////////////////////////////////////////////////////////////////////////////////////////

// Lower returns the lower IntervalLimit.
func (i Interval[T]) Lower() IntervalLimit[T] {
	return i.lower
}

// Upper returns the upper IntervalLimit.
func (i Interval[T]) Upper() IntervalLimit[T] {
	return i.upper
}

// LowerLimit returns the LimitValue of the lower endpoint.
func (i Interval[T]) LowerLimit() LimitValue[T] {
	return i.lower.value
}

// UpperLimit returns the LimitValue of the upper endpoint.
func (i Interval[T]) UpperLimit() LimitValue[T] {
	return i.upper.value
}

// HasLowerLimit returns true if the Interval is bounded below.
func (i Interval[T]) HasLowerLimit() bool {
	return i.lower.IsFinite()
}

// HasUpperLimit returns true if the Interval is bounded above.
func (i Interval[T]) HasUpperLimit() bool {
	return i.upper.IsFinite()
}

// IncludesLowerLimit returns true if the lower endpoint belongs to the Interval.
func (i Interval[T]) IncludesLowerLimit() bool {
	return i.lower.closed
}

// IncludesUpperLimit returns true if the upper endpoint belongs to the Interval.
func (i Interval[T]) IncludesUpperLimit() bool {
	return i.upper.closed
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region classification ///////////////////////////////////////////////////////////////////////////////////////////////

// IsOpen returns true if neither endpoint belongs to the Interval.
func (i Interval[T]) IsOpen() bool {
	return !i.lower.closed && !i.upper.closed
}

// IsClosed returns true if both endpoints belong to the Interval.
func (i Interval[T]) IsClosed() bool {
	return i.lower.closed && i.upper.closed
}

// IsEmpty returns true if the Interval is of the form (v, v). The Interval that is unbounded on both sides is never
// empty.
func (i Interval[T]) IsEmpty() bool {
	if !i.HasLowerLimit() && !i.HasUpperLimit() {
		return false
	}

	return i.IsOpen() && i.lower.value.Equal(i.upper.value)
}

// IsSingleElement returns true if the Interval contains exactly one value.
func (i Interval[T]) IsSingleElement() bool {
	if !i.HasLowerLimit() || !i.HasUpperLimit() {
		return false
	}

	return i.lower.value.Equal(i.upper.value) && !i.IsEmpty()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region membership ///////////////////////////////////////////////////////////////////////////////////////////////////

// IsAbove returns true if every value of the Interval is greater than the given value.
func (i Interval[T]) IsAbove(value T) bool {
	if !i.HasLowerLimit() {
		return false
	}

	result := i.lower.value.value.Compare(value)

	return result > 0 || (result == 0 && !i.lower.closed)
}

// IsBelow returns true if every value of the Interval is smaller than the given value.
func (i Interval[T]) IsBelow(value T) bool {
	if !i.HasUpperLimit() {
		return false
	}

	result := i.upper.value.value.Compare(value)

	return result < 0 || (result == 0 && !i.upper.closed)
}

// Includes returns true if the given value lies within the Interval.
func (i Interval[T]) Includes(value T) bool {
	return !i.IsBelow(value) && !i.IsAbove(value)
}

// Covers returns true if every value of the other Interval is also contained in this one.
func (i Interval[T]) Covers(other Interval[T]) bool {
	lowerPass := i.includesLimit(other.lower.value) || (i.lower.value.Equal(other.lower.value) && !other.lower.closed)
	upperPass := i.includesLimit(other.upper.value) || (i.upper.value.Equal(other.upper.value) && !other.upper.closed)

	return lowerPass && upperPass
}

// includesLimit returns true if the LimitValue holds a value that is included in the Interval.
func (i Interval[T]) includesLimit(limit LimitValue[T]) bool {
	return limit.IsLimit() && i.Includes(limit.value)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region set operations ///////////////////////////////////////////////////////////////////////////////////////////////

// Intersect returns the Interval of all values that are contained in both Intervals. The result is empty if the
// Intervals do not overlap.
func (i Interval[T]) Intersect(other Interval[T]) Interval[T] {
	lower := i.greaterOfLowerLimits(other)
	upper := i.lesserOfUpperLimits(other)
	if lower.IsLimit() && upper.IsLimit() && lower.value.Compare(upper.value) > 0 {
		return i.EmptyOfSameType()
	}

	return i.NewOfSameType(lower, i.greaterOfLowerIncludedInIntersection(other), upper, i.lesserOfUpperIncludedInIntersection(other))
}

// Intersects returns true if both Intervals share at least one value.
func (i Interval[T]) Intersects(other Interval[T]) bool {
	if (i.upper.IsLimitless() && other.upper.IsLimitless()) || (i.lower.IsLimitless() && other.lower.IsLimitless()) {
		return true
	}

	switch i.greaterOfLowerLimits(other).Compare(i.lesserOfUpperLimits(other)) {
	case -1:
		return true
	case 1:
		return false
	default:
		return i.greaterOfLowerIncludedInIntersection(other) && i.lesserOfUpperIncludedInIntersection(other)
	}
}

// Gap returns the Interval that lies between two disjoint Intervals. The result is empty if the Intervals intersect or
// touch each other.
func (i Interval[T]) Gap(other Interval[T]) Interval[T] {
	if i.Intersects(other) {
		return i.EmptyOfSameType()
	}

	return i.NewOfSameType(
		i.lesserOfUpperLimits(other),
		!i.lesserOfUpperIncludedInUnion(other),
		i.greaterOfLowerLimits(other),
		!i.greaterOfLowerIncludedInUnion(other),
	)
}

// ComplementRelativeTo returns the parts of the other Interval that are not covered by this one. The result holds the
// other Interval itself if both do not intersect and zero, one or two Intervals otherwise.
func (i Interval[T]) ComplementRelativeTo(other Interval[T]) []Interval[T] {
	if !i.Intersects(other) {
		return []Interval[T]{other}
	}

	complement := make([]Interval[T], 0, 2)
	if left, exists := i.LeftComplementRelativeTo(other); exists {
		complement = append(complement, left)
	}
	if right, exists := i.RightComplementRelativeTo(other); exists {
		complement = append(complement, right)
	}

	return complement
}

// LeftComplementRelativeTo returns the part of the other Interval that lies below this Interval and a flag that
// indicates if such a part exists. The part never reaches beyond the upper limit of the other Interval.
func (i Interval[T]) LeftComplementRelativeTo(other Interval[T]) (left Interval[T], exists bool) {
	if i.lower.Compare(other.lower) <= 0 {
		return left, false
	}

	upper := NewUpperLimit(!i.lower.closed, i.lower.value)
	if other.upper.Compare(upper) < 0 {
		upper = other.upper
	}

	return i.NewOfSameType(other.lower.value, other.lower.closed, upper.value, upper.closed), true
}

// RightComplementRelativeTo returns the part of the other Interval that lies above this Interval and a flag that
// indicates if such a part exists. The part never reaches below the lower limit of the other Interval.
func (i Interval[T]) RightComplementRelativeTo(other Interval[T]) (right Interval[T], exists bool) {
	if i.upper.Compare(other.upper) >= 0 {
		return right, false
	}

	lower := NewLowerLimit(!i.upper.closed, i.upper.value)
	if other.lower.Compare(lower) > 0 {
		lower = other.lower
	}

	return i.NewOfSameType(lower.value, lower.closed, other.upper.value, other.upper.closed), true
}

// greaterOfLowerLimits returns the greater of both lower values where a missing lower limit always loses.
func (i Interval[T]) greaterOfLowerLimits(other Interval[T]) LimitValue[T] {
	switch {
	case i.lower.IsLimitless():
		return other.lower.value
	case other.lower.IsLimitless():
		return i.lower.value
	case i.lower.value.Compare(other.lower.value) >= 0:
		return i.lower.value
	default:
		return other.lower.value
	}
}

// lesserOfUpperLimits returns the lesser of both upper values where a missing upper limit always loses.
func (i Interval[T]) lesserOfUpperLimits(other Interval[T]) LimitValue[T] {
	switch {
	case i.upper.IsLimitless():
		return other.upper.value
	case other.upper.IsLimitless():
		return i.upper.value
	case i.upper.value.Compare(other.upper.value) <= 0:
		return i.upper.value
	default:
		return other.upper.value
	}
}

func (i Interval[T]) greaterOfLowerIncludedInIntersection(other Interval[T]) bool {
	limit := i.greaterOfLowerLimits(other)

	return i.includesLimit(limit) && other.includesLimit(limit)
}

func (i Interval[T]) greaterOfLowerIncludedInUnion(other Interval[T]) bool {
	limit := i.greaterOfLowerLimits(other)

	return i.includesLimit(limit) || other.includesLimit(limit)
}

func (i Interval[T]) lesserOfUpperIncludedInIntersection(other Interval[T]) bool {
	limit := i.lesserOfUpperLimits(other)

	return i.includesLimit(limit) && other.includesLimit(limit)
}

func (i Interval[T]) lesserOfUpperIncludedInUnion(other Interval[T]) bool {
	limit := i.lesserOfUpperLimits(other)

	return i.includesLimit(limit) || other.includesLimit(limit)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region equality and rendering ///////////////////////////////////////////////////////////////////////////////////////

// Equal returns true if both Intervals contain the same values. All empty Intervals are equal to each other.
func (i Interval[T]) Equal(other Interval[T]) bool {
	thisEmpty, otherEmpty := i.IsEmpty(), other.IsEmpty()
	if thisEmpty || otherEmpty {
		return thisEmpty == otherEmpty
	}

	if i.IsSingleElement() && other.IsSingleElement() {
		return i.lower.value.Equal(other.lower.value)
	}

	return i.lower.Equal(other.lower) && i.upper.Equal(other.upper)
}

// String returns a human-readable version of the Interval.
func (i Interval[T]) String() string {
	if i.IsEmpty() {
		return "{}"
	}

	if i.IsSingleElement() {
		return "{" + i.lower.value.value.String() + "}"
	}

	var builder strings.Builder
	builder.WriteString(lo.Cond(i.lower.closed, "[", "("))
	builder.WriteString(renderLimit(i.lower.value))
	builder.WriteString(", ")
	builder.WriteString(renderLimit(i.upper.value))
	builder.WriteString(lo.Cond(i.upper.closed, "]", ")"))

	return builder.String()
}

func renderLimit[T Value[T]](limit LimitValue[T]) string {
	if limit.IsLimitless() {
		return "Infinity"
	}

	return limit.value.String()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
