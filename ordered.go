package interval

import (
	"strconv"

	"github.com/iotaledger/hive.go/lo"
)

// region OrderKind ////////////////////////////////////////////////////////////////////////////////////////////////////

// OrderKind defines which limit of the Intervals is compared first.
type OrderKind uint8

const (
	// UpperLowerOrder compares the upper limits first and uses the lower limits to break ties. Empty Intervals sort
	// first.
	UpperLowerOrder OrderKind = iota

	// LowerUpperOrder compares the lower limits first and uses the upper limits to break ties. Empty Intervals sort
	// last.
	LowerUpperOrder
)

// String returns a human-readable version of the OrderKind.
func (o OrderKind) String() string {
	switch o {
	case UpperLowerOrder:
		return "UpperLower"
	case LowerUpperOrder:
		return "LowerUpper"
	default:
		return "OrderKind(" + strconv.Itoa(int(o)) + ")"
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Ordered //////////////////////////////////////////////////////////////////////////////////////////////////////

// Ordered is the sort policy of an IntervalSeq. Each of the two limits can be compared in inverted direction.
type Ordered struct {
	kind         OrderKind
	inverseLower bool
	inverseUpper bool
}

// UpperLower returns the policy that orders by upper limit and then by lower limit.
func UpperLower(inverseLower bool, inverseUpper bool) Ordered {
	return Ordered{kind: UpperLowerOrder, inverseLower: inverseLower, inverseUpper: inverseUpper}
}

// LowerUpper returns the policy that orders by lower limit and then by upper limit.
func LowerUpper(inverseLower bool, inverseUpper bool) Ordered {
	return Ordered{kind: LowerUpperOrder, inverseLower: inverseLower, inverseUpper: inverseUpper}
}

// Kind returns which limit is compared first.
func (o Ordered) Kind() OrderKind {
	return o.kind
}

// InverseLower returns true if the lower limits are compared in descending order.
func (o Ordered) InverseLower() bool {
	return o.inverseLower
}

// InverseUpper returns true if the upper limits are compared in descending order.
func (o Ordered) InverseUpper() bool {
	return o.inverseUpper
}

// String returns a human-readable version of the Ordered policy.
func (o Ordered) String() string {
	return o.kind.String() + "(inverseLower: " + strconv.FormatBool(o.inverseLower) + ", inverseUpper: " + strconv.FormatBool(o.inverseUpper) + ")"
}

func (o Ordered) lowerFactor() int {
	return lo.Cond(o.inverseLower, -1, 1)
}

func (o Ordered) upperFactor() int {
	return lo.Cond(o.inverseUpper, -1, 1)
}

// CompareIntervals compares two Intervals according to the given policy and returns -1, 0 or 1.
func CompareIntervals[T Value[T]](ordered Ordered, a, b Interval[T]) int {
	aEmpty, bEmpty := a.IsEmpty(), b.IsEmpty()
	emptyFirst := ordered.kind == UpperLowerOrder

	switch {
	case aEmpty && bEmpty:
		return 0
	case aEmpty:
		return lo.Cond(emptyFirst, -1, 1)
	case bEmpty:
		return lo.Cond(emptyFirst, 1, -1)
	}

	upperResult := a.upper.Compare(b.upper) * ordered.upperFactor()
	lowerResult := a.lower.Compare(b.lower) * ordered.lowerFactor()

	if ordered.kind == UpperLowerOrder {
		return lo.Cond(upperResult != 0, upperResult, lowerResult)
	}

	return lo.Cond(lowerResult != 0, lowerResult, upperResult)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
