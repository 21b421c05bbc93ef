package interval

import (
	"fmt"
	"strconv"
	"time"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/lo"
)

// region Value ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Value is the constraint for the types that can be used as the bounds of an Interval. A Value needs to be able to
// compare itself to other instances of the same type and needs to be renderable as text.
type Value[T any] interface {
	// Compare returns 0 if the other Value is identical, -1 if it is bigger and 1 if it is smaller.
	constraints.Comparable[T]

	// String returns a human-readable version of the Value.
	fmt.Stringer
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region IntValue /////////////////////////////////////////////////////////////////////////////////////////////////////

// IntValue is a wrapper for int values that makes these values compatible with the Value constraint so they can be used
// in Intervals.
type IntValue int

// Compare return 0 if the other IntValue is identical, -1 if it is bigger and 1 if it is smaller.
func (i IntValue) Compare(other IntValue) int {
	return lo.Compare(i, other)
}

// String returns a human-readable version of the IntValue.
func (i IntValue) String() string {
	return strconv.Itoa(int(i))
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Int32Value ///////////////////////////////////////////////////////////////////////////////////////////////////

// Int32Value is a wrapper for int32 values that makes these values compatible with the Value constraint so they can be
// used in Intervals.
type Int32Value int32

// Compare return 0 if the other Int32Value is identical, -1 if it is bigger and 1 if it is smaller.
func (i Int32Value) Compare(other Int32Value) int {
	return lo.Compare(i, other)
}

// String returns a human-readable version of the Int32Value.
func (i Int32Value) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Int64Value ///////////////////////////////////////////////////////////////////////////////////////////////////

// Int64Value is a wrapper for int64 values that makes these values compatible with the Value constraint so they can be
// used in Intervals.
type Int64Value int64

// Compare return 0 if the other Int64Value is identical, -1 if it is bigger and 1 if it is smaller.
func (i Int64Value) Compare(other Int64Value) int {
	return lo.Compare(i, other)
}

// String returns a human-readable version of the Int64Value.
func (i Int64Value) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Uint64Value //////////////////////////////////////////////////////////////////////////////////////////////////

// Uint64Value is a wrapper for uint64 values that makes these values compatible with the Value constraint so they can
// be used in Intervals.
type Uint64Value uint64

// Compare return 0 if the other Uint64Value is identical, -1 if it is bigger and 1 if it is smaller.
func (u Uint64Value) Compare(other Uint64Value) int {
	return lo.Compare(u, other)
}

// String returns a human-readable version of the Uint64Value.
func (u Uint64Value) String() string {
	return strconv.FormatUint(uint64(u), 10)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Float64Value /////////////////////////////////////////////////////////////////////////////////////////////////

// Float64Value is a wrapper for float64 values that makes these values compatible with the Value constraint so they
// can be used in Intervals.
//
// NaN compares equal to every other Float64Value and should not be used as a bound.
type Float64Value float64

// Compare return 0 if the other Float64Value is identical, -1 if it is bigger and 1 if it is smaller.
func (f Float64Value) Compare(other Float64Value) int {
	return lo.Compare(f, other)
}

// String returns a human-readable version of the Float64Value.
func (f Float64Value) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region StringValue //////////////////////////////////////////////////////////////////////////////////////////////////

// StringValue is a wrapper for string values that makes these values compatible with the Value constraint so they can
// be used in Intervals. StringValues are ordered lexicographically (byte-wise).
type StringValue string

// Compare return 0 if the other StringValue is identical, -1 if it is bigger and 1 if it is smaller.
func (s StringValue) Compare(other StringValue) int {
	return lo.Compare(s, other)
}

// String returns the wrapped string.
func (s StringValue) String() string {
	return string(s)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region TimeValue ////////////////////////////////////////////////////////////////////////////////////////////////////

// TimeValue is a wrapper for time.Time values that makes these values compatible with the Value constraint so they can
// be used in Intervals (i.e. "all dates from January 1st until the end of March").
type TimeValue time.Time

// NewTimeValue wraps the given time.Time.
func NewTimeValue(t time.Time) TimeValue {
	return TimeValue(t)
}

// Time returns the wrapped time.Time.
func (t TimeValue) Time() time.Time {
	return time.Time(t)
}

// Compare return 0 if the other TimeValue is the same instant, -1 if it is later and 1 if it is earlier.
func (t TimeValue) Compare(other TimeValue) int {
	return time.Time(t).Compare(time.Time(other))
}

// String returns the RFC3339 representation of the TimeValue.
func (t TimeValue) String() string {
	return time.Time(t).Format(time.RFC3339Nano)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
