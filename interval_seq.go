package interval

import (
	"slices"
	"strings"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/runtime/options"
)

// IntervalSeq is an ordered collection of Intervals. Elements are kept in insertion order until the sequence is
// iterated, which sorts the backing slice in place according to the Ordered policy of the sequence.
//
// An IntervalSeq is not safe for concurrent use.
type IntervalSeq[T Value[T]] struct {
	intervals []Interval[T]
	ordered   Ordered
}

// EmptyIntervalSeq creates an IntervalSeq without elements.
func EmptyIntervalSeq[T Value[T]](opts ...options.Option[IntervalSeq[T]]) *IntervalSeq[T] {
	return NewIntervalSeq[T](nil, opts...)
}

// NewIntervalSeq creates an IntervalSeq holding a copy of the given Intervals. Unless configured otherwise, the
// sequence orders by upper limit and then by lower limit (both ascending) with empty Intervals first.
func NewIntervalSeq[T Value[T]](values []Interval[T], opts ...options.Option[IntervalSeq[T]]) *IntervalSeq[T] {
	return options.Apply(&IntervalSeq[T]{
		intervals: lo.CopySlice(values),
		ordered:   UpperLower(false, false),
	}, opts)
}

// WithOrdered is an option for the IntervalSeq that sets the policy used to sort its elements.
func WithOrdered[T Value[T]](ordered Ordered) options.Option[IntervalSeq[T]] {
	return func(seq *IntervalSeq[T]) {
		seq.ordered = ordered
	}
}

// Ordered returns the sort policy of the IntervalSeq.
func (s *IntervalSeq[T]) Ordered() Ordered {
	return s.ordered
}

// Append adds the Interval to the end of the IntervalSeq.
func (s *IntervalSeq[T]) Append(interval Interval[T]) {
	s.intervals = append(s.intervals, interval)
}

// IsEmpty returns true if the IntervalSeq has no elements.
func (s *IntervalSeq[T]) IsEmpty() bool {
	return len(s.intervals) == 0
}

// Len returns the number of elements.
func (s *IntervalSeq[T]) Len() int {
	return len(s.intervals)
}

// Get returns the element at the given index and a flag that indicates if the index exists.
func (s *IntervalSeq[T]) Get(index int) (interval Interval[T], exists bool) {
	if index < 0 || index >= len(s.intervals) {
		return interval, false
	}

	return s.intervals[index], true
}

// Iterator sorts the elements according to the Ordered policy of the IntervalSeq and returns an Iterator over a copy
// of them. Every call sorts again.
func (s *IntervalSeq[T]) Iterator() *Iterator[T] {
	s.sort()

	return NewIterator(lo.CopySlice(s.intervals))
}

// ForEach sorts the elements and calls the consumer for each of them until it returns false.
func (s *IntervalSeq[T]) ForEach(consumer func(interval Interval[T]) bool) {
	for it := s.Iterator(); it.HasNext(); {
		if !consumer(it.Next()) {
			return
		}
	}
}

// Intervals sorts the elements and returns a copy of them.
func (s *IntervalSeq[T]) Intervals() []Interval[T] {
	s.sort()

	return lo.CopySlice(s.intervals)
}

// Extent returns the smallest Interval that encloses all elements. It panics if the IntervalSeq is empty.
func (s *IntervalSeq[T]) Extent() Interval[T] {
	if len(s.intervals) == 0 {
		panic(ierrors.Wrapf(ErrEmptySeq, "failed to determine extent"))
	}

	first := s.intervals[0]
	if len(s.intervals) == 1 {
		return first
	}

	lower := slices.MinFunc(lo.Map(s.intervals, Interval[T].Lower), IntervalLimit[T].Compare)
	upper := slices.MaxFunc(lo.Map(s.intervals, Interval[T].Upper), IntervalLimit[T].Compare)

	return first.NewOfSameType(lower.value, lower.closed, upper.value, upper.closed)
}

// Gap returns the non-empty gaps between adjacent elements. Adjacency follows the current order of the backing slice,
// so the IntervalSeq needs to be iterated first if the gaps between the sorted elements are required.
func (s *IntervalSeq[T]) Gap() *IntervalSeq[T] {
	return s.pairwise(Interval[T].Gap)
}

// Intersections returns the non-empty intersections of adjacent elements. Adjacency follows the current order of the
// backing slice, like in Gap.
func (s *IntervalSeq[T]) Intersections() *IntervalSeq[T] {
	return s.pairwise(Interval[T].Intersect)
}

// String returns a human-readable version of the IntervalSeq in the current order of its elements.
func (s *IntervalSeq[T]) String() string {
	return "IntervalSeq[" + strings.Join(lo.Map(s.intervals, Interval[T].String), ", ") + "]"
}

func (s *IntervalSeq[T]) pairwise(operation func(left, right Interval[T]) Interval[T]) *IntervalSeq[T] {
	result := EmptyIntervalSeq[T](WithOrdered[T](s.ordered))
	for i := 1; i < len(s.intervals); i++ {
		if derived := operation(s.intervals[i-1], s.intervals[i]); !derived.IsEmpty() {
			result.Append(derived)
		}
	}

	return result
}

func (s *IntervalSeq[T]) sort() {
	slices.SortStableFunc(s.intervals, func(a, b Interval[T]) int {
		return CompareIntervals(s.ordered, a, b)
	})
}
