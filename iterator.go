package interval

// Iterator walks forward through a snapshot of the elements of an IntervalSeq.
type Iterator[T Value[T]] struct {
	intervals []Interval[T]
	index     int
}

// NewIterator is the constructor of the Iterator that takes the elements to iterate over.
func NewIterator[T Value[T]](intervals []Interval[T]) *Iterator[T] {
	return &Iterator[T]{
		intervals: intervals,
	}
}

// HasNext returns true if there is another element that can be requested via the Next method.
func (i *Iterator[T]) HasNext() bool {
	return i.index < len(i.intervals)
}

// Next returns the next element and advances the internal pointer. The method panics if there is no next element
// (always use HasNext to check if another element can be requested).
func (i *Iterator[T]) Next() Interval[T] {
	if !i.HasNext() {
		panic("no next element found in iterator")
	}

	i.index++

	return i.intervals[i.index-1]
}

// Reset moves the Iterator back to the first element.
func (i *Iterator[T]) Reset() {
	i.index = 0
}
