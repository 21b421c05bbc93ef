package intervalmap

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/trees/redblacktree"
	"go.uber.org/zap"

	"github.com/iotaledger/hive.go/interval"
	"github.com/iotaledger/hive.go/runtime/options"
	"github.com/iotaledger/hive.go/runtime/syncutils"
)

// region IntervalMap //////////////////////////////////////////////////////////////////////////////////////////////////

// IntervalMap is a data structure that maps non-overlapping Intervals to values. Storing an Interval overwrites the
// overlapping parts of the existing entries, which keep their values for the parts that are not covered.
type IntervalMap[T interval.Value[T], V any] struct {
	tree *redblacktree.Tree
	log  *zap.Logger

	syncutils.RWMutex
}

// New creates a new, empty IntervalMap.
func New[T interval.Value[T], V any](opts ...options.Option[IntervalMap[T, V]]) *IntervalMap[T, V] {
	return options.Apply(&IntervalMap[T, V]{
		tree: redblacktree.NewWith(func(a interface{}, b interface{}) int {
			return a.(interval.IntervalLimit[T]).Compare(b.(interval.IntervalLimit[T]))
		}),
		log: zap.NewNop(),
	}, opts)
}

// WithLogger sets the logger that receives the debug output of the IntervalMap (nil keeps the no-op logger).
func WithLogger[T interval.Value[T], V any](logger *zap.Logger) options.Option[IntervalMap[T, V]] {
	return func(m *IntervalMap[T, V]) {
		if logger == nil {
			return
		}

		m.log = logger
	}
}

// Set maps all values of the given Interval to the given value. Empty Intervals are ignored.
func (m *IntervalMap[T, V]) Set(iv interval.Interval[T], value V) {
	if iv.IsEmpty() {
		return
	}

	m.Lock()
	defer m.Unlock()

	m.cut(iv)
	m.tree.Put(iv.Lower(), &Entry[T, V]{interval: iv, value: value})

	m.log.Debug("interval set", zap.Stringer("interval", iv), zap.Int("size", m.tree.Size()))
}

// Delete removes the mapping for all values of the given Interval.
func (m *IntervalMap[T, V]) Delete(iv interval.Interval[T]) {
	if iv.IsEmpty() {
		return
	}

	m.Lock()
	defer m.Unlock()

	m.cut(iv)

	m.log.Debug("interval deleted", zap.Stringer("interval", iv), zap.Int("size", m.tree.Size()))
}

// Get returns the value that the given value is mapped to and a flag that indicates if a mapping exists.
func (m *IntervalMap[T, V]) Get(value T) (mappedValue V, exists bool) {
	entry, exists := m.GetEntry(value)
	if !exists {
		return mappedValue, false
	}

	return entry.value, true
}

// GetEntry returns the Entry whose Interval includes the given value and a flag that indicates if it exists.
func (m *IntervalMap[T, V]) GetEntry(value T) (entry *Entry[T, V], exists bool) {
	m.RLock()
	defer m.RUnlock()

	node, found := m.tree.Floor(interval.NewLowerLimit(true, interval.Limit(value)))
	if !found {
		return nil, false
	}

	if entry = node.Value.(*Entry[T, V]); !entry.interval.Includes(value) {
		return nil, false
	}

	return entry, true
}

// ForEach iterates through the entries in ascending order of their lower limits until the consumer returns false.
func (m *IntervalMap[T, V]) ForEach(consumer func(iv interval.Interval[T], value V) bool) {
	for _, entry := range m.entries() {
		if !consumer(entry.interval, entry.value) {
			return
		}
	}
}

// Intervals returns the mapped Intervals as an IntervalSeq that is ordered by lower limit.
func (m *IntervalMap[T, V]) Intervals() *interval.IntervalSeq[T] {
	seq := interval.EmptyIntervalSeq[T](interval.WithOrdered[T](interval.LowerUpper(false, false)))
	for _, entry := range m.entries() {
		seq.Append(entry.interval)
	}

	return seq
}

// Span returns the smallest Interval that encloses all mapped Intervals and a flag that indicates if the IntervalMap
// holds any entries.
func (m *IntervalMap[T, V]) Span() (span interval.Interval[T], exists bool) {
	if seq := m.Intervals(); !seq.IsEmpty() {
		return seq.Extent(), true
	}

	return span, false
}

// Gaps returns the unmapped Intervals between the first and the last entry.
func (m *IntervalMap[T, V]) Gaps() *interval.IntervalSeq[T] {
	return m.Intervals().Gap()
}

// Size returns the amount of entries.
func (m *IntervalMap[T, V]) Size() int {
	m.RLock()
	defer m.RUnlock()

	return m.tree.Size()
}

// IsEmpty returns true if the IntervalMap has no entries.
func (m *IntervalMap[T, V]) IsEmpty() bool {
	return m.Size() == 0
}

// Clear removes all entries.
func (m *IntervalMap[T, V]) Clear() {
	m.Lock()
	defer m.Unlock()

	m.tree.Clear()
}

// String returns a human-readable version of the IntervalMap.
func (m *IntervalMap[T, V]) String() string {
	entries := m.entries()

	rendered := make([]string, 0, len(entries))
	for _, entry := range entries {
		rendered = append(rendered, entry.String())
	}

	return "IntervalMap{" + strings.Join(rendered, ", ") + "}"
}

// cut removes the parts of the existing entries that are covered by the given Interval.
func (m *IntervalMap[T, V]) cut(iv interval.Interval[T]) {
	overlapping := make([]*Entry[T, V], 0)
	for it := m.tree.Iterator(); it.Next(); {
		existing := it.Value().(*Entry[T, V])
		if existing.interval.Lower().Compare(iv.Upper()) > 0 {
			break
		}

		if existing.interval.Intersects(iv) {
			overlapping = append(overlapping, existing)
		}
	}

	for _, existing := range overlapping {
		m.tree.Remove(existing.interval.Lower())

		for _, remainder := range iv.ComplementRelativeTo(existing.interval) {
			if remainder.IsEmpty() {
				continue
			}

			m.tree.Put(remainder.Lower(), &Entry[T, V]{interval: remainder, value: existing.value})
			m.log.Debug("interval split", zap.Stringer("interval", existing.interval), zap.Stringer("remainder", remainder))
		}
	}
}

// entries returns a snapshot of the entries in ascending order.
func (m *IntervalMap[T, V]) entries() []*Entry[T, V] {
	m.RLock()
	defer m.RUnlock()

	entries := make([]*Entry[T, V], 0, m.tree.Size())
	for it := m.tree.Iterator(); it.Next(); {
		entries = append(entries, it.Value().(*Entry[T, V]))
	}

	return entries
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Entry ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Entry is a single mapping of an IntervalMap.
type Entry[T interval.Value[T], V any] struct {
	interval interval.Interval[T]
	value    V
}

// Interval returns the Interval of the Entry.
func (e *Entry[T, V]) Interval() interval.Interval[T] {
	return e.interval
}

// Value returns the value of the Entry.
func (e *Entry[T, V]) Value() V {
	return e.value
}

// String returns a human-readable version of the Entry.
func (e *Entry[T, V]) String() string {
	return fmt.Sprintf("%s: %v", e.interval, e.value)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
