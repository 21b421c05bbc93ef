package interval

import (
	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrNotFound is returned when the concrete value of a Limitless LimitValue is requested.
	ErrNotFound = ierrors.New("limit value not found")

	// ErrInvalidInterval is returned (or carried by the panic of the factories) when the lower limit of an Interval
	// would be greater than its upper limit.
	ErrInvalidInterval = ierrors.New("lower limit must not be greater than upper limit")

	// ErrEmptySeq is carried by the panic of IntervalSeq.Extent when the sequence has no elements.
	ErrEmptySeq = ierrors.New("interval seq is empty")
)
