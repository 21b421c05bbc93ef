package interval_test

import (
	"fmt"

	"github.com/iotaledger/hive.go/interval"
)

func ExampleInterval_Intersect() {
	a := interval.Closed(interval.Limit(interval.IntValue(1)), interval.Limit(interval.IntValue(10)))
	b := interval.Over(interval.Limit(interval.IntValue(5)), false, interval.Limitless[interval.IntValue](), false)

	fmt.Println(a.Intersect(b))
	fmt.Println(a.Intersects(b))
	fmt.Println(a.Gap(interval.AndMore(interval.Limit(interval.IntValue(20)))))

	// Output:
	// (5, 10]
	// true
	// (10, 20)
}

func ExampleInterval_ComplementRelativeTo() {
	inner := interval.Closed(interval.Limit(interval.IntValue(3)), interval.Limit(interval.IntValue(5)))
	outer := interval.Closed(interval.Limit(interval.IntValue(1)), interval.Limit(interval.IntValue(7)))

	for _, remainder := range inner.ComplementRelativeTo(outer) {
		fmt.Println(remainder)
	}

	// Output:
	// [1, 3)
	// (5, 7]
}

func ExampleIntervalSeq_Extent() {
	seq := interval.NewIntervalSeq([]interval.Interval[interval.StringValue]{
		interval.Closed(interval.Limit[interval.StringValue]("m"), interval.Limit[interval.StringValue]("p")),
		interval.Closed(interval.Limit[interval.StringValue]("a"), interval.Limit[interval.StringValue]("c")),
	})

	fmt.Println(seq.Extent())
	fmt.Println(seq.Gap())

	// Output:
	// [a, p]
	// IntervalSeq[(c, m)]
}
