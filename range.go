package heapalloc

import "fmt"

var EmptyRange = Range{Start: 0, End: 0}

// Range is a half-open window [Start, End) of payload bytes within the managed
// region. Alloc hands out Ranges and Free takes them back.
type Range struct {
	Start uint64 // inclusive
	End   uint64 // exclusive
}

func (r Range) Size() uint64 {
	return r.End - r.Start
}

func (r Range) Overlaps(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}
