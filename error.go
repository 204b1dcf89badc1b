package heapalloc

var (
	ErrNoCapacity   = &AllocError{"no free chunk large enough for allocation"}
	ErrNotAllocated = &AllocError{"range is not an allocated block (double free?)"}
)

type AllocError struct {
	Msg string
}

func (e *AllocError) Error() string {
	return e.Msg
}

func (e *AllocError) Is(target error) bool {
	if targetErr, ok := target.(*AllocError); ok {
		return e.Msg == targetErr.Msg
	}
	return false
}
