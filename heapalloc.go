// Package heapalloc implements a boundary-tag heap allocator over a single
// caller-supplied byte region. All bookkeeping lives inline in the region:
// every block is prefixed by a chunk header that mirrors its size and state
// into the following chunk's header, and free chunks are threaded into an
// intrusive free list sorted ascending by size. Allocation is first-fit over
// the sorted list, which behaves as an approximate best-fit; oversized chunks
// are split and freed chunks are coalesced with free neighbors in both
// directions.
//
// Addressing is offset based: allocations are identified by Range values
// holding byte offsets into the region, and all header words are read and
// written through bounds-checked slice accesses.
//
// An Allocator is not goroutine-safe. Callers sharing one across goroutines
// must serialize every call themselves.
package heapalloc

// Allocator carves a caller-supplied byte region into chunks. The zero value
// is not usable; construct with NewAllocator. The region must outlive the
// Allocator, and the caller must not write to it outside of ranges handed out
// by Alloc.
type Allocator struct {
	mem      []byte
	base     uint64 // offset of the first chunk header; base == limit when degenerate
	limit    uint64 // offset of the end sentinel tag
	freeHead uint64 // smallest free chunk, nilChunk when none
}

// NewAllocator initializes buf as one free chunk flanked by in-use sentinel
// tags, so coalescing can never cross the region bounds. A buffer too small to
// hold even one minimum chunk after alignment yields a valid allocator on
// which every Alloc reports ErrNoCapacity.
func NewAllocator(buf []byte) *Allocator {
	a := &Allocator{mem: buf, freeHead: nilChunk}

	if uint64(len(buf)) < 2*headerSize+minChunkSize {
		return a
	}
	begin := uint64(headerSize+maxAlign-1) &^ uint64(maxAlign-1) // first payload offset
	end := (uint64(len(buf)) - headerSize) &^ uint64(maxAlign-1)
	if end <= begin || end-begin < minChunkSize {
		return a
	}

	c := begin - headerSize
	a.base = c
	a.limit = c + (end - begin)
	a.setSizeFree(c, end-begin)
	a.putWord(c, usedFlag)                // sentinel: nothing precedes the first chunk
	a.putWord(a.limit+wordSize, usedFlag) // sentinel: nothing follows the last chunk
	a.linkChunk(c)
	return a
}

// Alloc obtains a block of at least numBytes usable bytes. The returned Range
// spans exactly the requested size; the chunk backing it may be somewhat
// larger. On exhaustion the error is ErrNoCapacity and the region is left
// unchanged.
func (a *Allocator) Alloc(numBytes uint64) (Range, error) {
	if numBytes > uint64(len(a.mem)) {
		return EmptyRange, ErrNoCapacity
	}
	need := numBytes
	if need < minPayload {
		need = minPayload
	}
	// Chunk size actually required: payload plus header, rounded up to the
	// chunk alignment.
	need = (need + headerSize + maxAlign - 1) &^ uint64(maxAlign-1)

	for c := a.freeHead; c != nilChunk; c = a.nextFree(c) {
		size := a.chunkSize(c)
		if size < need {
			continue
		}
		a.unlinkChunk(c)
		if rem := size - need; rem >= minChunkSize {
			a.setSizeUsed(c, need)
			n := a.nextChunk(c)
			a.setSizeFree(n, rem)
			a.linkChunk(n)
		} else {
			// Too little left over to form a chunk. The slack stays
			// attached to this block and is reclaimed when it is freed.
			a.setSizeUsed(c, size)
		}
		start := c + headerSize
		return Range{Start: start, End: start + numBytes}, nil
	}
	return EmptyRange, ErrNoCapacity
}

// Free returns a block obtained from Alloc on this allocator. The chunk is
// merged with whichever neighbors are free, the lowest address surviving as
// the merged chunk's header, and reinserted into the free list.
//
// Validation is best-effort: a range that does not name an allocated block is
// rejected with ErrNotAllocated, which catches double frees and foreign
// offsets but not every corrupt input.
func (a *Allocator) Free(r Range) error {
	if r.Start < a.base+headerSize || r.Start >= a.limit || r.Start%maxAlign != 0 {
		return ErrNotAllocated
	}
	c := r.Start - headerSize
	if !a.chunkUsed(c) {
		return ErrNotAllocated
	}

	size := a.chunkSize(c)
	if n, ok := a.nextIfFree(c); ok {
		a.unlinkChunk(n)
		size += a.chunkSize(n)
	}
	if p, ok := a.prevIfFree(c); ok {
		a.unlinkChunk(p)
		size += a.chunkSize(p)
		c = p
	}
	a.setSizeFree(c, size)
	a.linkChunk(c)
	return nil
}

// Bytes returns the payload window of an allocation for the caller to read
// and write through. The returned slice aliases the managed region.
func (a *Allocator) Bytes(r Range) []byte {
	return a.mem[r.Start:r.End]
}
