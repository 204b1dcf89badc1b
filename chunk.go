package heapalloc

import "encoding/binary"

// Every chunk, free or in use, is prefixed by two 8-byte size words:
//
//	word 0: size of the previous chunk, low bit set when that chunk is in use
//	word 1: size of this chunk, low bit set when this chunk is in use
//
// Sizes count header plus payload and are always multiples of maxAlign, which
// is what frees the low bit for the used flag. While a chunk is free, two more
// words overlay the start of its payload carrying the free-list linkage.
const (
	wordSize   = 8
	headerSize = 2 * wordSize // the two size words; the payload starts after them

	// maxAlign is the alignment every chunk offset and size is rounded to.
	// It must be a power of two and no smaller than the alignment of any Go
	// scalar type.
	maxAlign = 16

	// minPayload is the smallest payload a chunk can carry: the two
	// free-list link words must fit in it while the chunk is free.
	minPayload = 2 * wordSize

	// minChunkSize is the smallest legal chunk and the split threshold.
	minChunkSize = headerSize + minPayload

	usedFlag = 1
)

// nilChunk terminates the free list. In a chunk's prevFree word it also
// marks "the list head points at me".
const nilChunk = ^uint64(0)

func (a *Allocator) word(off uint64) uint64 {
	return binary.LittleEndian.Uint64(a.mem[off:])
}

func (a *Allocator) putWord(off, v uint64) {
	binary.LittleEndian.PutUint64(a.mem[off:], v)
}

// chunkSize returns the true byte size of the chunk at c, used flag masked off.
func (a *Allocator) chunkSize(c uint64) uint64 {
	return a.word(c+wordSize) &^ usedFlag
}

func (a *Allocator) prevChunkSize(c uint64) uint64 {
	return a.word(c) &^ usedFlag
}

func (a *Allocator) chunkUsed(c uint64) bool {
	return a.word(c+wordSize)&usedFlag != 0
}

// setSizeUsed marks the chunk at c in use at the given size and updates the
// mirrored prevSize word of the following chunk in the same step. Every size
// or state change must go through setSizeUsed or setSizeFree; a lone write to
// one tag breaks neighbor adjacency queries.
func (a *Allocator) setSizeUsed(c, size uint64) {
	a.putWord(c+wordSize, size|usedFlag)
	a.putWord(c+size, size|usedFlag)
}

// setSizeFree is setSizeUsed without the used flag.
func (a *Allocator) setSizeFree(c, size uint64) {
	a.putWord(c+wordSize, size)
	a.putWord(c+size, size)
}

// nextChunk returns the offset of the chunk immediately following c. Chunks
// tile the interior with no gaps, so this is an offset add.
func (a *Allocator) nextChunk(c uint64) uint64 {
	return c + a.chunkSize(c)
}

// nextIfFree returns the following chunk when its used flag is clear. The
// sentinel tag at the region end keeps the read in bounds.
func (a *Allocator) nextIfFree(c uint64) (uint64, bool) {
	n := a.nextChunk(c)
	if a.chunkUsed(n) {
		return 0, false
	}
	return n, true
}

// prevIfFree returns the preceding chunk when the mirrored tag says it is
// free. The sentinel tag ahead of the first chunk stops the walk at the
// region start.
func (a *Allocator) prevIfFree(c uint64) (uint64, bool) {
	if a.word(c)&usedFlag != 0 {
		return 0, false
	}
	return c - a.prevChunkSize(c), true
}
