package heapalloc

// The free list is intrusive: a free chunk stores its linkage in the first two
// payload words. nextFree is the offset of the next free chunk in ascending
// size order. prevFree is the offset of the predecessor free chunk, nilChunk
// when the list head points at this chunk directly; keeping the predecessor
// explicit makes unlink O(1) with no traversal.

func (a *Allocator) nextFree(c uint64) uint64 {
	return a.word(c + 2*wordSize)
}

func (a *Allocator) prevFree(c uint64) uint64 {
	return a.word(c + 3*wordSize)
}

func (a *Allocator) setNextFree(c, n uint64) {
	a.putWord(c+2*wordSize, n)
}

func (a *Allocator) setPrevFree(c, p uint64) {
	a.putWord(c+3*wordSize, p)
}

// linkChunk inserts the free chunk at c into the free list, scanning from the
// head until the first chunk of equal or greater size. The list stays sorted
// ascending by chunk size at all times; ties land before the equal-sized run.
func (a *Allocator) linkChunk(c uint64) {
	size := a.chunkSize(c)
	prev := nilChunk
	next := a.freeHead
	for next != nilChunk && a.chunkSize(next) < size {
		prev, next = next, a.nextFree(next)
	}
	a.setPrevFree(c, prev)
	a.setNextFree(c, next)
	if prev == nilChunk {
		a.freeHead = c
	} else {
		a.setNextFree(prev, c)
	}
	if next != nilChunk {
		a.setPrevFree(next, c)
	}
}

// unlinkChunk removes the free chunk at c from the free list.
func (a *Allocator) unlinkChunk(c uint64) {
	prev, next := a.prevFree(c), a.nextFree(c)
	if prev == nilChunk {
		a.freeHead = next
	} else {
		a.setNextFree(prev, next)
	}
	if next != nilChunk {
		a.setPrevFree(next, prev)
	}
}
