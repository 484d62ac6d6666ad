package obstack

import "unsafe"

// chunkHeader mirrors the {end, prev} header the original obstack design
// keeps at the low address of every chunk. Nothing is actually stored here —
// prev is a real Go pointer field on chunk, kept outside the byte buffer so
// the garbage collector can see it — but reserving its size before the
// payload guarantees a chunk's aligned payload start is always strictly
// greater than the chunk's own base address, which the Free containment
// test (see free.go) depends on.
type chunkHeader struct {
	end  uintptr
	prev unsafe.Pointer
}

var chunkHeaderSize = unsafe.Sizeof(chunkHeader{})

// chunk is one fixed-but-variable-sized backing region. Chunks form a
// singly-linked, newest-to-oldest list via prev.
type chunk struct {
	raw  []byte
	prev *chunk

	start uintptr // address of raw[0]
	end   uintptr // one past the last usable byte
	used  uintptr // snapshot of how much of this chunk was in use when it
	// stopped being current; meaningless while it is current (see
	// chunk.usedBytes).
}

// allocateChunk requests a chunk with at least payload usable bytes after
// the reserved header and alignment padding are accounted for — the
// caller-facing "chunk size" is a payload target, not the raw byte count
// handed to the allocator.
func allocateChunk(alloc ChunkAllocator, payload int, alignMask uintptr, prev *chunk) (*chunk, error) {
	requested := payload + int(chunkHeaderSize) + int(alignMask)
	buf, err := alloc.AllocChunk(requested)
	if err != nil {
		return nil, err
	}
	if len(buf) < requested {
		return nil, ErrShortChunk
	}
	c := &chunk{raw: buf, prev: prev}
	c.start = uintptr(unsafe.Pointer(&buf[0]))
	c.end = c.start + uintptr(len(buf))
	return c, nil
}

// usedBytes reports how many bytes of c are accounted for as "in use",
// given that o.current is the arena's current chunk.
func (c *chunk) usedBytes(o *Obstack) uintptr {
	if c == o.current {
		return o.nextFree - c.start
	}
	return c.used
}

// payloadStart returns the chunk's aligned payload start: the first address
// at or after the reserved header where a pending object may begin.
func (c *chunk) payloadStart(alignMask uintptr) uintptr {
	return alignUp(c.start+chunkHeaderSize, alignMask)
}

// contains reports whether mark is a live address within c — strictly
// greater than c's own base address (so the chunk header itself is never a
// valid mark) and no greater than c.end. This is the exact edge-case test
// spec'd for Free: it allows mark to equal a chunk's aligned payload start,
// which happens when a zero-length object was finished there.
func (c *chunk) contains(mark uintptr) bool {
	return mark > c.start && mark <= c.end
}

// alignUp rounds x up to the next multiple of mask+1, where mask is the
// alignment mask (alignment - 1, a power of two minus one).
func alignUp(x, mask uintptr) uintptr {
	return (x + mask) &^ mask
}

// Obstack is the arena control block. The zero value is not usable; create
// one with New.
type Obstack struct {
	chunkSize      int
	alignment      int // 0 until New resolves it to either the requested value or DefaultAlignment
	alignMask      uintptr
	allocator      ChunkAllocator
	failureHandler FailureHandler

	current    *chunk
	objectBase uintptr // start of the pending object
	nextFree   uintptr // next byte to write
	chunkLimit uintptr // cached current.end

	maybeEmptyObject bool
}

// New creates an Obstack. With no options it uses DefaultChunkSize,
// DefaultAlignment, a ByteAllocator, and DefaultFailureHandler.
func New(opts ...Option) *Obstack {
	o := &Obstack{
		allocator:      NewByteAllocator(),
		failureHandler: DefaultFailureHandler,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.chunkSize <= 0 {
		o.chunkSize = DefaultChunkSize
	}
	if o.alignment <= 0 {
		o.alignment = DefaultAlignment
	}
	o.alignMask = uintptr(o.alignment - 1)

	c, err := allocateChunk(o.allocator, o.chunkSize, o.alignMask, nil)
	if err != nil {
		o.fail(err)
		return o
	}
	o.current = c
	o.objectBase = c.payloadStart(o.alignMask)
	o.nextFree = o.objectBase
	o.chunkLimit = c.end
	o.maybeEmptyObject = false
	return o
}

// fail invokes the installed FailureHandler. A conforming handler never
// returns (it terminates the process or performs a non-local jump); the
// panic below is a safety net in case a custom handler returns anyway, so
// Obstack never silently continues with a corrupt control block.
func (o *Obstack) fail(err error) {
	o.failureHandler(err)
	panic(err)
}

// checkLive panics if the arena has been destroyed by Free(nil).
func (o *Obstack) checkLive() {
	if o.current == nil {
		panic("obstack: use of arena after Free(nil)")
	}
}

// Base returns the provisional address of the pending object. The address
// may still change if further growth forces a chunk switch — it is only
// stable once returned by Finish.
func (o *Obstack) Base() unsafe.Pointer {
	return unsafe.Pointer(o.objectBase)
}

// Size returns the number of bytes grown into the pending object so far.
func (o *Obstack) Size() int {
	return int(o.nextFree - o.objectBase)
}

// Room returns how many bytes can still be grown into the pending object
// before the current chunk is exhausted and a promotion is triggered.
func (o *Obstack) Room() int {
	if o.current == nil {
		return 0
	}
	return int(o.chunkLimit - o.nextFree)
}

// Empty reports whether the arena holds no finished objects and the
// pending object is still empty at the very start of its one and only
// chunk.
func (o *Obstack) Empty() bool {
	if o.current == nil {
		return true
	}
	return o.current.prev == nil && o.nextFree == o.current.payloadStart(o.alignMask)
}

// MemoryUsed returns the total backing capacity, in bytes, of every live
// chunk in the arena.
func (o *Obstack) MemoryUsed() int {
	sum := 0
	for c := o.current; c != nil; c = c.prev {
		sum += len(c.raw)
	}
	return sum
}

// SetAllocator swaps the chunk allocator used for both future chunk
// requests and future chunk releases — including releases of chunks that
// were originally obtained from the allocator being replaced. This mirrors
// the original design, where chunk_alloc/chunk_free are plain function
// pointers on the control block rather than being bound per chunk.
func (o *Obstack) SetAllocator(a ChunkAllocator) {
	o.allocator = a
}
