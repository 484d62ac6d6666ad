package obstack

import "sync"

// ChunkAllocator supplies and reclaims the backing byte slices an Obstack
// uses for its chunks. It realizes the allocator contract: AllocChunk must
// return a slice of at least size bytes, or a non-nil error if it can't;
// FreeChunk must accept any slice previously returned by AllocChunk on the
// same ChunkAllocator.
//
// The original design distinguishes a plain (alloc, free) pair from an
// (alloc, free, ctx) triple threading a caller-supplied context through
// both calls. In Go that distinction collapses into one interface: a
// context, if needed, is simply a field on the concrete implementation.
type ChunkAllocator interface {
	AllocChunk(size int) ([]byte, error)
	FreeChunk(b []byte)
}

// ByteAllocator is the default ChunkAllocator. It hands out plain
// GC-owned byte slices and does nothing on release — the garbage
// collector reclaims them once the arena drops its last reference.
type ByteAllocator struct{}

// NewByteAllocator returns a ByteAllocator.
func NewByteAllocator() *ByteAllocator { return &ByteAllocator{} }

// AllocChunk implements ChunkAllocator.
func (*ByteAllocator) AllocChunk(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// FreeChunk implements ChunkAllocator. It is a no-op; the slice becomes
// eligible for garbage collection once nothing references it.
func (*ByteAllocator) FreeChunk(b []byte) {}

// PooledAllocator is a ChunkAllocator backed by a sync.Pool of same-sized
// buffers. It cuts allocator churn for arenas that are repeatedly unwound
// with Free and regrown at one steady-state chunk size — requests up to
// that size are served from the pool, as a prefix of a pooled buffer; a
// larger request falls back to a plain allocation, since sync.Pool is only
// useful when the buffers it holds are fungible.
type PooledAllocator struct {
	size int
	pool sync.Pool
}

// NewPooledAllocator returns a PooledAllocator that pools buffers of
// exactly size bytes.
func NewPooledAllocator(size int) *PooledAllocator {
	p := &PooledAllocator{size: size}
	p.pool.New = func() any {
		return make([]byte, p.size)
	}
	return p
}

// AllocChunk implements ChunkAllocator.
func (p *PooledAllocator) AllocChunk(size int) ([]byte, error) {
	if size > p.size {
		return make([]byte, size), nil
	}
	buf := p.pool.Get().([]byte)
	if cap(buf) < size {
		buf = make([]byte, p.size)
	}
	return buf[:size], nil
}

// FreeChunk implements ChunkAllocator. Only buffers matching the pool's
// size class are retained; others are left for the garbage collector.
func (p *PooledAllocator) FreeChunk(b []byte) {
	if cap(b) == p.size {
		p.pool.Put(b[:cap(b)])
	}
}
