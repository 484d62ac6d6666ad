package obstack

import (
	"sync"
	"unsafe"
)

// Safe is a mutex-guarded wrapper around an *Obstack for callers who need
// one arena shared across goroutines. A single Obstack is not itself
// goroutine-safe (see package docs); Safe serializes the same sequential
// operations rather than changing their semantics.
//
// The *Fast grow methods and Reserve are deliberately not exposed here —
// they're unchecked building blocks meant to run back-to-back inside one
// critical section. Use Locked for that.
type Safe struct {
	mu sync.Mutex
	o  *Obstack
}

// NewSafe creates a Safe-wrapped Obstack with the given options.
func NewSafe(opts ...Option) *Safe {
	return &Safe{o: New(opts...)}
}

// Locked runs fn with the arena's mutex held, giving access to the
// underlying *Obstack for sequences of operations — such as MakeRoom
// followed by *Fast grows, or use of a Reservation — that must execute as
// one atomic unit.
func (s *Safe) Locked(fn func(*Obstack)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.o)
}

// Grow appends a copy of src to the pending object.
func (s *Safe) Grow(src []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.o.Grow(src)
}

// Grow0 appends a copy of src followed by a zero byte.
func (s *Safe) Grow0(src []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.o.Grow0(src)
}

// Grow1 appends a single byte.
func (s *Safe) Grow1(b byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.o.Grow1(b)
}

// GrowPtr appends a pointer-sized value.
func (s *Safe) GrowPtr(p unsafe.Pointer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.o.GrowPtr(p)
}

// GrowInt appends an int-sized value.
func (s *Safe) GrowInt(v int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.o.GrowInt(v)
}

// MakeRoom ensures Room() >= n.
func (s *Safe) MakeRoom(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.o.MakeRoom(n)
}

// Blank advances the write cursor by n uninitialised bytes.
func (s *Safe) Blank(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.o.Blank(n)
}

// Finish freezes the pending object and returns its stable address.
func (s *Safe) Finish() unsafe.Pointer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.o.Finish()
}

// Alloc reserves n uninitialised bytes as a new finished object.
func (s *Safe) Alloc(n int) unsafe.Pointer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.o.Alloc(n)
}

// Copy finishes a new object containing a copy of src.
func (s *Safe) Copy(src []byte) unsafe.Pointer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.o.Copy(src)
}

// Copy0 is Copy with a trailing zero byte appended.
func (s *Safe) Copy0(src []byte) unsafe.Pointer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.o.Copy0(src)
}

// Free releases every finished object at or after mark.
func (s *Safe) Free(mark unsafe.Pointer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.o.Free(mark)
}

// Base returns the provisional address of the pending object.
func (s *Safe) Base() unsafe.Pointer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.o.Base()
}

// Size returns the number of bytes grown into the pending object so far.
func (s *Safe) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.o.Size()
}

// Room returns how many bytes can still be grown before a promotion.
func (s *Safe) Room() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.o.Room()
}

// Empty reports whether the arena holds no finished objects.
func (s *Safe) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.o.Empty()
}

// MemoryUsed returns the total backing capacity across every live chunk.
func (s *Safe) MemoryUsed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.o.MemoryUsed()
}

// Metrics returns a snapshot of the arena's current memory usage.
func (s *Safe) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.o.Metrics()
}

// SetAllocator swaps the chunk allocator used for future chunk requests
// and releases.
func (s *Safe) SetAllocator(a ChunkAllocator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.o.SetAllocator(a)
}
