package obstack

import "unsafe"

// DefaultChunkSize is used when WithChunkSize is omitted or given 0 — a
// page-sized region with a little headroom subtracted for the allocator's
// own bookkeeping, per the original default.
const DefaultChunkSize = 4096 - 64

// DefaultAlignment is used when WithAlignment is omitted or given 0: the
// widest alignment any of int, uintptr, or float64 requires on the current
// platform, so that any of those types can be grown without manual padding.
var DefaultAlignment = maxAlignment()

func maxAlignment() int {
	align := int(unsafe.Alignof(int(0)))
	if a := int(unsafe.Alignof(uintptr(0))); a > align {
		align = a
	}
	if a := int(unsafe.Alignof(float64(0))); a > align {
		align = a
	}
	return align
}

// Option configures an Obstack at construction time.
type Option func(*Obstack)

// WithChunkSize sets the preferred size for new chunks. A value of 0
// (the default when this option is omitted) selects DefaultChunkSize.
func WithChunkSize(size int) Option {
	return func(o *Obstack) {
		o.chunkSize = size
	}
}

// WithAlignment sets the required alignment for every finished object's
// address. It must be a power of two; 0 (the default when this option is
// omitted) selects DefaultAlignment.
func WithAlignment(alignment int) Option {
	return func(o *Obstack) {
		if alignment != 0 && alignment&(alignment-1) != 0 {
			panic("obstack: alignment must be a power of two")
		}
		o.alignment = alignment
	}
}

// WithAllocator sets the chunk allocator used to obtain and release chunk
// backing storage. The default is a ByteAllocator.
func WithAllocator(a ChunkAllocator) Option {
	return func(o *Obstack) {
		o.allocator = a
	}
}

// WithFailureHandler sets the policy invoked when the chunk allocator
// fails. The default is DefaultFailureHandler.
func WithFailureHandler(h FailureHandler) Option {
	return func(o *Obstack) {
		o.failureHandler = h
	}
}
