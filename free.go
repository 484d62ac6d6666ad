package obstack

import "unsafe"

// Free releases every finished object at or after mark and resets the
// pending object to start exactly at mark. mark must be an address
// previously returned by Finish (or nil).
//
// If mark is nil, every chunk is released and the arena is left in a
// destroyed state: the observers (Base, Size, Room, Empty, MemoryUsed,
// Metrics) and Free(nil) may still be called, while growing, finishing or
// freeing to a non-nil mark panics.
//
// Passing an address that lies in no live chunk of this arena is an API
// violation and panics. An address inside a live chunk is accepted as a
// mark without checking that Finish returned it.
func (o *Obstack) Free(mark unsafe.Pointer) {
	m := uintptr(mark)

	if m == 0 {
		o.freeAll()
		return
	}

	o.checkLive()

	c := o.current
	for c != nil && !c.contains(m) {
		next := c.prev
		o.allocator.FreeChunk(c.raw)
		o.maybeEmptyObject = true
		c = next
	}
	if c == nil {
		panic("obstack: Free called with an address not in any live chunk")
	}

	o.current = c
	o.objectBase = m
	o.nextFree = m
	o.chunkLimit = c.end
}

func (o *Obstack) freeAll() {
	for c := o.current; c != nil; {
		next := c.prev
		o.allocator.FreeChunk(c.raw)
		c = next
	}
	o.current = nil
	o.objectBase = 0
	o.nextFree = 0
	o.chunkLimit = 0
	o.maybeEmptyObject = false
}
