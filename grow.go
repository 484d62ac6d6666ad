package obstack

import "unsafe"

// MakeRoom ensures Room() >= n, promoting the pending object into a new,
// larger chunk first if necessary. It does not advance the write cursor.
func (o *Obstack) MakeRoom(n int) {
	o.checkLive()
	if o.Room() < n {
		o.newChunk(n)
	}
}

// Blank advances the write cursor by n bytes, leaving their contents
// uninitialised.
func (o *Obstack) Blank(n int) {
	o.MakeRoom(n)
	o.BlankFast(n)
}

// BlankFast is Blank without the room check. The caller must have already
// ensured Room() >= n, typically via MakeRoom or a prior Room query.
func (o *Obstack) BlankFast(n int) {
	o.nextFree += uintptr(n)
}

// Grow appends a copy of src to the pending object.
func (o *Obstack) Grow(src []byte) {
	o.MakeRoom(len(src))
	o.growFast(src)
}

// Grow0 appends a copy of src to the pending object, followed by a single
// zero byte (for building NUL-terminated byte runs).
func (o *Obstack) Grow0(src []byte) {
	o.MakeRoom(len(src) + 1)
	o.growFast(src)
	o.Grow1Fast(0)
}

// growFast copies src to the write cursor without a room check.
func (o *Obstack) growFast(src []byte) {
	if len(src) == 0 {
		return
	}
	dst := unsafe.Slice((*byte)(unsafe.Pointer(o.nextFree)), len(src))
	copy(dst, src)
	o.nextFree += uintptr(len(src))
}

// Grow1 appends a single byte to the pending object.
func (o *Obstack) Grow1(b byte) {
	o.MakeRoom(1)
	o.Grow1Fast(b)
}

// Grow1Fast is Grow1 without the room check.
func (o *Obstack) Grow1Fast(b byte) {
	*(*byte)(unsafe.Pointer(o.nextFree)) = b
	o.nextFree++
}

// GrowPtr appends a pointer-sized value to the pending object. The caller
// is responsible for the accumulated pending bytes already being aligned
// for a pointer — Obstack never inserts implicit mid-object padding.
//
// The pointer is written into the chunk's backing []byte, which the
// garbage collector does not scan: unlike chunk.prev, which is kept as a
// real Go pointer field precisely so the collector can see it, a pointer
// grown here is invisible to it. The caller must keep the referent alive
// independently for as long as the arena might hold this object — by
// retaining another reference to it, or with runtime.KeepAlive — or it
// may be collected while this copy still looks live.
func (o *Obstack) GrowPtr(p unsafe.Pointer) {
	o.MakeRoom(int(unsafe.Sizeof(p)))
	o.GrowPtrFast(p)
}

// GrowPtrFast is GrowPtr without the room check; the same GC-visibility
// caveat applies.
func (o *Obstack) GrowPtrFast(p unsafe.Pointer) {
	*(*unsafe.Pointer)(unsafe.Pointer(o.nextFree)) = p
	o.nextFree += unsafe.Sizeof(p)
}

// GrowInt appends an int-sized value to the pending object. Same alignment
// caveat as GrowPtr applies.
func (o *Obstack) GrowInt(v int) {
	o.MakeRoom(int(unsafe.Sizeof(v)))
	o.GrowIntFast(v)
}

// GrowIntFast is GrowInt without the room check.
func (o *Obstack) GrowIntFast(v int) {
	*(*int)(unsafe.Pointer(o.nextFree)) = v
	o.nextFree += unsafe.Sizeof(v)
}
