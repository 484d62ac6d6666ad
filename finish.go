package obstack

import "unsafe"

// Finish freezes the pending object and returns its stable starting
// address. A new, empty pending object begins immediately after it. The
// returned address remains valid until a Free call unwinds past it.
func (o *Obstack) Finish() unsafe.Pointer {
	o.checkLive()

	if o.nextFree == o.objectBase {
		o.maybeEmptyObject = true
	}

	newBase := alignUp(o.nextFree, o.alignMask)
	if newBase > o.chunkLimit {
		// Alignment padding would spill past the chunk; clamp here and let
		// the next Grow trigger a promotion naturally.
		o.nextFree = o.chunkLimit
	} else {
		o.nextFree = newBase
	}

	addr := o.objectBase
	o.objectBase = o.nextFree
	return unsafe.Pointer(addr)
}

// Alloc reserves n uninitialised bytes as a new finished object in one
// step: Blank(n) followed by Finish().
func (o *Obstack) Alloc(n int) unsafe.Pointer {
	o.Blank(n)
	return o.Finish()
}

// Copy finishes a new object containing a copy of src: Grow(src) followed
// by Finish().
func (o *Obstack) Copy(src []byte) unsafe.Pointer {
	o.Grow(src)
	return o.Finish()
}

// Copy0 is Copy with a trailing zero byte appended, matching Grow0.
func (o *Obstack) Copy0(src []byte) unsafe.Pointer {
	o.Grow0(src)
	return o.Finish()
}
