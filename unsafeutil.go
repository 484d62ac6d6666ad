package obstack

import "unsafe"

// copyBytes copies n bytes from the address src to the address dst. Both
// addresses must lie within chunks kept alive by the caller for the
// duration of the call.
func copyBytes(dst, src uintptr, n int) {
	dstSlice := unsafe.Slice((*byte)(unsafe.Pointer(dst)), n)
	srcSlice := unsafe.Slice((*byte)(unsafe.Pointer(src)), n)
	copy(dstSlice, srcSlice)
}
