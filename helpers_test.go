package obstack

import "unsafe"

// readBytes copies n bytes starting at addr into a fresh slice, for test
// assertions. addr must point within a chunk kept alive by the caller.
func readBytes(addr unsafe.Pointer, n int) []byte {
	src := unsafe.Slice((*byte)(addr), n)
	out := make([]byte, n)
	copy(out, src)
	return out
}

func uintptrToPointer(a uintptr) unsafe.Pointer {
	return unsafe.Pointer(a)
}
