// Package obstack implements a region-based incremental object allocator —
// a "stack of objects" arena.
//
// # Overview
//
// An Obstack serves code that builds many small, variable-length objects
// whose final size isn't known when construction starts — the classic
// example is reading an identifier of unknown length into a symbol table
// one byte at a time. A single Obstack supports three primitives:
//
//   - Growing a pending object by appending bytes, pointers, or ints in
//     amortised O(1).
//   - Finishing the pending object, which freezes its address until the
//     arena is unwound past it.
//   - Freeing to a mark, which unwinds the arena back to any previously
//     finished object's address and reclaims everything allocated after it.
//
// # Basic usage
//
//	o := obstack.New()
//	defer o.Free(nil) // release every chunk when done
//
//	o.Grow([]byte("hello"))
//	o.Grow1(' ')
//	o.Grow([]byte("world"))
//	greeting := o.Finish()
//
// # Marks and unwinding
//
// Finish returns the stable address of the object just completed. That
// address can later be passed to Free to discard the object and everything
// allocated after it:
//
//	mark := o.Finish()
//	// ... build more objects ...
//	o.Free(mark) // discards everything built since mark
//
// # Thread safety
//
// An *Obstack has no internal synchronization; concurrent use from more
// than one goroutine is undefined. For a single arena shared across
// goroutines, wrap it with Safe instead.
//
// # Allocation failure
//
// Obstack never returns a "can't allocate" error value to its callers. A
// chunk allocator that fails to produce memory instead invokes the arena's
// FailureHandler, which by default reports the error and terminates the
// process — see WithFailureHandler to install a different policy (for
// example, one that performs a non-local jump out of the caller).
package obstack
