package obstack

import (
	"errors"
	"fmt"
	"os"
)

// ErrShortChunk is returned internally when a ChunkAllocator hands back a
// slice shorter than the size it was asked for.
var ErrShortChunk = errors.New("obstack: allocator returned a short chunk")

// ErrChunkSizeOverflow is reported to the FailureHandler when the next
// chunk's required size would overflow int arithmetic.
var ErrChunkSizeOverflow = errors.New("obstack: new chunk size overflows")

// FailureHandler is invoked when a chunk allocator fails to produce
// memory. A conforming handler must not return normally — it should log
// and terminate the process, or perform a non-local transfer of control
// (such as panicking past the call site). Obstack treats the handler as
// non-returning: if it does return, Obstack panics with the original error
// rather than continuing with a control block it never finished updating.
type FailureHandler func(err error)

// ExitCode is the process exit status used by DefaultFailureHandler. It is
// a package variable, not a per-Obstack setting, because it only matters
// for the single default policy; callers who need per-arena control should
// install their own handler with WithFailureHandler.
var ExitCode = 1

// DefaultFailureHandler prints "obstack: memory exhausted: <err>" to
// standard error and terminates the process with ExitCode.
func DefaultFailureHandler(err error) {
	fmt.Fprintf(os.Stderr, "obstack: memory exhausted: %v\n", err)
	os.Exit(ExitCode)
}
