// Command obstack-demo exercises the obstack package against the classic
// use case it was built for: reading identifiers of unknown length from a
// stream and interning them into a symbol table, then unwinding the table
// back to a checkpoint.
package main

import (
	"bufio"
	"flag"
	"log/slog"
	"os"
	"strings"
	"unsafe"

	"github.com/pavanmanishd/obstack"
)

func main() {
	chunkSize := flag.Int("chunk-size", 4096, "preferred obstack chunk size in bytes")
	input := flag.String("input", "the quick brown fox jumps over the lazy dog", "whitespace-separated identifiers to intern")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	o := obstack.New(obstack.WithChunkSize(*chunkSize))
	defer o.Free(nil)

	logger.Info("arena created", "chunk_size", o.ChunkSize())

	checkpoint := o.Base()
	symbols := internAll(o, *input)

	logger.Info("interned symbols",
		"count", len(symbols),
		"metrics", o.Metrics())

	for _, sym := range symbols {
		logger.Info("symbol", "text", sym)
	}

	o.Free(checkpoint)
	logger.Info("unwound to checkpoint", "metrics", o.Metrics())
}

// internAll reads whitespace-separated words from src and grows each one
// into the arena byte by byte before finishing it — the symbol-table
// pattern the package docs describe, where the final length of each
// identifier isn't known until its last byte has been read.
func internAll(o *obstack.Obstack, src string) []string {
	scanner := bufio.NewScanner(strings.NewReader(src))
	scanner.Split(bufio.ScanWords)

	var out []string
	for scanner.Scan() {
		word := scanner.Bytes()
		for _, b := range word {
			o.Grow1(b)
		}
		mark := o.Finish()
		out = append(out, readString(mark, len(word)))
	}
	return out
}

// readString copies n bytes starting at addr into an independent Go
// string, safe to retain after the arena that produced addr is unwound.
func readString(addr unsafe.Pointer, n int) string {
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(addr), n))
}
