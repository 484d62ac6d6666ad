package obstack

// Metrics is a point-in-time snapshot of an Obstack's memory usage.
type Metrics struct {
	BytesInUse  int     // sum of live bytes across every chunk
	Capacity    int     // total backing capacity across every chunk
	NumChunks   int     // number of live chunks
	ChunkSize   int     // preferred chunk size this arena was configured with
	Utilization float64 // BytesInUse / Capacity, or 0 if Capacity is 0
}

// BytesInUse returns the sum, over every live chunk, of the bytes that
// chunk holds: the dynamic write cursor for the current chunk, and the
// cursor position recorded when an older chunk was last superseded.
func (o *Obstack) BytesInUse() int {
	sum := 0
	for c := o.current; c != nil; c = c.prev {
		sum += int(c.usedBytes(o))
	}
	return sum
}

// NumChunks returns the number of chunks currently live in the arena.
func (o *Obstack) NumChunks() int {
	n := 0
	for c := o.current; c != nil; c = c.prev {
		n++
	}
	return n
}

// ChunkSize returns the preferred chunk size this arena was configured
// with (not necessarily the size of any one chunk — promotions allocate
// larger chunks on demand).
func (o *Obstack) ChunkSize() int {
	return o.chunkSize
}

// Utilization returns BytesInUse() / MemoryUsed(), or 0 if the arena holds
// no capacity.
func (o *Obstack) Utilization() float64 {
	capacity := o.MemoryUsed()
	if capacity == 0 {
		return 0
	}
	return float64(o.BytesInUse()) / float64(capacity)
}

// Metrics returns a snapshot of the arena's current memory usage.
func (o *Obstack) Metrics() Metrics {
	return Metrics{
		BytesInUse:  o.BytesInUse(),
		Capacity:    o.MemoryUsed(),
		NumChunks:   o.NumChunks(),
		ChunkSize:   o.ChunkSize(),
		Utilization: o.Utilization(),
	}
}
