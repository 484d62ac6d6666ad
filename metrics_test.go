package obstack

import (
	"bytes"
	"testing"
)

func TestMetricsBasic(t *testing.T) {
	o := New(WithChunkSize(64), WithAlignment(8))
	defer o.Free(nil)

	o.Copy([]byte("hello"))
	m := o.Metrics()

	if m.NumChunks != 1 {
		t.Errorf("NumChunks = %d, want 1", m.NumChunks)
	}
	if m.Capacity < 64 {
		t.Errorf("Capacity = %d, want >= 64", m.Capacity)
	}
	if m.BytesInUse <= 0 {
		t.Errorf("BytesInUse = %d, want > 0", m.BytesInUse)
	}
	if m.Utilization <= 0 || m.Utilization > 1 {
		t.Errorf("Utilization = %f, want in (0,1]", m.Utilization)
	}
}

func TestMetricsAfterPromotion(t *testing.T) {
	o := New(WithChunkSize(16), WithAlignment(8))
	defer o.Free(nil)

	o.Copy(bytes.Repeat([]byte{'a'}, 40))
	m := o.Metrics()

	if m.NumChunks < 1 {
		t.Fatalf("NumChunks = %d, want >= 1", m.NumChunks)
	}
	if m.Capacity < 40 {
		t.Errorf("Capacity = %d, want >= 40", m.Capacity)
	}
}

func TestMetricsEmptyArena(t *testing.T) {
	o := New()
	o.Free(nil)

	m := o.Metrics()
	if m.NumChunks != 0 || m.Capacity != 0 || m.Utilization != 0 {
		t.Errorf("Metrics() on destroyed arena = %+v, want all zero", m)
	}
}

func TestRecyclesVacatedChunkWhenSafe(t *testing.T) {
	o := New(WithChunkSize(16), WithAlignment(8))
	defer o.Free(nil)

	// Growing past the whole chunk in one go, on a pending object that
	// began right at the chunk's payload start, must leave only the new
	// chunk behind: the vacated one is recycled.
	o.Grow(bytes.Repeat([]byte{'q'}, 64))
	if o.NumChunks() != 1 {
		t.Errorf("NumChunks() = %d, want 1 (old chunk should be recycled)", o.NumChunks())
	}
	o.Finish()
}

func TestDoesNotRecycleWhenMaybeEmptyObjectSet(t *testing.T) {
	o := New(WithChunkSize(16), WithAlignment(8))
	defer o.Free(nil)

	o.Finish() // zero-length finish sets maybeEmptyObject
	o.Grow(bytes.Repeat([]byte{'q'}, 64))

	if o.NumChunks() != 2 {
		t.Errorf("NumChunks() = %d, want 2 (old chunk must not be recycled)", o.NumChunks())
	}
}
