package obstack

import (
	"bytes"
	"testing"
)

// Scenario 1 from the testable-properties section: two Copy calls in the
// same chunk land 8 bytes apart (the first object's 2 bytes rounded up to an
// 8-byte alignment).
func TestCopyAlignmentGap(t *testing.T) {
	o := New(WithChunkSize(64), WithAlignment(8))
	defer o.Free(nil)

	a := o.Copy([]byte("hi"))
	b := o.Copy([]byte("world"))

	if got := uintptr(b) - uintptr(a); got != 8 {
		t.Fatalf("B-A = %d, want 8", got)
	}
	if got := readBytes(a, 2); !bytes.Equal(got, []byte("hi")) {
		t.Fatalf("bytes at A = %q, want %q", got, "hi")
	}
	if got := readBytes(b, 5); !bytes.Equal(got, []byte("world")) {
		t.Fatalf("bytes at B = %q, want %q", got, "world")
	}
}

// Scenario 2: grow+finish twice within one chunk; both fit, B == A+16.
func TestGrowFinishTwiceSameChunk(t *testing.T) {
	o := New(WithChunkSize(64), WithAlignment(8))
	defer o.Free(nil)

	o.Grow([]byte("abcdefghij"))
	a := o.Finish()

	o.Grow([]byte("x"))
	b := o.Finish()

	if got := readBytes(a, 10); !bytes.Equal(got, []byte("abcdefghij")) {
		t.Fatalf("bytes at A = %q", got)
	}
	if got := uintptr(b) - uintptr(a); got != 16 {
		t.Fatalf("B-A = %d, want 16", got)
	}
}

// Scenario 3: a grow larger than the chunk size forces a promotion; the
// relocated bytes must still read back correctly afterwards.
func TestGrowForcesPromotion(t *testing.T) {
	o := New(WithChunkSize(16), WithAlignment(8))
	defer o.Free(nil)

	payload := bytes.Repeat([]byte{0xAA}, 30)
	o.Grow(payload)
	a := o.Finish()

	if got := readBytes(a, 30); !bytes.Equal(got, payload) {
		t.Fatalf("bytes at A = %x, want all 0xAA", got)
	}
	if o.MemoryUsed() < 30 {
		t.Fatalf("MemoryUsed() = %d, want >= 30", o.MemoryUsed())
	}
}

// Scenario 6: 1000 single-byte objects are all distinct, 8-aligned, and
// readable at the end of the run.
func TestManySingleByteObjects(t *testing.T) {
	o := New(WithChunkSize(64), WithAlignment(8))
	defer o.Free(nil)

	addrs := make([]uintptr, 1000)
	for i := range addrs {
		o.Grow1('x')
		addrs[i] = uintptr(o.Finish())
	}

	seen := make(map[uintptr]bool, len(addrs))
	for _, a := range addrs {
		if a&7 != 0 {
			t.Fatalf("address %d is not 8-aligned", a)
		}
		if seen[a] {
			t.Fatalf("address %d returned twice", a)
		}
		seen[a] = true
		if got := readBytes(uintptrToPointer(a), 1); got[0] != 'x' {
			t.Fatalf("byte at %d = %q, want 'x'", a, got)
		}
	}
}

func TestPromotionPreservesPendingBytes(t *testing.T) {
	o := New(WithChunkSize(16), WithAlignment(8))
	defer o.Free(nil)

	o.Grow([]byte("short"))
	if o.Size() != 5 {
		t.Fatalf("Size() = %d, want 5", o.Size())
	}
	base := o.Base()
	pre := readBytes(base, o.Size())

	// Force a promotion mid-object by growing past the chunk's remaining room.
	o.Grow(bytes.Repeat([]byte{'z'}, 64))

	post := readBytes(o.Base(), len(pre))
	if !bytes.Equal(pre, post) {
		t.Fatalf("pending bytes changed across promotion: %q -> %q", pre, post)
	}
}

func TestReservationEnforcesBudget(t *testing.T) {
	o := New(WithChunkSize(64), WithAlignment(8))
	defer o.Free(nil)

	r := o.Reserve(4)
	r.Append([]byte("ab"))
	r.AppendByte('c')
	r.AppendByte('d')

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic exceeding reservation budget")
		}
	}()
	r.AppendByte('e')
}

func TestGrow0AppendsTrailingZero(t *testing.T) {
	o := New(WithChunkSize(64), WithAlignment(8))
	defer o.Free(nil)

	o.Grow0([]byte("id"))
	addr := o.Finish()
	got := readBytes(addr, 3)
	if !bytes.Equal(got, []byte("id\x00")) {
		t.Fatalf("bytes = %q, want %q", got, "id\x00")
	}
}
