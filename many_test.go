package encryptconfig

import "testing"

func TestGetManyDistinctTypes(t *testing.T) {
	resetCounter()
	cfg := New(Options{})

	c, th := Get2[Counter, Theme](cfg)
	if c.Value().N != 0 {
		t.Fatalf("counter = %d, want 0", c.Value().N)
	}
	if th.Value().Name != "light" {
		t.Fatalf("theme = %q, want light", th.Value().Name)
	}
	c.Release()
	th.Release()
}

func TestGetMutManyDistinctTypes(t *testing.T) {
	resetCounter()
	cfg := New(Options{})

	c, th := GetMut2[Counter, Theme](cfg)
	c.Value().N = 3
	th.Value().Name = "dark"
	c.Release()
	th.Release()

	rc, rt := Get2[Counter, Theme](cfg)
	defer rc.Release()
	defer rt.Release()
	if rc.Value().N != 3 || rt.Value().Name != "dark" {
		t.Fatalf("got (%d, %q), want (3, dark)", rc.Value().N, rt.Value().Name)
	}
}

// A tuple naming the same type twice requests two exclusive claims on one
// entry; claims acquire left to right, so the second conflicts just as two
// separate calls would.
func TestGetMutManySameTypeConflicts(t *testing.T) {
	resetCounter()
	cfg := New(Options{})

	mustConflict(t, ConflictWriteWhileWriting, func() {
		GetMut2[Counter, Counter](cfg)
	})
}

// Shared duplicates are fine: Get2 of one type twice is two readers.
func TestGetManySameTypeSharesReaders(t *testing.T) {
	resetCounter()
	cfg := New(Options{})

	a, b := Get2[Counter, Counter](cfg)
	if a.Value().N != 0 || b.Value().N != 0 {
		t.Fatal("duplicate shared claims should both read the entry")
	}
	a.Release()
	b.Release()

	// Both released: an exclusive claim succeeds now.
	GetMut[Counter](cfg).Release()
}

func TestTakeMany(t *testing.T) {
	resetCounter()
	cfg := New(Options{})

	m := GetMut[Counter](cfg)
	m.Value().N = 11
	m.Release()

	c, th := Take2[Counter, Theme](cfg)
	if c.N != 11 {
		t.Fatalf("taken counter = %d, want 11", c.N)
	}
	if th.Name != "light" {
		t.Fatalf("taken theme = %q, want light", th.Name)
	}
	if got := savedCounters(); len(got) != 0 {
		t.Fatalf("take flushed: %v", got)
	}
}

func TestGetManyWideArity(t *testing.T) {
	resetCounter()
	cfg := New(Options{})

	a, b, c, d := Get4[Counter, Theme, slowCfg, Counter](cfg)
	if a.Value().N != 0 || b.Value().Name != "light" || c.Value().N != 7 || d.Value().N != 0 {
		t.Fatal("wide tuple returned unexpected values")
	}
	a.Release()
	b.Release()
	c.Release()
	d.Release()
}
