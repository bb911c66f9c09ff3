package encryptconfig

// Ref is a shared (read) guard over one cached value. It represents one
// registered reader on the entry's access word; Release gives the claim
// back. A Ref is not safe for concurrent use — hand each goroutine its
// own guard.
type Ref[T any] struct {
	v        *T
	word     *accessWord
	released bool
}

// Value returns the cached value. The pointer is shared with every other
// outstanding reader; callers must not mutate through it — use GetMut for
// mutation.
func (r *Ref[T]) Value() *T {
	if r.released {
		panic("encryptconfig: Ref used after Release")
	}
	return r.v
}

// Release gives the shared claim back. Idempotent.
func (r *Ref[T]) Release() {
	if r.released {
		return
	}
	r.released = true
	r.word.releaseShared()
}

// Mut is an exclusive (write) guard over one cached value. While it is
// outstanding no other guard, shared or exclusive, can be acquired for the
// same type. Releasing the guard does not persist anything: the entry's
// dirty bit survives until write-back at eviction, batching repeated
// mutations into a single persist.
type Mut[T any] struct {
	v        *T
	word     *accessWord
	released bool
}

// Value marks the entry dirty and returns the value for mutation. The
// dirty bit is set on every call, not on acquisition: an exclusive guard
// that never touches Value leaves the entry clean.
func (m *Mut[T]) Value() *T {
	if m.released {
		panic("encryptconfig: Mut used after Release")
	}
	m.word.markDirty()
	return m.v
}

// Peek returns the value without marking the entry dirty. Callers must not
// mutate through it.
func (m *Mut[T]) Peek() *T {
	if m.released {
		panic("encryptconfig: Mut used after Release")
	}
	return m.v
}

// Release clears the writer bit. Idempotent.
func (m *Mut[T]) Release() {
	if m.released {
		return
	}
	m.released = true
	m.word.releaseExclusive()
}
