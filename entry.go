package encryptconfig

import "sync/atomic"

// entry is the cache's record for one configuration type: the type-erased
// value, its access word, and the write-back capability captured when the
// entry was created.
type entry struct {
	// value holds a *T boxed as any. The concrete type never changes for
	// the lifetime of the entry, which is what atomic.Value requires.
	value  atomic.Value
	access accessWord

	typ string // display name of the cached Go type, for diagnostics

	// writeBack persists the boxed value through its Source. Bound once
	// at creation, never reassigned.
	writeBack func(v any) error
}

// flush persists the value if it is dirty and valid, clearing dirty on
// success. The dirty bit is cleared with a CAS against the word observed
// before persisting: if a new exclusive guard slipped in meanwhile, the
// bit stays up and a later flush persists again rather than losing the
// mutation. Returns whether a write-back was attempted.
func (e *entry) flush() (bool, error) {
	cur := e.access.w.Load()
	if cur&flagDirty == 0 || cur&flagValid == 0 {
		return false, nil
	}
	if err := e.writeBack(e.value.Load()); err != nil {
		return true, &SaveError{Type: e.typ, Err: err}
	}
	e.access.w.CompareAndSwap(cur, cur&^flagDirty)
	return true, nil
}
