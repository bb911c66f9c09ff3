package encryptconfig

import "reflect"

// Source is the capability a cacheable configuration type must provide,
// expressed as a pointer constraint so that Get[Counter](cfg) infers the
// method set from the type argument alone.
//
// LoadOrDefault populates the receiver: set defaults first, then overlay
// whatever persisted state can be loaded. It must not fail — a missing,
// corrupted or undecryptable persisted state degrades to the defaults
// (the source subpackage provides building blocks with exactly that
// behavior). Save persists the receiver's current state and reports
// failure; it is invoked by write-back at eviction and by explicit Save
// and Flush calls.
type Source[T any] interface {
	*T
	LoadOrDefault()
	Save() error
}

// load boxes a freshly loaded T for the type-erased cache.
func load[T any, P Source[T]]() any {
	v := new(T)
	P(v).LoadOrDefault()
	return v
}

// writeBack is the persistence closure captured per entry. The assertion
// back to *T is the single unchecked-cast boundary of the cache: entries
// are keyed by exactly this type, so the cast cannot fail.
func writeBack[T any, P Source[T]](v any) error {
	return P(v.(*T)).Save()
}

// Get returns a shared guard for T's cached value, loading it through T's
// Source on first access. Panics with a *ConflictError if an exclusive
// guard for T is outstanding or the reader bound is exhausted.
func Get[T any, P Source[T]](c *Config) *Ref[T] {
	e := c.cache.getOrCreate(reflect.TypeFor[T](), load[T, P], writeBack[T, P])
	c.cache.acquireShared(e)
	return &Ref[T]{v: e.value.Load().(*T), word: &e.access}
}

// GetMut returns an exclusive guard for T's cached value, loading it
// through T's Source on first access. Panics with a *ConflictError if any
// guard for T is outstanding.
func GetMut[T any, P Source[T]](c *Config) *Mut[T] {
	e := c.cache.getOrCreate(reflect.TypeFor[T](), load[T, P], writeBack[T, P])
	c.cache.acquireExclusive(e)
	return &Mut[T]{v: e.value.Load().(*T), word: &e.access}
}

// Take removes T's entry from the cache and returns its value, loading a
// fresh one if nothing usable is cached. Any pending dirty state is
// discarded without persisting; ownership of the value — and of persisting
// it — transfers to the caller. Panics with a *ConflictError if an
// exclusive guard for T is outstanding.
func Take[T any, P Source[T]](c *Config) T {
	v := c.cache.take(reflect.TypeFor[T](), load[T, P])
	return *v.(*T)
}

// Save is the administrative override: replace T's cached value and mark
// it dirty without going through a guard, or — when T is not cached —
// persist value directly and materialize a fresh, clean entry. Intended
// for bulk or initialization use, not steady-state mutation.
func Save[T any, P Source[T]](c *Config, value T) error {
	return c.cache.save(reflect.TypeFor[T](), &value, writeBack[T, P])
}

// Invalidate marks T's entry stale so the next access reloads it through
// the Source, discarding unpersisted mutations. Reports whether an entry
// existed. Panics with a *ConflictError if an exclusive guard for T is
// outstanding.
func Invalidate[T any, P Source[T]](c *Config) bool {
	return c.cache.invalidate(reflect.TypeFor[T]())
}
