package encryptconfig

import (
	"errors"
	"reflect"
	"sync"

	"golang.org/x/sync/singleflight"
)

// typeCache maps runtime type identity to entries. It is owned exclusively
// by Config; every code path that creates, reloads, evicts or tears down an
// entry lives here. Lookups go through sync.Map so the hit path stays
// lock-free; cold loads are coalesced per type through singleflight so the
// Source is invoked once no matter how many goroutines miss together.
type typeCache struct {
	entries sync.Map // reflect.Type -> *entry
	group   singleflight.Group

	log     Logger
	metrics Metrics
	hooks   Hooks
}

// typeKey returns a stable singleflight key for a type. reflect.Type is
// already the map key; singleflight just needs a matching string identity.
func typeKey(t reflect.Type) string {
	if pp := t.PkgPath(); pp != "" {
		return pp + "." + t.Name()
	}
	return t.String()
}

// getOrCreate returns the entry for typ. On a miss the value is loaded via
// load and a fresh entry inserted. An invalidated entry is reloaded in
// place, preserving its identity. A valid entry is returned as-is — no
// reload, even if the caller is about to mutate it; staleness detection is
// out of scope for a single-process cache.
func (c *typeCache) getOrCreate(typ reflect.Type, load func() any, writeBack func(any) error) *entry {
	if v, ok := c.entries.Load(typ); ok {
		e := v.(*entry)
		if e.access.valid() {
			c.metrics.Hit()
			return e
		}
		c.reload(typ, e, load)
		return e
	}

	c.metrics.Miss()
	v, _, _ := c.group.Do(typeKey(typ), func() (any, error) {
		if cur, ok := c.entries.Load(typ); ok {
			e := cur.(*entry)
			if !e.access.valid() {
				e.value.Store(load())
				e.access.revalidate()
			}
			return e, nil
		}
		e := &entry{typ: typ.String(), writeBack: writeBack}
		e.value.Store(load())
		e.access.w.Store(flagValid)
		c.entries.Store(typ, e)
		return e, nil
	})
	return v.(*entry)
}

// reload re-raises valid on an invalidated entry after loading a fresh
// value, coalescing concurrent reloads of the same type.
func (c *typeCache) reload(typ reflect.Type, e *entry, load func() any) {
	c.metrics.Miss()
	c.group.Do(typeKey(typ), func() (any, error) {
		if !e.access.valid() {
			e.value.Store(load())
			e.access.revalidate()
		}
		return e, nil
	})
}

// take removes the entry and returns its boxed value, loading a fresh one
// when the cache holds nothing usable. Pending dirty state is discarded
// without persisting: take means "I own this value and its persistence
// now", not "flush it first".
func (c *typeCache) take(typ reflect.Type, load func() any) any {
	v, ok := c.entries.Load(typ)
	if !ok {
		c.metrics.Miss()
		return load()
	}
	e := v.(*entry)
	if e.access.writing() {
		c.conflict(&ConflictError{Type: e.typ, Kind: ConflictTakeWhileWriting})
	}
	c.entries.Delete(typ)
	if !e.access.valid() {
		c.metrics.Miss()
		c.hooks.Evicted(e.typ, false)
		return load()
	}
	c.metrics.Hit()
	c.hooks.Evicted(e.typ, e.access.dirty())
	return e.value.Load()
}

// invalidate marks the entry stale so the next access reloads it from the
// Source. Unpersisted mutations are discarded. Reports whether an entry
// existed. Invalidating under an outstanding exclusive guard is a borrow
// conflict: the writer's pending mutation would vanish silently.
func (c *typeCache) invalidate(typ reflect.Type) bool {
	v, ok := c.entries.Load(typ)
	if !ok {
		return false
	}
	e := v.(*entry)
	if e.access.writing() {
		c.conflict(&ConflictError{Type: e.typ, Kind: ConflictInvalidateWhileWriting})
	}
	e.access.invalidate()
	return true
}

// save is the administrative override: replace the cached value and mark it
// dirty without going through a guard, or — when no entry exists — persist
// the value directly and materialize a fresh, clean entry from it.
func (c *typeCache) save(typ reflect.Type, boxed any, writeBack func(any) error) error {
	if cur, ok := c.entries.Load(typ); ok {
		e := cur.(*entry)
		e.value.Store(boxed)
		e.access.w.Or(flagValid | flagDirty)
		return nil
	}

	if err := writeBack(boxed); err != nil {
		return &SaveError{Type: typ.String(), Err: err}
	}
	e := &entry{typ: typ.String(), writeBack: writeBack}
	e.value.Store(boxed)
	e.access.w.Store(flagValid)
	if prev, loaded := c.entries.LoadOrStore(typ, e); loaded {
		// Lost the materialization race; the winner loaded post-persist
		// state, so just refresh its value.
		pe := prev.(*entry)
		pe.value.Store(boxed)
		pe.access.revalidate()
	}
	return nil
}

// acquireShared and acquireExclusive wrap the access word's fail-fast
// claims with conflict reporting before the panic leaves the cache.
func (c *typeCache) acquireShared(e *entry) {
	if err := e.access.acquireShared(e.typ); err != nil {
		c.conflict(err)
	}
}

func (c *typeCache) acquireExclusive(e *entry) {
	if err := e.access.acquireExclusive(e.typ); err != nil {
		c.conflict(err)
	}
}

func (c *typeCache) conflict(err *ConflictError) {
	c.metrics.Conflict()
	c.hooks.Conflict(err.Type, err.Kind)
	panic(err)
}

// flushAll writes back every dirty entry in place, leaving the entries
// resident. Failures are joined and returned; dirty bits of failed entries
// stay up so a later flush retries.
func (c *typeCache) flushAll() error {
	var errs []error
	c.entries.Range(func(_, v any) bool {
		e := v.(*entry)
		attempted, err := e.flush()
		if attempted {
			c.metrics.WriteBack(err == nil)
		}
		if err != nil {
			errs = append(errs, err)
		}
		return true
	})
	return errors.Join(errs...)
}

// close evicts every entry, flushing the dirty ones best-effort. Write-back
// failures are logged and reported through hooks, never propagated: the
// in-memory value is already gone, so no caller could act on the error.
func (c *typeCache) close() {
	c.entries.Range(func(k, _ any) bool {
		v, ok := c.entries.LoadAndDelete(k)
		if !ok {
			return true
		}
		e := v.(*entry)
		dirty := e.access.dirty() && e.access.valid()
		attempted, err := e.flush()
		if attempted {
			c.metrics.WriteBack(err == nil)
		}
		if err != nil {
			c.log.Error("write-back failed on teardown", Fields{"type": e.typ, "err": err})
			c.hooks.WriteBackFailed(e.typ, err)
		}
		c.hooks.Evicted(e.typ, dirty)
		return true
	})
}
