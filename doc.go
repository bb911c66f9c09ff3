// Package encryptconfig implements an in-process, type-keyed configuration
// cache with write-back persistence. Each configuration type is cached at
// most once; values are materialized lazily on first access via the type's
// Source capability, mutated through exclusive guards, and persisted again
// only when the entry is evicted or the cache is closed.
//
// Access arbitration is lock-free: every entry carries a single atomic word
// encoding validity, dirtiness, an exclusive-writer bit and a bounded shared
// reader count. A request that cannot be granted immediately fails fast
// (panics with a *ConflictError) instead of blocking — holding a guard while
// asking for a conflicting one is a bug in the calling code, not a condition
// to wait out.
//
// Components:
//   - Source[T]: the capability a cacheable type provides (LoadOrDefault, Save).
//   - codec:     (de)serializes values for persisted sources (JSON, CBOR, Msgpack, Protobuf).
//   - backend:   named byte stores for persisted config (files, Redis).
//   - crypt:     RSA encryption for secret sources, key held in the OS keyring.
//
// Typical use:
//
//	cfg := encryptconfig.New(encryptconfig.Options{})
//	defer cfg.Close()
//
//	c := encryptconfig.Get[Counter](cfg)
//	n := c.Value().N
//	c.Release()
//
//	m := encryptconfig.GetMut[Counter](cfg)
//	m.Value().N = n + 1 // marks the entry dirty; persisted on Close
//	m.Release()
//
// Skipping Close silently drops pending writes; call Flush for an explicit,
// error-returning write-back of everything dirty.
package encryptconfig
