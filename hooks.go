package encryptconfig

// Hooks are lightweight callbacks for high-signal events. Implementations
// MUST be cheap and non-blocking; the cache calls them inline.
type Hooks interface {
	// WriteBackFailed fires when persisting a dirty entry failed during
	// eviction or teardown. The in-memory value is already gone, so the
	// failure is unrecoverable at this layer.
	WriteBackFailed(typ string, err error)

	// Evicted fires when an entry leaves the cache (Take or Close).
	// dirty reports whether unpersisted state was pending: Close attempts
	// a write-back first, Take hands the value (and the duty to persist
	// it) to the caller.
	Evicted(typ string, dirty bool)

	// Conflict fires just before a borrow-conflict panic is raised.
	Conflict(typ string, kind ConflictKind)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) WriteBackFailed(string, error) {}
func (NopHooks) Evicted(string, bool)          {}
func (NopHooks) Conflict(string, ConflictKind) {}
