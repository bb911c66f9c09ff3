package encryptconfig

// Options tune the behavior of a Config. All fields are optional; nop
// implementations are substituted for nil ones.
type Options struct {
	Logger  Logger  // nil => NopLogger
	Metrics Metrics // nil => NopMetrics; a Prometheus adapter lives in metrics/prom
	Hooks   Hooks   // nil => NopHooks
}

// Config is the public façade over the type-keyed cache. It is an
// explicitly constructed, explicitly owned instance — safe to share across
// goroutines by reference, but deliberately not a singleton; any global
// convenience belongs to the caller.
//
// The typed operations are package-level functions (Get, GetMut, Take,
// Save, Invalidate and the tuple forms) because Go methods cannot carry
// their own type parameters.
type Config struct {
	cache typeCache
}

// New creates an empty Config cache.
func New(opts Options) *Config {
	c := &Config{}
	c.cache.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.cache.metrics = coalesce[Metrics](opts.Metrics, NopMetrics{})
	c.cache.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	return c
}

// Flush writes back every dirty entry in place and clears its dirty bit on
// success. Unlike teardown write-back, Flush is an explicit save path, so
// failures are returned (joined) and the failed entries stay dirty.
func (c *Config) Flush() error {
	return c.cache.flushAll()
}

// Close evicts every entry, writing back the dirty ones best-effort.
// Write-back failures are logged and reported through Hooks, not returned —
// the values are gone either way. Skipping Close silently drops pending
// writes. Close is idempotent; the Config may be reused afterwards and
// will simply reload on the next access.
func (c *Config) Close() {
	c.cache.close()
}
