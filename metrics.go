package encryptconfig

// Metrics exposes cache-level observability counters. Implementations must
// be safe for concurrent use and cheap — they run on the access hot path.
// A NopMetrics implementation is provided and used by default; a Prometheus
// adapter lives in metrics/prom.
type Metrics interface {
	// Hit is recorded when an access finds a valid entry.
	Hit()
	// Miss is recorded when an access has to load through the Source,
	// either on first touch or after invalidation.
	Miss()
	// WriteBack is recorded once per write-back attempt at eviction,
	// flush or teardown.
	WriteBack(ok bool)
	// Conflict is recorded just before a borrow-conflict panic is raised.
	Conflict()
}

// NopMetrics is a drop-in Metrics implementation that does nothing.
type NopMetrics struct{}

func (NopMetrics) Hit()           {}
func (NopMetrics) Miss()          {}
func (NopMetrics) WriteBack(bool) {}
func (NopMetrics) Conflict()      {}

var _ Metrics = NopMetrics{}
