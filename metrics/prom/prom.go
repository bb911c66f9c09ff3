// Package prom exports the cache's Metrics as Prometheus counters.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	encryptconfig "github.com/kingwingfly/encrypt-config"
)

// Adapter implements encryptconfig.Metrics. Safe for concurrent use; all
// Prometheus metric types are goroutine-safe.
type Adapter struct {
	hits       prometheus.Counter
	misses     prometheus.Counter
	writeBacks *prometheus.CounterVec
	conflicts  prometheus.Counter
}

var _ encryptconfig.Metrics = (*Adapter)(nil)

// New constructs a Prometheus metrics adapter.
//   - reg:         registry to register with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:     Prometheus namespace and subsystem
//   - constLabels: static labels applied to all metrics (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "hits_total",
			Help:        "Accesses served from a valid cached entry",
			ConstLabels: constLabels,
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "misses_total",
			Help:        "Accesses that loaded through the Source",
			ConstLabels: constLabels,
		}),
		writeBacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "write_backs_total",
				Help:        "Write-back attempts by result",
				ConstLabels: constLabels,
			},
			[]string{"result"},
		),
		conflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "conflicts_total",
			Help:        "Borrow conflicts (fail-fast panics raised)",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.hits, a.misses, a.writeBacks, a.conflicts)
	return a
}

func (a *Adapter) Hit()  { a.hits.Inc() }
func (a *Adapter) Miss() { a.misses.Inc() }

func (a *Adapter) WriteBack(ok bool) {
	if ok {
		a.writeBacks.WithLabelValues("ok").Inc()
	} else {
		a.writeBacks.WithLabelValues("error").Inc()
	}
}

func (a *Adapter) Conflict() { a.conflicts.Inc() }
