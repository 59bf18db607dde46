package ctxstore

import "github.com/prometheus/client_golang/prometheus"

// instrumentation holds the optional prometheus metrics of a Context. All
// methods are nil-safe, so call sites do not need to branch on whether
// metrics were enabled.
type instrumentation struct {
	sets     prometheus.Counter
	erases   prometheus.Counter
	releases prometheus.Counter
	destroys prometheus.Counter
	entries  prometheus.Gauge
}

// WithMetrics enables prometheus metrics for the Context and registers them
// with the given registerer. The store label distinguishes multiple Contexts
// sharing one registry; registering the same label twice panics, like any
// duplicate prometheus registration.
func WithMetrics(reg prometheus.Registerer, store string) Option {
	labels := prometheus.Labels{"store": store}

	return func(c *Context) {
		inst := &instrumentation{
			sets: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace:   "ctxstore",
				Name:        "sets_total",
				Help:        "Number of effective insert and replace operations.",
				ConstLabels: labels,
			}),
			erases: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace:   "ctxstore",
				Name:        "erases_total",
				Help:        "Number of effective erase operations.",
				ConstLabels: labels,
			}),
			releases: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace:   "ctxstore",
				Name:        "releases_total",
				Help:        "Number of successful ownership transfers to callers.",
				ConstLabels: labels,
			}),
			destroys: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace:   "ctxstore",
				Name:        "destroys_total",
				Help:        "Number of destructor runs for owned values.",
				ConstLabels: labels,
			}),
			entries: prometheus.NewGauge(prometheus.GaugeOpts{
				Namespace:   "ctxstore",
				Name:        "entries",
				Help:        "Number of live entries.",
				ConstLabels: labels,
			}),
		}

		reg.MustRegister(inst.sets, inst.erases, inst.releases, inst.destroys, inst.entries)
		c.inst = inst
	}
}

func (i *instrumentation) countSet() {
	if i != nil {
		i.sets.Inc()
	}
}

func (i *instrumentation) countErase() {
	if i != nil {
		i.erases.Inc()
	}
}

func (i *instrumentation) countRelease() {
	if i != nil {
		i.releases.Inc()
	}
}

func (i *instrumentation) countDestroy() {
	if i != nil {
		i.destroys.Inc()
	}
}

func (i *instrumentation) trackEntries(count int) {
	if i != nil {
		i.entries.Set(float64(count))
	}
}
