package fetch

import "github.com/prometheus/client_golang/prometheus"

const (
	sourceCache  = "cache"
	sourceRemote = "remote"
)

// Metrics counts where files came from. A nil *Metrics counts nothing.
type Metrics struct {
	Fetched  *prometheus.CounterVec
	Failures prometheus.Counter
}

// NewMetrics makes the counters and registers them with reg, if reg
// is not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Fetched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pdbtools_fetch_total",
			Help: "PDB files obtained, by source.",
		}, []string{"source"}),
		Failures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pdbtools_fetch_failures_total",
			Help: "PDB IDs no site would give us.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Fetched, m.Failures)
	}
	return m
}

func (m *Metrics) count(source string) {
	if m != nil {
		m.Fetched.WithLabelValues(source).Inc()
	}
}

func (m *Metrics) fail() {
	if m != nil {
		m.Failures.Inc()
	}
}
