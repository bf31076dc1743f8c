package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counter names for the ingestion path.
const (
	LinesReceived    = "sensor_bridge_lines_received_total"
	ReadingsAccepted = "sensor_bridge_readings_accepted_total"
	NoiseDiscarded   = "sensor_bridge_noise_lines_total"
	ParseErrors      = "sensor_bridge_parse_errors_total"
)

// PromMetrics keeps the ingestion counters on its own registry so several
// instances (tests) never collide on the default one.
type PromMetrics struct {
	registry *prometheus.Registry
	counters map[string]prometheus.Counter
}

func NewPromMetrics() *PromMetrics {
	reg := prometheus.NewRegistry()

	counters := map[string]prometheus.Counter{
		LinesReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Name: LinesReceived,
			Help: "Lines framed from the serial stream.",
		}),
		ReadingsAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: ReadingsAccepted,
			Help: "Lines parsed into a Reading and stored as the current snapshot.",
		}),
		NoiseDiscarded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: NoiseDiscarded,
			Help: "Lines dropped because they are not shaped like a JSON object.",
		}),
		ParseErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: ParseErrors,
			Help: "Object-shaped lines that failed JSON parsing.",
		}),
	}
	for _, c := range counters {
		reg.MustRegister(c)
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &PromMetrics{registry: reg, counters: counters}
}

// IncCounter adds v to the named counter. Unknown names are ignored.
func (p *PromMetrics) IncCounter(name string, v float64) {
	if c, ok := p.counters[name]; ok {
		c.Add(v)
	}
}

// Counter exposes a counter by name for tests.
func (p *PromMetrics) Counter(name string) prometheus.Counter {
	return p.counters[name]
}

// Handler serves the registry in the Prometheus exposition format.
func (p *PromMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}
