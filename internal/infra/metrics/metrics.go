// Package metrics exposes fan-out and token hygiene counters to Prometheus.
package metrics

import (
	"net/http"

	"petkeeper/internal/domain/entity"
	"petkeeper/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "petkeeper"

// Collector records delivery outcomes
type Collector struct {
	registry         *prometheus.Registry
	notificationSent prometheus.Counter
	failures         *prometheus.CounterVec
	dispatches       *prometheus.CounterVec
	tokensRemoved    prometheus.Counter
}

var _ service.MetricsRecorder = (*Collector)(nil)

// NewRegistry creates the process registry with Go runtime and process collectors
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// NewCollector registers the counters on registry
func NewCollector(registry *prometheus.Registry) *Collector {
	c := &Collector{
		registry: registry,
		notificationSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_sent_total",
			Help:      "Push notifications accepted by the transport.",
		}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_failures_total",
			Help:      "Push notifications rejected by the transport, by error code.",
		}, []string{"code"}),
		dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatch_requests_total",
			Help:      "Family fan-outs dispatched, by event kind.",
		}, []string{"kind"}),
		tokensRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_removed_total",
			Help:      "Registration tokens pruned by token hygiene.",
		}),
	}

	registry.MustRegister(c.notificationSent, c.failures, c.dispatches, c.tokensRemoved)

	return c
}

// NewMetricsRecorder exposes the collector as the domain recorder
func NewMetricsRecorder(c *Collector) service.MetricsRecorder {
	return c
}

func (c *Collector) RecordDispatch(kind entity.EventKind, result *entity.DispatchResult) {
	c.dispatches.WithLabelValues(string(kind)).Inc()
	if result == nil {
		return
	}

	c.notificationSent.Add(float64(result.SentCount))
	for _, outcome := range result.Outcomes {
		if outcome.Success {
			continue
		}
		code := outcome.ErrorCode
		if code == "" {
			code = entity.DeliveryErrorUnknown
		}
		c.failures.WithLabelValues(string(code)).Inc()
	}
}

func (c *Collector) RecordTokensRemoved(count int) {
	if count <= 0 {
		return
	}

	c.tokensRemoved.Add(float64(count))
}

// Handler serves the registry in the Prometheus text format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
