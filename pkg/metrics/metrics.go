// Package metrics exposes Prometheus instrumentation for the orchestrator.
// All methods are nil-receiver safe so components can run unmetered in tests.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry; nothing registers globally.
type Metrics struct {
	registry *prometheus.Registry

	executionsEnqueued  prometheus.Counter
	executionsAssigned  prometheus.Counter
	executionsFinalized *prometheus.CounterVec
	webhooksProcessed   *prometheus.CounterVec
	queueDepth          *prometheus.GaugeVec
	healthProbes        *prometheus.CounterVec
	wsConnections       prometheus.Gauge
}

// New builds the metric set on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		executionsEnqueued: factory.NewCounter(prometheus.CounterOpts{
			Name: "baton_executions_enqueued_total",
			Help: "Executions accepted into the queue.",
		}),
		executionsAssigned: factory.NewCounter(prometheus.CounterOpts{
			Name: "baton_executions_assigned_total",
			Help: "Committed execution-to-runner assignments.",
		}),
		executionsFinalized: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "baton_executions_finalized_total",
			Help: "Terminal transitions by final status.",
		}, []string{"status"}),
		webhooksProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "baton_runner_webhooks_total",
			Help: "Runner webhooks by type and outcome.",
		}, []string{"type", "outcome"}),
		queueDepth: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "baton_queue_depth",
			Help: "Executions per non-terminal state.",
		}, []string{"state"}),
		healthProbes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "baton_health_probes_total",
			Help: "Runner health probes by observed result.",
		}, []string{"result"}),
		wsConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name: "baton_websocket_connections",
			Help: "Currently open WebSocket connections.",
		}),
	}
}

// Handler serves the registry for GET /metrics.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ExecutionEnqueued() {
	if m == nil {
		return
	}
	m.executionsEnqueued.Inc()
}

func (m *Metrics) ExecutionAssigned() {
	if m == nil {
		return
	}
	m.executionsAssigned.Inc()
}

func (m *Metrics) ExecutionFinalized(status string) {
	if m == nil {
		return
	}
	m.executionsFinalized.WithLabelValues(status).Inc()
}

func (m *Metrics) WebhookProcessed(hookType, outcome string) {
	if m == nil {
		return
	}
	m.webhooksProcessed.WithLabelValues(hookType, outcome).Inc()
}

func (m *Metrics) SetQueueDepth(queued, assigned, running int) {
	if m == nil {
		return
	}
	m.queueDepth.WithLabelValues("queued").Set(float64(queued))
	m.queueDepth.WithLabelValues("assigned").Set(float64(assigned))
	m.queueDepth.WithLabelValues("running").Set(float64(running))
}

func (m *Metrics) HealthProbe(result string) {
	if m == nil {
		return
	}
	m.healthProbes.WithLabelValues(result).Inc()
}

func (m *Metrics) WSConnected() {
	if m == nil {
		return
	}
	m.wsConnections.Inc()
}

func (m *Metrics) WSDisconnected() {
	if m == nil {
		return
	}
	m.wsConnections.Dec()
}
