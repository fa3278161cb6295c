// Package metrics exposes Prometheus instrumentation for the dashboard.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hireboard"

// Recorder owns the dashboard collectors and the registry they live in.
type Recorder struct {
	registry *prometheus.Registry

	feedGenerations     prometheus.Counter
	feedMarkRead        prometheus.Counter
	feedUnread          prometheus.Gauge
	pipelineGenerations prometheus.Counter
	toolCalls           *prometheus.CounterVec
}

// New creates a Recorder with its own registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		feedGenerations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "activity",
			Name:      "generations_total",
			Help:      "Number of times the activity feed was regenerated.",
		}),
		feedMarkRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "activity",
			Name:      "mark_all_read_total",
			Help:      "Number of mark-all-read requests.",
		}),
		feedUnread: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "activity",
			Name:      "unread",
			Help:      "Unread records in the activity feed.",
		}),
		pipelineGenerations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "generations_total",
			Help:      "Number of times the candidate pipeline was regenerated.",
		}),
		toolCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "mcp",
			Name:      "tool_calls_total",
			Help:      "MCP tool invocations by tool and outcome.",
		}, []string{"tool", "outcome"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.feedGenerations,
		r.feedMarkRead,
		r.feedUnread,
		r.pipelineGenerations,
		r.toolCalls,
	)
	return r
}

// FeedGenerated records a feed regeneration and the resulting unread count.
func (r *Recorder) FeedGenerated(unread int) {
	if r == nil {
		return
	}
	r.feedGenerations.Inc()
	r.feedUnread.Set(float64(unread))
}

// FeedMarkedRead records a mark-all-read request.
func (r *Recorder) FeedMarkedRead() {
	if r == nil {
		return
	}
	r.feedMarkRead.Inc()
	r.feedUnread.Set(0)
}

// PipelineGenerated records a pipeline regeneration.
func (r *Recorder) PipelineGenerated() {
	if r == nil {
		return
	}
	r.pipelineGenerations.Inc()
}

// ToolCalled records one MCP tool call.
func (r *Recorder) ToolCalled(tool string, failed bool) {
	if r == nil {
		return
	}
	outcome := "ok"
	if failed {
		outcome = "error"
	}
	r.toolCalls.WithLabelValues(tool, outcome).Inc()
}

// Registry exposes the underlying registry, mainly for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
