package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects the server-mode counters exposed on /metrics. Each
// geometryServer owns its registry so tests can create servers freely
// without duplicate-registration panics.
type Metrics struct {
	registry *prometheus.Registry

	FramesBroadcast  prometheus.Counter
	ClientsConnected prometheus.Gauge
	AngleJ           prometheus.Gauge
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		FramesBroadcast: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "azelviz_frames_broadcast_total",
			Help: "Cumulative number of geometry frames broadcast to websocket clients.",
		}),
		ClientsConnected: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "azelviz_clients_connected",
			Help: "Number of websocket clients currently connected.",
		}),
		AngleJ: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "azelviz_angle_j_degrees",
			Help: "Current central angle J between the target and roll-axis directions, degrees.",
		}),
	}
	m.registry.MustRegister(m.FramesBroadcast, m.ClientsConnected, m.AngleJ)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
