// Package metrics exposes Prometheus counters for the web server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	reg *prometheus.Registry

	PageViews      *prometheus.CounterVec
	ContactResults *prometheus.CounterVec
	ActiveStreams  *prometheus.GaugeVec
	StreamFrames   *prometheus.CounterVec
}

// New registers the collectors on a private registry, so several servers (and
// tests) can coexist in one process.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		reg: reg,
		PageViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_page_views_total",
			Help: "Rendered pages by persona.",
		}, []string{"persona"}),
		ContactResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_contact_submissions_total",
			Help: "Contact form submissions by result.",
		}, []string{"result"}),
		ActiveStreams: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "portfolio_active_streams",
			Help: "Open animation event streams.",
		}, []string{"stream"}),
		StreamFrames: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_stream_frames_total",
			Help: "Animation frames sent.",
		}, []string{"stream"}),
	}
	reg.MustRegister(
		m.PageViews, m.ContactResults, m.ActiveStreams, m.StreamFrames,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

func (m *Metrics) Registry() *prometheus.Registry { return m.reg }
