package server

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	requests    *prometheus.CounterVec
	submissions *prometheus.CounterVec
}

func newMetrics(registry *prometheus.Registry) (*metrics, error) {
	m := &metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dynform_http_requests_total",
				Help: "Total number of HTTP requests served",
			},
			[]string{"method", "route", "status"},
		),
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dynform_form_submissions_total",
				Help: "Total number of form submissions by outcome",
			},
			[]string{"form", "outcome"},
		),
	}
	for _, c := range []prometheus.Collector{m.requests, m.submissions} {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}
