// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts remote calls and fallbacks. A nil *Metrics records nothing.
type Metrics struct {
	remoteCalls *prometheus.CounterVec
	fallbacks   *prometheus.CounterVec
}

// NewMetrics registers the data-layer counters on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		remoteCalls: f.NewCounterVec(prometheus.CounterOpts{
			Name: "folio_remote_calls_total",
			Help: "Remote store attempts by entity, operation and outcome.",
		}, []string{"entity", "op", "outcome"}),
		fallbacks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "folio_fallback_total",
			Help: "Operations served from the in-memory fallback dataset.",
		}, []string{"entity", "op", "reason"}),
	}
}

func (m *Metrics) remoteAttempt(entity, op string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.remoteCalls.WithLabelValues(entity, op, outcome).Inc()
}

func (m *Metrics) fallback(entity, op string, kind ErrorKind) {
	if m == nil {
		return
	}
	m.fallbacks.WithLabelValues(entity, op, kind.String()).Inc()
}
