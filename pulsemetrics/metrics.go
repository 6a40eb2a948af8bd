// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package pulsemetrics exports simulator activity as prometheus metrics.
//
//	reg := prometheus.NewRegistry()
//	m, err := pulsemetrics.New(reg)
//	...
//	s := pulsesim.NewSimulator(n, pulsesim.WithObserver(m))
//
package pulsemetrics

import (
	"io"

	"github.com/db47h/pulsesim"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "pulsesim"

// Metrics is a pulsesim.Observer updating prometheus collectors.
//
type Metrics struct {
	pulses    *prometheus.CounterVec
	presses   prometheus.Counter
	firstHigh *prometheus.GaugeVec

	low, high prometheus.Counter
}

// New creates the simulator metrics and registers them with reg.
//
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		pulses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pulses_total",
			Help:      "Pulses delivered, by level.",
		}, []string{"level"}),
		presses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "presses_total",
			Help:      "Button presses.",
		}),
		firstHigh: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "first_high_press",
			Help:      "Press at which a conjunction first sent a high pulse.",
		}, []string{"module"}),
	}
	for _, c := range []prometheus.Collector{m.pulses, m.presses, m.firstHigh} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "register metrics")
		}
	}
	m.low = m.pulses.WithLabelValues(pulsesim.Low.String())
	m.high = m.pulses.WithLabelValues(pulsesim.High.String())
	return m, nil
}

// Pressed implements pulsesim.Observer.
//
func (m *Metrics) Pressed(uint64) { m.presses.Inc() }

// Delivered implements pulsesim.Observer.
//
func (m *Metrics) Delivered(_, _ string, p pulsesim.Pulse) {
	if p == pulsesim.Low {
		m.low.Inc()
	} else {
		m.high.Inc()
	}
}

// FirstHigh implements pulsesim.Observer.
//
func (m *Metrics) FirstHigh(module string, press uint64) {
	m.firstHigh.WithLabelValues(module).Set(float64(press))
}

// WriteText writes the metrics gathered from g in the prometheus text
// exposition format.
//
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrap(err, "write metrics")
		}
	}
	return nil
}
