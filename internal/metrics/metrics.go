package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "stockvote"

// Metrics holds the collectors of the settlement pipeline and the oracle client.
type Metrics struct {
	Registry *prometheus.Registry

	Sweeps               *prometheus.CounterVec
	SweepDuration        prometheus.Histogram
	MarketsEnded         prometheus.Counter
	MarketsSettled       prometheus.Counter
	SettlementsDeferred  prometheus.Counter
	ParticipantsCredited prometheus.Counter
	ParticipantFailures  prometheus.Counter
	OracleRequests       *prometheus.CounterVec
	PriceCache           *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),

		Sweeps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "settlement_sweeps_total",
				Help:      "Settlement sweeps by result",
			},
			[]string{"result"},
		),
		SweepDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "settlement_sweep_duration_seconds",
				Help:      "Duration of one settlement sweep",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
		),
		MarketsEnded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "markets_ended_total",
			Help:      "Markets closed for voting",
		}),
		MarketsSettled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "markets_settled_total",
			Help:      "Markets moved to settled",
		}),
		SettlementsDeferred: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlements_deferred_total",
			Help:      "Settlements postponed because no final price was available",
		}),
		ParticipantsCredited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "participants_credited_total",
			Help:      "Correct predictions paid out",
		}),
		ParticipantFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "participant_settlement_failures_total",
			Help:      "Participant settlements that failed and will be retried",
		}),
		OracleRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "oracle_requests_total",
				Help:      "Price oracle requests by result",
			},
			[]string{"result"},
		),
		PriceCache: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "price_cache_lookups_total",
				Help:      "Price cache lookups by result",
			},
			[]string{"result"},
		),
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.Sweeps,
		m.SweepDuration,
		m.MarketsEnded,
		m.MarketsSettled,
		m.SettlementsDeferred,
		m.ParticipantsCredited,
		m.ParticipantFailures,
		m.OracleRequests,
		m.PriceCache,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
