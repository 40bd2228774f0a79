// Package metrics exposes prometheus instrumentation for the settlement
// daemon.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

// Collector holds the settlement daemon's metrics on a private registry.
type Collector struct {
	registry       *prometheus.Registry
	settled        prometheus.Counter
	failed         prometheus.Counter
	settleDuration prometheus.Histogram
	accountBalance *prometheus.GaugeVec
}

// NewCollector registers and returns the daemon's metrics.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	return &Collector{
		registry: registry,
		settled: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "scheduled_transactions_settled_total",
			Help: "Total number of scheduled transactions settled",
		}),
		failed: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "scheduled_transactions_failed_total",
			Help: "Total number of settlement attempts that failed",
		}),
		settleDuration: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "settlement_pass_duration_seconds",
			Help:    "Time taken by one settlement pass over an account",
			Buckets: prometheus.DefBuckets,
		}),
		accountBalance: promauto.With(registry).NewGaugeVec(prometheus.GaugeOpts{
			Name: "account_balance",
			Help: "Current account balance",
		}, []string{"account"}),
	}
}

// RecordSettlement counts settled transactions (or a failure) and observes
// the pass duration.
func (c *Collector) RecordSettlement(d time.Duration, settled int, failed bool) {
	if failed {
		c.failed.Inc()
	} else {
		c.settled.Add(float64(settled))
	}
	c.settleDuration.Observe(d.Seconds())
}

// SetBalance publishes an account's current balance.
func (c *Collector) SetBalance(number string, balance decimal.Decimal) {
	c.accountBalance.WithLabelValues(number).Set(balance.InexactFloat64())
}

// Handler serves the registry over HTTP.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
