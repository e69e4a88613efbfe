// Package metrics exposes Prometheus counters for countdown expiries, clock
// anomalies, tier unlocks and degraded persistence.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lifeboost"

// Expiry paths.
const (
	PathTick    = "tick"
	PathCatchUp = "catchup"
)

var (
	Expiries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expiries_total",
			Help:      "Countdown expiries handled, by reminder and detection path",
		},
		[]string{"reminder", "path"},
	)
	ClockAnomalies = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clock_anomalies_total",
			Help:      "Persisted countdowns discarded because the clock moved implausibly",
		},
		[]string{"reminder"},
	)
	TierUnlocks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tier_unlocks_total",
			Help:      "Medal tier increases, by activity",
		},
		[]string{"activity"},
	)
	StorageFaults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "storage_faults_total",
			Help:      "Key-value store operations that failed or returned corrupt data",
		},
		[]string{"op"},
	)
	NotificationsDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_dropped_total",
			Help:      "Notifications discarded by the rate limiter",
		},
	)
)

var registerOnce sync.Once

// Register adds every collector to the default registry. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(Expiries, ClockAnomalies, TierUnlocks, StorageFaults, NotificationsDropped)
	})
}

// Handler registers the collectors and returns the scrape handler.
func Handler() http.Handler {
	Register()
	return promhttp.Handler()
}
