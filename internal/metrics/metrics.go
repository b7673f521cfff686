// Package metrics exposes the bot's Prometheus instrumentation. Collectors
// are registered at init via promauto and scraped through the ops server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CommandsHandled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandsHandled,
			Help: HelpTextCommandsHandled,
		},
		[]string{LabelCommand, LabelOutcome},
	)

	APIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAPIRequests,
			Help: HelpTextAPIRequests,
		},
		[]string{LabelEndpoint, LabelOutcome},
	)

	PriceCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePriceCacheHits,
			Help: HelpTextPriceCacheHits,
		},
	)

	PriceCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePriceCacheMisses,
			Help: HelpTextPriceCacheMisses,
		},
	)

	MatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameMatchDuration,
			Help:    HelpTextMatchDuration,
			Buckets: prometheus.DefBuckets,
		},
	)

	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogItems,
			Help: HelpTextCatalogItems,
		},
	)
)

// RecordCommand counts one handled command with its outcome.
func RecordCommand(command string, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	CommandsHandled.WithLabelValues(command, outcome).Inc()
}
