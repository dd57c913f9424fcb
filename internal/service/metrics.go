package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	geocodeCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "locationapi_geocode_cache_lookups_total",
			Help: "Geocode cache lookups by result (hit, miss, error)",
		},
		[]string{"result"},
	)

	geocodeCacheWriteFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "locationapi_geocode_cache_write_failures_total",
			Help: "Resolved addresses that could not be written to the cache",
		},
	)

	providerCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "locationapi_provider_calls_total",
			Help: "Calls to the resolution provider by operation and outcome",
		},
		[]string{"op", "outcome"},
	)

	geocodeInflightShared = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "locationapi_geocode_inflight_shared_total",
			Help: "Cache misses that joined an identical in-flight provider call",
		},
	)
)

func observeProvider(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	providerCalls.WithLabelValues(op, outcome).Inc()
}
