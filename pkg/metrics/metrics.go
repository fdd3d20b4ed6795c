package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "planter"

var (
	ReadingsIngested = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "readings_ingested_total",
		Help:      "Sensor readings persisted, by source.",
	}, []string{"source"})

	SnapshotPollsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshot_polls_skipped_total",
		Help:      "Snapshot polls that found no new file modification.",
	})

	SnapshotFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshot_fallbacks_total",
		Help:      "Snapshot reads that fell back to the default reading.",
	})

	PlantsWatered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "plants_watered_total",
		Help:      "Watering events recorded.",
	})

	ReadingsPruned = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "readings_pruned_total",
		Help:      "Sensor readings removed by retention cleanup.",
	})

	RequestsThrottled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_throttled_total",
		Help:      "Write requests rejected by the per-client rate limiter.",
	})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
