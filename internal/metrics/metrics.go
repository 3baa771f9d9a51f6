package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "catalog"

var (
	registerOnce     sync.Once
	registry         *prometheus.Registry
	storeOperations  *prometheus.CounterVec
	storeDuration    *prometheus.HistogramVec
	metadataFetches  *prometheus.CounterVec
	uploadBytes      prometheus.Counter
	activeSessions   prometheus.Gauge
	adminLoginResult *prometheus.CounterVec
)

// MustRegister creates the collectors on a private registry. Safe to call
// more than once; observation helpers are no-ops until it has run.
func MustRegister() {
	registerOnce.Do(func() {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		storeOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Remote store calls by operation and result.",
		}, []string{"op", "result"})
		storeDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Remote store call latency by operation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"})
		metadataFetches = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "metadata",
			Name:      "fetches_total",
			Help:      "Metadata lookups by result (success, failure, cached).",
		}, []string{"result"})
		uploadBytes = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "upload_bytes_total",
			Help:      "Bytes written to the object bucket.",
		})
		activeSessions = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "active",
			Help:      "Visitor sessions currently held in memory.",
		})
		adminLoginResult = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "admin",
			Name:      "logins_total",
			Help:      "Passcode submissions by result.",
		}, []string{"result"})

		registry.MustRegister(storeOperations, storeDuration, metadataFetches, uploadBytes, activeSessions, adminLoginResult)
	})
}

func Handler() http.Handler {
	MustRegister()
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

func ObserveStore(op string, start time.Time, err error) {
	if storeOperations == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	storeOperations.WithLabelValues(op, result).Inc()
	storeDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func ObserveMetadata(result string) {
	if metadataFetches == nil {
		return
	}
	metadataFetches.WithLabelValues(result).Inc()
}

func AddUploadBytes(n int64) {
	if uploadBytes == nil || n <= 0 {
		return
	}
	uploadBytes.Add(float64(n))
}

func SetActiveSessions(n int) {
	if activeSessions == nil {
		return
	}
	activeSessions.Set(float64(n))
}

func ObserveAdminLogin(ok bool) {
	if adminLoginResult == nil {
		return
	}
	if ok {
		adminLoginResult.WithLabelValues("accepted").Inc()
		return
	}
	adminLoginResult.WithLabelValues("rejected").Inc()
}
