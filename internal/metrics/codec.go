// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/legacytx/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	codecOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "legacytx",
		Subsystem: "codec",
		Name:      "operations_total",
		Help:      "Count of transaction encode/decode operations.",
	}, []string{"operation", "network", "status"})
	codecOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "legacytx",
		Subsystem: "codec",
		Name:      "operation_duration_seconds",
		Help:      "Duration of transaction encode/decode operations.",
		Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
	}, []string{"operation", "network", "status"})
	codecPayloadBytes = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "legacytx",
		Subsystem: "codec",
		Name:      "payload_bytes",
		Help:      "Size of encoded transactions handled by the codec.",
		Buckets:   prometheus.ExponentialBuckets(16, 4, 9), // 16..1MiB
	}, []string{"operation", "network"})
)

// Codec tracks metrics for transaction encoding and decoding.
type Codec struct {
	network model.Network
}

// NewCodec constructs a Codec collector for a network.
func NewCodec(network model.Network) *Codec {
	if network == "" {
		network = "unknown"
	}
	return &Codec{network: network}
}

// Observe records one codec operation over size bytes.
func (m Codec) Observe(operation string, size int, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	codecOperationsTotal.WithLabelValues(operation, string(m.network), status).Inc()
	codecOperationDuration.WithLabelValues(operation, string(m.network), status).Observe(time.Since(started).Seconds())
	codecPayloadBytes.WithLabelValues(operation, string(m.network)).Observe(float64(size))
}
