package metrics

import (
	"time"

	"github.com/goodnatureofminers/legacytx/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	archiveLinesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "legacytx",
		Subsystem: "archive_ingester",
		Name:      "lines_total",
		Help:      "Count of raw transaction lines read, by outcome.",
	}, []string{"coin", "network", "status"})

	archiveChunkTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "legacytx",
		Subsystem: "archive_ingester",
		Name:      "process_chunk_total",
		Help:      "Count of processed chunks of lines.",
	}, []string{"coin", "network", "status"})

	archiveChunkDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "legacytx",
		Subsystem: "archive_ingester",
		Name:      "process_chunk_duration_seconds",
		Help:      "Duration of decoding and queueing a chunk of lines.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	archiveChunkSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "legacytx",
		Subsystem: "archive_ingester",
		Name:      "process_chunk_size",
		Help:      "Number of lines per processed chunk.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"coin", "network"})
)

// ArchiveIngester tracks metrics for the raw transaction archive pipeline.
type ArchiveIngester struct {
	coin    model.Coin
	network model.Network
}

// NewArchiveIngester constructs an ArchiveIngester with sane defaults.
func NewArchiveIngester(coin model.Coin, network model.Network) *ArchiveIngester {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &ArchiveIngester{coin: coin, network: network}
}

// ObserveLine records the outcome of decoding a single line.
func (m ArchiveIngester) ObserveLine(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	archiveLinesTotal.WithLabelValues(string(m.coin), string(m.network), status).Inc()
}

// ObserveChunk records processing of a chunk of lines.
func (m ArchiveIngester) ObserveChunk(err error, lines int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	archiveChunkTotal.WithLabelValues(string(m.coin), string(m.network), status).Inc()
	archiveChunkDuration.WithLabelValues(string(m.coin), string(m.network), status).
		Observe(time.Since(started).Seconds())
	archiveChunkSize.WithLabelValues(string(m.coin), string(m.network)).Observe(float64(lines))
}
