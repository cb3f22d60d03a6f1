// Package archive decodes raw legacy transactions from a line-oriented
// source and stores them in the archive.
package archive

import (
	"bufio"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/legacytx/internal/btcwire"
	"github.com/goodnatureofminers/legacytx/internal/model"
	"github.com/goodnatureofminers/legacytx/internal/wallet"
	"github.com/goodnatureofminers/legacytx/pkg/batcher"
	"github.com/goodnatureofminers/legacytx/pkg/txcodec"
	"github.com/goodnatureofminers/legacytx/pkg/workerpool"
)

// ErrMalformedLine wraps every per-line failure reported in strict mode.
var ErrMalformedLine = errors.New("malformed transaction line")

// Config tunes the ingester. Zero values fall back to package defaults.
type Config struct {
	Coin      model.Coin
	Network   model.Network
	Workers   int
	ChunkSize int
	// Strict aborts the run on the first malformed line instead of skipping it.
	Strict bool
	Batch  batcher.Options
}

// Stats summarises one Run.
type Stats struct {
	Lines    int
	Decoded  int
	Skipped  int
	Archived int
}

type line struct {
	number int
	text   string
}

type lineResult struct {
	batch model.ArchiveBatch
	err   error
}

// Ingester decodes hex-encoded transactions, one per line, on a worker pool
// and writes them to the archive in batches.
type Ingester struct {
	repo         Repository
	metrics      Metrics
	codecMetrics CodecMetrics
	logger       *zap.Logger
	cfg          Config
	conv         converter
}

// NewIngester builds an Ingester for cfg.Network.
func NewIngester(
	repo Repository,
	metrics Metrics,
	codecMetrics CodecMetrics,
	cfg Config,
	logger *zap.Logger,
) (*Ingester, error) {
	decoder, err := wallet.NewScriptDecoder(cfg.Network)
	if err != nil {
		return nil, fmt.Errorf("init script decoder: %w", err)
	}

	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkerCount
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = defaultChunkSize
	}
	if cfg.Batch.Size <= 0 {
		cfg.Batch.Size = batcherCapacity
	}
	if cfg.Batch.Interval <= 0 {
		cfg.Batch.Interval = batcherFlushInterval
	}
	if cfg.Batch.RPS <= 0 {
		cfg.Batch.RPS = batcherRPS
	}

	return &Ingester{
		repo:         repo,
		metrics:      metrics,
		codecMetrics: codecMetrics,
		logger:       logger.With(zap.String("coin", string(cfg.Coin)), zap.String("network", string(cfg.Network))),
		cfg:          cfg,
		conv: converter{
			coin:    cfg.Coin,
			network: cfg.Network,
			decoder: decoder,
			now:     time.Now,
		},
	}, nil
}

// Run reads r until EOF and archives every decodable line. Blank lines are
// ignored. Pending batches are flushed before Run returns.
func (i *Ingester) Run(ctx context.Context, r io.Reader) (stats Stats, err error) {
	writer := newArchiveWriter(i.repo, i.logger, i.cfg.Batch)
	writer.Start(ctx)
	defer func() {
		if stopErr := writer.Stop(); stopErr != nil {
			err = errors.Join(err, fmt.Errorf("flush archive: %w", stopErr))
		}
		stats.Archived = writer.Written()
		i.logger.Info("archive run finished",
			zap.Int("lines", stats.Lines),
			zap.Int("decoded", stats.Decoded),
			zap.Int("skipped", stats.Skipped),
			zap.Int("archived", stats.Archived),
		)
	}()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	chunk := make([]line, 0, i.cfg.ChunkSize)
	number := 0
	for scanner.Scan() {
		number++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		chunk = append(chunk, line{number: number, text: text})
		if len(chunk) < i.cfg.ChunkSize {
			continue
		}
		if err = i.processChunk(ctx, chunk, writer, &stats); err != nil {
			return stats, err
		}
		chunk = chunk[:0]
	}
	if err = scanner.Err(); err != nil {
		return stats, fmt.Errorf("read line %d: %w", number+1, err)
	}

	if err = i.processChunk(ctx, chunk, writer, &stats); err != nil {
		return stats, err
	}
	return stats, nil
}

func (i *Ingester) processChunk(ctx context.Context, chunk []line, writer *archiveWriter, stats *Stats) (err error) {
	if len(chunk) == 0 {
		return nil
	}

	start := time.Now()
	defer func() {
		i.metrics.ObserveChunk(err, len(chunk), start)
	}()

	results, err := workerpool.Map(ctx, i.cfg.Workers, chunk, i.decodeLine)
	if err != nil {
		return fmt.Errorf("decode chunk: %w", err)
	}

	for idx, res := range results {
		l := chunk[idx]
		stats.Lines++
		i.metrics.ObserveLine(res.err)

		if res.err != nil {
			if i.cfg.Strict {
				return fmt.Errorf("%w: line %d: %w", ErrMalformedLine, l.number, res.err)
			}
			stats.Skipped++
			i.logger.Warn("skipping malformed line", zap.Int("line", l.number), zap.Error(res.err))
			continue
		}

		stats.Decoded++
		if err = writer.Write(ctx, res.batch); err != nil {
			return fmt.Errorf("queue line %d: %w", l.number, err)
		}
	}
	return nil
}

// decodeLine reports per-line failures in the result and never fails the pool.
func (i *Ingester) decodeLine(_ context.Context, l line) (lineResult, error) {
	raw, err := hex.DecodeString(l.text)
	if err != nil {
		return lineResult{err: fmt.Errorf("decode hex: %w", err)}, nil
	}

	start := time.Now()
	tx, err := txcodec.DecodeTransaction(raw)
	i.codecMetrics.Observe("decode", len(raw), err, start)
	if err != nil {
		if _, witnessErr := btcwire.ParseMsgTx(raw); errors.Is(witnessErr, btcwire.ErrWitnessTransaction) {
			err = fmt.Errorf("%w: %w", witnessErr, err)
		}
		return lineResult{err: err}, nil
	}

	batch, err := i.conv.toArchiveBatch(tx, raw)
	if err != nil {
		return lineResult{err: err}, nil
	}
	return lineResult{batch: batch}, nil
}
