package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/legacytx/internal/metrics"
	"github.com/goodnatureofminers/legacytx/internal/model"
	"github.com/goodnatureofminers/legacytx/internal/repository/clickhouse"
	"github.com/goodnatureofminers/legacytx/internal/service/archive"
	"github.com/goodnatureofminers/legacytx/pkg/batcher"
)

type config struct {
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"LEGACYTX_ARCHIVE_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	Coin          model.Coin    `long:"coin" env:"LEGACYTX_ARCHIVE_COIN" description:"coin name" default:"BTC"`
	Network       model.Network `long:"network" env:"LEGACYTX_ARCHIVE_NETWORK" description:"network name" required:"true"`
	Input         string        `long:"input" env:"LEGACYTX_ARCHIVE_INPUT" description:"file with one hex transaction per line, - for stdin" default:"-"`
	Strict        bool          `long:"strict" env:"LEGACYTX_ARCHIVE_STRICT" description:"abort on the first malformed line"`
	Workers       int           `long:"workers" env:"LEGACYTX_ARCHIVE_WORKERS" description:"decode workers" default:"8"`
	ChunkSize     int           `long:"chunk-size" env:"LEGACYTX_ARCHIVE_CHUNK_SIZE" description:"lines decoded per chunk" default:"1000"`
	BatchSize     int           `long:"batch-size" env:"LEGACYTX_ARCHIVE_BATCH_SIZE" description:"transactions per ClickHouse insert" default:"500"`
	FlushInterval time.Duration `long:"flush-interval" env:"LEGACYTX_ARCHIVE_FLUSH_INTERVAL" description:"max time a partial batch waits" default:"5s"`
	FlushRPS      int           `long:"flush-rps" env:"LEGACYTX_ARCHIVE_FLUSH_RPS" description:"max inserts per second" default:"20"`
	MetricsAddr   string        `long:"metrics-addr" env:"LEGACYTX_ARCHIVE_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args[1:]); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("archive ingester failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	in, closeInput, err := openInput(cfg.Input)
	if err != nil {
		return err
	}
	defer closeInput()

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("close repository", zap.Error(err))
		}
	}()

	ingester, err := archive.NewIngester(
		repo,
		metrics.NewArchiveIngester(cfg.Coin, cfg.Network),
		metrics.NewCodec(cfg.Network),
		archive.Config{
			Coin:      cfg.Coin,
			Network:   cfg.Network,
			Workers:   cfg.Workers,
			ChunkSize: cfg.ChunkSize,
			Strict:    cfg.Strict,
			Batch: batcher.Options{
				Size:     cfg.BatchSize,
				Interval: cfg.FlushInterval,
				RPS:      cfg.FlushRPS,
			},
		},
		logger.Named("archive"),
	)
	if err != nil {
		return err
	}

	stats, err := ingester.Run(ctx, in)
	if err != nil {
		return err
	}
	logger.Info("archive complete",
		zap.String("input", cfg.Input),
		zap.Int("archived", stats.Archived),
		zap.Int("skipped", stats.Skipped),
	)
	return nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	if addr == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
