package archive

import (
	"context"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/legacytx/internal/model"
	"github.com/goodnatureofminers/legacytx/pkg/batcher"
)

type archiveWriter struct {
	repo    Repository
	logger  *zap.Logger
	batcher *batcher.Batcher[model.ArchiveBatch]
}

func newArchiveWriter(repo Repository, logger *zap.Logger, opts batcher.Options) *archiveWriter {
	w := &archiveWriter{
		repo:   repo,
		logger: logger,
	}
	w.batcher = batcher.New[model.ArchiveBatch](logger.Named("archiveBatcher"), w.flush, opts)
	return w
}

func (w *archiveWriter) Start(ctx context.Context) {
	w.batcher.Start(ctx)
}

// Stop flushes pending batches and reports any flush failure.
func (w *archiveWriter) Stop() error {
	return w.batcher.Stop()
}

// Written returns the number of transactions stored so far.
func (w *archiveWriter) Written() int {
	return w.batcher.Flushed()
}

func (w *archiveWriter) Write(ctx context.Context, b model.ArchiveBatch) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return w.batcher.Add(ctx, b)
}

func (w *archiveWriter) flush(ctx context.Context, batches []model.ArchiveBatch) error {
	if err := w.repo.InsertArchiveBatches(ctx, batches); err != nil {
		return err
	}
	w.logger.Debug("InsertArchiveBatches", zap.Int("count", len(batches)))
	return nil
}
