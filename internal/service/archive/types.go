package archive

import (
	"context"
	"time"

	"github.com/goodnatureofminers/legacytx/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertArchiveBatches(ctx context.Context, batches []model.ArchiveBatch) error
	}
	Metrics interface {
		ObserveLine(err error)
		ObserveChunk(err error, lines int, started time.Time)
	}
	CodecMetrics interface {
		Observe(operation string, size int, err error, started time.Time)
	}
)
