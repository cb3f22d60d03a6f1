package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/legacytx/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ArchiveRepository interface {
		OutputValue(ctx context.Context, coin model.Coin, network model.Network, txid string, vout uint32) (uint64, error)
		AddressBalance(ctx context.Context, coin model.Coin, network model.Network, addresses []string) (uint64, error)
	}
	CodecMetrics interface {
		Observe(operation string, size int, err error, started time.Time)
	}
)
