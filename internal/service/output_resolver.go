package service

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/legacytx/internal/model"
	"github.com/goodnatureofminers/legacytx/internal/wallet"
	"github.com/goodnatureofminers/legacytx/pkg/txcodec"
)

// OutputResolver looks up the value of spent outpoints in the archive and
// caches them for the lifetime of the resolver.
type OutputResolver struct {
	repo    ArchiveRepository
	coin    model.Coin
	network model.Network
	cache   map[txcodec.OutPoint]uint64
}

// NewOutputResolver constructs a resolver scoped to one coin and network.
func NewOutputResolver(repo ArchiveRepository, coin model.Coin, network model.Network) *OutputResolver {
	return &OutputResolver{
		repo:    repo,
		coin:    coin,
		network: network,
		cache:   make(map[txcodec.OutPoint]uint64),
	}
}

// Resolve returns the value locked in op.
func (r *OutputResolver) Resolve(ctx context.Context, op txcodec.OutPoint) (uint64, error) {
	if value, ok := r.cache[op]; ok {
		return value, nil
	}

	txid := wallet.FormatTxID(op.TxID)
	value, err := r.repo.OutputValue(ctx, r.coin, r.network, txid, op.Vout)
	if err != nil {
		return 0, fmt.Errorf("resolve %s:%d: %w", txid, op.Vout, err)
	}

	r.cache[op] = value
	return value, nil
}
