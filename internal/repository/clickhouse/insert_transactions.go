package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/legacytx/internal/model"
)

const insertTransactionsQuery = `
INSERT INTO legacytx_transactions (
	coin,
	network,
	txid,
	ingested_at,
	size,
	version,
	locktime,
	input_count,
	output_count,
	raw_hex
) VALUES`

// InsertTransactions stores archived transactions.
func (r *Repository) InsertTransactions(ctx context.Context, txs []model.Transaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transactions", firstCoin(txs), firstNetwork(txs), err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertTransactionsQuery)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	for _, tx := range txs {
		if err = batch.Append(
			string(tx.Coin),
			string(tx.Network),
			tx.TxID,
			tx.IngestedAt,
			tx.Size,
			tx.Version,
			tx.LockTime,
			tx.InputCount,
			tx.OutputCount,
			tx.RawHex,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append transaction %s: %w", tx.TxID, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}
