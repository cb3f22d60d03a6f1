package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/legacytx/internal/model"
)

const insertTransactionOutputsQuery = `
INSERT INTO legacytx_transaction_outputs (
	coin,
	network,
	txid,
	output_index,
	value,
	script_type,
	script_hex,
	addresses
) VALUES`

// InsertTransactionOutputs stores archived outputs.
func (r *Repository) InsertTransactionOutputs(ctx context.Context, outputs []model.TransactionOutput) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transaction_outputs", firstCoin(outputs), firstNetwork(outputs), err, start)
	}()

	if len(outputs) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertTransactionOutputsQuery)
	if err != nil {
		return fmt.Errorf("prepare outputs batch: %w", err)
	}

	for _, out := range outputs {
		addresses := out.Addresses
		if addresses == nil {
			addresses = []string{}
		}
		if err = batch.Append(
			string(out.Coin),
			string(out.Network),
			out.TxID,
			out.Index,
			out.Value,
			out.ScriptType,
			out.ScriptHex,
			addresses,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append output %s:%d: %w", out.TxID, out.Index, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert outputs: %w", err)
	}
	return nil
}
