package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/legacytx/internal/model"
)

const insertTransactionInputsQuery = `
INSERT INTO legacytx_transaction_inputs (
	coin,
	network,
	txid,
	input_index,
	prev_txid,
	prev_vout,
	sequence,
	is_coinbase,
	script_sig_hex
) VALUES`

// InsertTransactionInputs stores archived inputs.
func (r *Repository) InsertTransactionInputs(ctx context.Context, inputs []model.TransactionInput) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transaction_inputs", firstCoin(inputs), firstNetwork(inputs), err, start)
	}()

	if len(inputs) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertTransactionInputsQuery)
	if err != nil {
		return fmt.Errorf("prepare inputs batch: %w", err)
	}

	for _, in := range inputs {
		if err = batch.Append(
			string(in.Coin),
			string(in.Network),
			in.TxID,
			in.Index,
			in.PrevTxID,
			in.PrevVout,
			in.Sequence,
			in.IsCoinbase,
			in.ScriptSigHex,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append input %s:%d: %w", in.TxID, in.Index, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert inputs: %w", err)
	}
	return nil
}
