package clickhouse

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/legacytx/internal/model"
)

// InsertArchiveBatches flattens batches and stores transactions, inputs and
// outputs in that order.
func (r *Repository) InsertArchiveBatches(ctx context.Context, batches []model.ArchiveBatch) error {
	if len(batches) == 0 {
		return nil
	}

	txs := make([]model.Transaction, 0, len(batches))
	var (
		inputs  []model.TransactionInput
		outputs []model.TransactionOutput
	)
	for _, b := range batches {
		txs = append(txs, b.Tx)
		inputs = append(inputs, b.Inputs...)
		outputs = append(outputs, b.Outputs...)
	}

	if err := r.InsertTransactions(ctx, txs); err != nil {
		return fmt.Errorf("archive transactions: %w", err)
	}
	if err := r.InsertTransactionInputs(ctx, inputs); err != nil {
		return fmt.Errorf("archive inputs: %w", err)
	}
	if err := r.InsertTransactionOutputs(ctx, outputs); err != nil {
		return fmt.Errorf("archive outputs: %w", err)
	}
	return nil
}
