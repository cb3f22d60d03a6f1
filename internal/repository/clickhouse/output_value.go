package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/legacytx/internal/model"
)

const outputValueQuery = `
SELECT value
FROM legacytx_transaction_outputs FINAL
WHERE coin = ? AND network = ? AND txid = ? AND output_index = ?
LIMIT 1`

// OutputValue returns the value locked in the archived output txid:vout.
func (r *Repository) OutputValue(ctx context.Context, coin model.Coin, network model.Network, txid string, vout uint32) (value uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("output_value", coin, network, err, start)
	}()

	rows, err := r.conn.Query(ctx, outputValueQuery, string(coin), string(network), txid, vout)
	if err != nil {
		return 0, fmt.Errorf("query output value: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			value, err = 0, fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return 0, fmt.Errorf("iterate output value: %w", err)
		}
		return 0, fmt.Errorf("%s:%d: %w", txid, vout, ErrOutputNotFound)
	}

	if err = rows.Scan(&value); err != nil {
		return 0, fmt.Errorf("scan output value: %w", err)
	}
	return value, nil
}
