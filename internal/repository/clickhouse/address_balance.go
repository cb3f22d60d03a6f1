package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/legacytx/internal/model"
)

const addressBalanceQuery = `
SELECT coalesce(sum(o.value), toUInt64(0)) AS balance
FROM legacytx_transaction_outputs AS o FINAL
LEFT ANTI JOIN (
	SELECT prev_txid, prev_vout
	FROM legacytx_transaction_inputs FINAL
	WHERE coin = ? AND network = ? AND is_coinbase = false
) AS i ON o.txid = i.prev_txid AND o.output_index = i.prev_vout
WHERE o.coin = ? AND o.network = ? AND hasAny(o.addresses, ?)`

// AddressBalance sums the archived outputs paying to any of addresses that
// no archived input spends.
func (r *Repository) AddressBalance(ctx context.Context, coin model.Coin, network model.Network, addresses []string) (balance uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("address_balance", coin, network, err, start)
	}()

	if len(addresses) == 0 {
		return 0, nil
	}

	rows, err := r.conn.Query(ctx, addressBalanceQuery,
		string(coin), string(network),
		string(coin), string(network),
		addresses,
	)
	if err != nil {
		return 0, fmt.Errorf("query address balance: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			balance, err = 0, fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return 0, fmt.Errorf("iterate address balance: %w", err)
		}
		return 0, errors.New("address balance query returned no rows")
	}
	if err = rows.Scan(&balance); err != nil {
		return 0, fmt.Errorf("scan address balance: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate address balance: %w", err)
	}

	return balance, nil
}
