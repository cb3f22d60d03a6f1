// Package service composes the codec, the archive and the script helpers into
// the wallet operations exposed by the command-line tool.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/legacytx/internal/btcwire"
	"github.com/goodnatureofminers/legacytx/internal/model"
	"github.com/goodnatureofminers/legacytx/internal/wallet"
	"github.com/goodnatureofminers/legacytx/pkg/safe"
	"github.com/goodnatureofminers/legacytx/pkg/txcodec"
)

var (
	// ErrInsufficientFunds is returned when the resolved inputs cannot cover
	// the amount plus the fee.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrArchiveRequired is returned by operations that need the archive
	// when no repository was configured.
	ErrArchiveRequired = errors.New("archive repository is not configured")
	// ErrNoInputs is returned when Send is called without outpoints to spend.
	ErrNoInputs = errors.New("at least one input is required")
)

// SendRequest describes an unsigned payment.
type SendRequest struct {
	Amount        uint64
	Address       string
	Inputs        []txcodec.OutPoint
	ChangeAddress string
	Fee           uint64
	Sequence      uint32
	LockTime      uint32
	Version       int32
}

// SendResult is the built transaction with its canonical encoding.
type SendResult struct {
	Tx         txcodec.LegacyTransaction
	Raw        []byte
	TxID       chainhash.Hash
	InputValue uint64
	Change     uint64
}

// Wallet builds payments and answers balance queries for one network.
type Wallet struct {
	repo    ArchiveRepository
	decoder *wallet.ScriptDecoder
	metrics CodecMetrics
	logger  *zap.Logger
	coin    model.Coin
	network model.Network
}

// NewWallet constructs a Wallet. repo may be nil, in which case change
// outputs and balances are unavailable.
func NewWallet(
	repo ArchiveRepository,
	coin model.Coin,
	network model.Network,
	metrics CodecMetrics,
	logger *zap.Logger,
) (*Wallet, error) {
	decoder, err := wallet.NewScriptDecoder(network)
	if err != nil {
		return nil, fmt.Errorf("init script decoder: %w", err)
	}

	return &Wallet{
		repo:    repo,
		decoder: decoder,
		metrics: metrics,
		logger:  logger.With(zap.String("coin", string(coin)), zap.String("network", string(network))),
		coin:    coin,
		network: network,
	}, nil
}

// Send builds an unsigned legacy transaction spending req.Inputs. Every input
// carries an empty script_sig. When req.ChangeAddress is set the input values
// are resolved from the archive and the remainder after amount and fee is
// paid back as a second output.
func (w *Wallet) Send(ctx context.Context, req SendRequest) (SendResult, error) {
	if len(req.Inputs) == 0 {
		return SendResult{}, ErrNoInputs
	}

	payTo, err := w.decoder.PayToAddress(req.Address)
	if err != nil {
		return SendResult{}, err
	}

	b := txcodec.NewBuilder().Version(req.Version).LockTime(req.LockTime)
	for _, op := range req.Inputs {
		b = b.AddInput(txcodec.TxInput{PreviousOutput: op, Sequence: req.Sequence})
	}
	b = b.AddOutput(txcodec.TxOutput{Value: req.Amount, ScriptPubKey: payTo})

	var inputValue, change uint64
	if req.ChangeAddress != "" {
		inputValue, change, err = w.change(ctx, req)
		if err != nil {
			return SendResult{}, err
		}
		if change > 0 {
			changeTo, err := w.decoder.PayToAddress(req.ChangeAddress)
			if err != nil {
				return SendResult{}, fmt.Errorf("change address: %w", err)
			}
			b = b.AddOutput(txcodec.TxOutput{Value: change, ScriptPubKey: changeTo})
		}
	}

	tx := b.Build()

	start := time.Now()
	raw := tx.Serialize()
	w.metrics.Observe("encode", len(raw), nil, start)

	res := SendResult{
		Tx:         tx,
		Raw:        raw,
		TxID:       btcwire.TxHash(tx),
		InputValue: inputValue,
		Change:     change,
	}

	w.logger.Info("transaction built",
		zap.Stringer("txid", res.TxID),
		zap.Int("size", len(raw)),
		zap.Int("inputs", len(tx.Inputs)),
		zap.Int("outputs", len(tx.Outputs)),
		zap.Stringer("amount", satoshis(req.Amount)),
		zap.Stringer("change", satoshis(change)),
	)

	return res, nil
}

func (w *Wallet) change(ctx context.Context, req SendRequest) (uint64, uint64, error) {
	if w.repo == nil {
		return 0, 0, fmt.Errorf("resolve change: %w", ErrArchiveRequired)
	}

	resolver := NewOutputResolver(w.repo, w.coin, w.network)
	var total uint64
	for _, op := range req.Inputs {
		value, err := resolver.Resolve(ctx, op)
		if err != nil {
			return 0, 0, err
		}
		if total, err = safe.Add(total, value); err != nil {
			return 0, 0, fmt.Errorf("sum inputs: %w", err)
		}
	}

	need, err := safe.Add(req.Amount, req.Fee)
	if err != nil {
		return 0, 0, fmt.Errorf("amount plus fee: %w", err)
	}
	if total < need {
		return total, 0, fmt.Errorf("%w: inputs %s, need %s", ErrInsufficientFunds, satoshis(total), satoshis(need))
	}
	return total, total - need, nil
}

// Balance sums the archived outputs paying to addresses that no archived
// input spends.
func (w *Wallet) Balance(ctx context.Context, addresses []string) (uint64, error) {
	if w.repo == nil {
		return 0, ErrArchiveRequired
	}
	for _, addr := range addresses {
		if _, err := w.decoder.PayToAddress(addr); err != nil {
			return 0, err
		}
	}

	balance, err := w.repo.AddressBalance(ctx, w.coin, w.network, addresses)
	if err != nil {
		return 0, fmt.Errorf("address balance: %w", err)
	}

	w.logger.Debug("balance computed",
		zap.Strings("addresses", addresses),
		zap.Stringer("balance", satoshis(balance)),
	)
	return balance, nil
}

// satoshis renders v as a coin amount, falling back to the raw value when it
// does not fit btcutil.Amount.
func satoshis(v uint64) fmt.Stringer {
	amount, err := safe.Int64(v)
	if err != nil {
		return rawSatoshis(v)
	}
	return btcutil.Amount(amount)
}

type rawSatoshis uint64

func (v rawSatoshis) String() string {
	return fmt.Sprintf("%d sat", uint64(v))
}
