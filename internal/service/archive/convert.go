package archive

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/goodnatureofminers/legacytx/internal/btcwire"
	"github.com/goodnatureofminers/legacytx/internal/model"
	"github.com/goodnatureofminers/legacytx/internal/wallet"
	"github.com/goodnatureofminers/legacytx/pkg/safe"
	"github.com/goodnatureofminers/legacytx/pkg/txcodec"
)

const coinbaseVout = 0xffffffff

// converter maps decoded transactions to archive rows.
type converter struct {
	coin    model.Coin
	network model.Network
	decoder *wallet.ScriptDecoder
	now     func() time.Time
}

func (c converter) toArchiveBatch(tx txcodec.LegacyTransaction, raw []byte) (model.ArchiveBatch, error) {
	txid := btcwire.TxHash(tx).String()

	size, err := safe.Uint32(len(raw))
	if err != nil {
		return model.ArchiveBatch{}, fmt.Errorf("tx %s size: %w", txid, err)
	}
	inputCount, err := safe.Uint32(len(tx.Inputs))
	if err != nil {
		return model.ArchiveBatch{}, fmt.Errorf("tx %s input count: %w", txid, err)
	}
	outputCount, err := safe.Uint32(len(tx.Outputs))
	if err != nil {
		return model.ArchiveBatch{}, fmt.Errorf("tx %s output count: %w", txid, err)
	}

	batch := model.ArchiveBatch{
		Tx: model.Transaction{
			Coin:        c.coin,
			Network:     c.network,
			TxID:        txid,
			IngestedAt:  c.now().UTC(),
			Size:        size,
			Version:     tx.Version,
			LockTime:    tx.LockTime,
			InputCount:  inputCount,
			OutputCount: outputCount,
			RawHex:      hex.EncodeToString(raw),
		},
		Inputs:  make([]model.TransactionInput, 0, len(tx.Inputs)),
		Outputs: make([]model.TransactionOutput, 0, len(tx.Outputs)),
	}

	for i, in := range tx.Inputs {
		batch.Inputs = append(batch.Inputs, model.TransactionInput{
			Coin:         c.coin,
			Network:      c.network,
			TxID:         txid,
			Index:        uint32(i),
			PrevTxID:     wallet.FormatTxID(in.PreviousOutput.TxID),
			PrevVout:     in.PreviousOutput.Vout,
			Sequence:     in.Sequence,
			IsCoinbase:   isCoinbase(in.PreviousOutput),
			ScriptSigHex: hex.EncodeToString(in.ScriptSig),
		})
	}

	for i, out := range tx.Outputs {
		// non-standard scripts are archived without addresses
		addresses, _ := c.decoder.Addresses(out.ScriptPubKey)
		batch.Outputs = append(batch.Outputs, model.TransactionOutput{
			Coin:       c.coin,
			Network:    c.network,
			TxID:       txid,
			Index:      uint32(i),
			Value:      out.Value,
			ScriptType: c.decoder.ScriptClass(out.ScriptPubKey),
			ScriptHex:  hex.EncodeToString(out.ScriptPubKey),
			Addresses:  addresses,
		})
	}

	return batch, nil
}

func isCoinbase(op txcodec.OutPoint) bool {
	return op.Vout == coinbaseVout && op.TxID == [txcodec.HashSize]byte{}
}
