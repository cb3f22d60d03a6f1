// Package btcwire converts btcd's wire.MsgTx into txcodec values and derives
// transaction ids from the canonical encoding.
package btcwire

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/legacytx/pkg/txcodec"
)

// ErrWitnessTransaction is returned for segwit transactions, which have no
// legacy representation.
var ErrWitnessTransaction = errors.New("transaction carries witness data")

// TxHash returns the double-SHA256 of the canonical encoding. Its String form
// is the usual byte-reversed txid.
func TxHash(tx txcodec.LegacyTransaction) chainhash.Hash {
	return chainhash.DoubleHashH(tx.Serialize())
}

// ParseMsgTx decodes raw with btcd's witness-aware decoder and converts the
// result. Segwit encodings fail with ErrWitnessTransaction.
func ParseMsgTx(raw []byte) (txcodec.LegacyTransaction, error) {
	var msg wire.MsgTx
	if err := msg.Deserialize(bytes.NewReader(raw)); err != nil {
		return txcodec.LegacyTransaction{}, fmt.Errorf("deserialize tx: %w", err)
	}
	return FromMsgTx(&msg)
}

// FromMsgTx converts a btcd message into a LegacyTransaction.
func FromMsgTx(msg *wire.MsgTx) (txcodec.LegacyTransaction, error) {
	if msg == nil {
		return txcodec.LegacyTransaction{}, errors.New("nil message")
	}
	if msg.HasWitness() {
		return txcodec.LegacyTransaction{}, fmt.Errorf("tx %s: %w", msg.TxHash(), ErrWitnessTransaction)
	}

	b := txcodec.NewBuilder().Version(msg.Version).LockTime(msg.LockTime)
	for _, in := range msg.TxIn {
		b = b.AddInput(txcodec.TxInput{
			PreviousOutput: txcodec.OutPoint{
				TxID: in.PreviousOutPoint.Hash,
				Vout: in.PreviousOutPoint.Index,
			},
			ScriptSig: in.SignatureScript,
			Sequence:  in.Sequence,
		})
	}
	for _, out := range msg.TxOut {
		b = b.AddOutput(txcodec.TxOutput{
			Value:        uint64(out.Value),
			ScriptPubKey: out.PkScript,
		})
	}
	return b.Build(), nil
}
