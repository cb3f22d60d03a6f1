package btcwire

import (
	"bytes"
	"math"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/legacytx/pkg/txcodec"
	"github.com/stretchr/testify/require"
)

func sample() txcodec.LegacyTransaction {
	return txcodec.NewBuilder().
		Version(2).
		AddInput(txcodec.TxInput{
			PreviousOutput: txcodec.OutPoint{TxID: [32]byte{0: 0x01, 31: 0x02}, Vout: 7},
			ScriptSig:      []byte{0x00, 0x01, 0x02},
			Sequence:       0xfffffffd,
		}).
		AddOutput(txcodec.TxOutput{Value: 12_345, ScriptPubKey: []byte{0x76, 0xa9}}).
		AddOutput(txcodec.TxOutput{Value: math.MaxUint64}).
		LockTime(500_000).
		Build()
}

// toMsgTx mirrors tx as a btcd message. Values above math.MaxInt64 keep
// their bit pattern, so both sides serialize to the same bytes.
func toMsgTx(tx txcodec.LegacyTransaction) *wire.MsgTx {
	msg := wire.NewMsgTx(tx.Version)
	for _, in := range tx.Inputs {
		hash := chainhash.Hash(in.PreviousOutput.TxID)
		txIn := wire.NewTxIn(wire.NewOutPoint(&hash, in.PreviousOutput.Vout), bytes.Clone(in.ScriptSig), nil)
		txIn.Sequence = in.Sequence
		msg.AddTxIn(txIn)
	}
	for _, out := range tx.Outputs {
		msg.AddTxOut(wire.NewTxOut(int64(out.Value), bytes.Clone(out.ScriptPubKey)))
	}
	msg.LockTime = tx.LockTime
	return msg
}

func serializeMsg(t *testing.T, msg *wire.MsgTx) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, msg.SerializeNoWitness(&buf))
	return buf.Bytes()
}

func TestMsgTx_MatchesBtcdEncoding(t *testing.T) {
	tx := sample()
	msg := toMsgTx(tx)

	require.Equal(t, serializeMsg(t, msg), tx.Serialize())
	require.Equal(t, msg.TxHash(), TxHash(tx))
	require.Equal(t, msg.SerializeSizeStripped(), tx.SerializeSize())
}

func TestFromMsgTx_RoundTrip(t *testing.T) {
	tx := sample()
	back, err := FromMsgTx(toMsgTx(tx))
	require.NoError(t, err)
	require.True(t, tx.Equal(back))
}

func TestGenesisCoinbase(t *testing.T) {
	coinbase := chaincfg.MainNetParams.GenesisBlock.Transactions[0]
	raw := serializeMsg(t, coinbase)

	tx, err := txcodec.DecodeTransaction(raw)
	require.NoError(t, err)
	require.Len(t, tx.Inputs, 1)
	require.Len(t, tx.Outputs, 1)
	require.Equal(t, uint64(50*1e8), tx.Outputs[0].Value)
	require.Equal(t, chainhash.Hash{}, chainhash.Hash(tx.Inputs[0].PreviousOutput.TxID))
	require.Equal(t, uint32(math.MaxUint32), tx.Inputs[0].PreviousOutput.Vout)

	// A single-transaction block commits to that transaction's id.
	require.Equal(t, chaincfg.MainNetParams.GenesisBlock.Header.MerkleRoot, TxHash(tx))
	require.Equal(t, "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b", TxHash(tx).String())
	require.Equal(t, raw, tx.Serialize())
}

func TestFromMsgTx_Errors(t *testing.T) {
	_, err := FromMsgTx(nil)
	require.Error(t, err)

	msg := toMsgTx(sample())
	msg.TxIn[0].Witness = wire.TxWitness{{0x01}}
	_, err = FromMsgTx(msg)
	require.ErrorIs(t, err, ErrWitnessTransaction)
}

func TestFromMsgTx_DeepEqualsBuilder(t *testing.T) {
	tx := txcodec.NewBuilder().
		AddInput(txcodec.TxInput{Sequence: 1}).
		AddOutput(txcodec.TxOutput{Value: 5}).
		Build()
	back, err := FromMsgTx(toMsgTx(tx))
	require.NoError(t, err)
	require.Equal(t, tx, back)
}

func TestParseMsgTx(t *testing.T) {
	tx := sample()
	got, err := ParseMsgTx(tx.Serialize())
	require.NoError(t, err)
	require.Equal(t, tx, got)

	msg := toMsgTx(tx)
	msg.TxIn[0].Witness = wire.TxWitness{{0x01, 0x02}}
	var buf bytes.Buffer
	require.NoError(t, msg.Serialize(&buf))
	_, err = ParseMsgTx(buf.Bytes())
	require.ErrorIs(t, err, ErrWitnessTransaction)

	_, err = ParseMsgTx([]byte{0x01})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrWitnessTransaction)
}
