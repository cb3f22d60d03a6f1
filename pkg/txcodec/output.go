package txcodec

import "bytes"

// minTxOutputSize is a value and a one-byte empty script.
const minTxOutputSize = 8 + 1

// TxOutput locks Value (in satoshis) behind ScriptPubKey.
type TxOutput struct {
	Value        uint64
	ScriptPubKey []byte
}

// Serialize implements Serializer.
func (out TxOutput) Serialize() []byte {
	return out.AppendSerialized(make([]byte, 0, out.SerializeSize()))
}

// AppendSerialized implements Serializer.
func (out TxOutput) AppendSerialized(dst []byte) []byte {
	dst = appendUint64(dst, out.Value)
	return appendScript(dst, out.ScriptPubKey)
}

// SerializeSize implements Serializer.
func (out TxOutput) SerializeSize() int {
	return 8 + VarintSize(uint64(len(out.ScriptPubKey))) + len(out.ScriptPubKey)
}

// Equal reports whether both outputs encode to the same bytes.
func (out TxOutput) Equal(other TxOutput) bool {
	return out.Value == other.Value && bytes.Equal(out.ScriptPubKey, other.ScriptPubKey)
}

// DecodeTxOutput reads a TxOutput at offset and returns it with the number of
// bytes consumed.
func DecodeTxOutput(buf []byte, offset int) (TxOutput, int, error) {
	r := newReader(buf, offset)
	out, err := readTxOutput(r)
	if err != nil {
		return TxOutput{}, 0, err
	}
	return out, r.off - offset, nil
}

func readTxOutput(r *reader) (TxOutput, error) {
	value, err := r.readUint64("value")
	if err != nil {
		return TxOutput{}, err
	}
	script, err := r.readScript("script_pubkey")
	if err != nil {
		return TxOutput{}, err
	}
	return TxOutput{Value: value, ScriptPubKey: script}, nil
}

func cloneOutput(out TxOutput) TxOutput {
	out.ScriptPubKey = cloneScript(out.ScriptPubKey)
	return out
}
