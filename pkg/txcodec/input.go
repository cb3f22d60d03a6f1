package txcodec

import "bytes"

// minTxInputSize is an outpoint, a one-byte empty script and a sequence.
const minTxInputSize = OutPointSize + 1 + 4

// TxInput spends a previous output.
type TxInput struct {
	PreviousOutput OutPoint
	ScriptSig      []byte
	Sequence       uint32
}

// Serialize implements Serializer.
func (in TxInput) Serialize() []byte {
	return in.AppendSerialized(make([]byte, 0, in.SerializeSize()))
}

// AppendSerialized implements Serializer.
func (in TxInput) AppendSerialized(dst []byte) []byte {
	dst = in.PreviousOutput.AppendSerialized(dst)
	dst = appendScript(dst, in.ScriptSig)
	return appendUint32(dst, in.Sequence)
}

// SerializeSize implements Serializer.
func (in TxInput) SerializeSize() int {
	return OutPointSize + VarintSize(uint64(len(in.ScriptSig))) + len(in.ScriptSig) + 4
}

// Equal reports whether both inputs encode to the same bytes.
func (in TxInput) Equal(other TxInput) bool {
	return in.PreviousOutput == other.PreviousOutput &&
		bytes.Equal(in.ScriptSig, other.ScriptSig) &&
		in.Sequence == other.Sequence
}

// DecodeTxInput reads a TxInput at offset and returns it with the number of
// bytes consumed.
func DecodeTxInput(buf []byte, offset int) (TxInput, int, error) {
	r := newReader(buf, offset)
	in, err := readTxInput(r)
	if err != nil {
		return TxInput{}, 0, err
	}
	return in, r.off - offset, nil
}

func readTxInput(r *reader) (TxInput, error) {
	prev, err := readOutPoint(r)
	if err != nil {
		return TxInput{}, err
	}
	script, err := r.readScript("script_sig")
	if err != nil {
		return TxInput{}, err
	}
	seq, err := r.readUint32("sequence")
	if err != nil {
		return TxInput{}, err
	}
	return TxInput{PreviousOutput: prev, ScriptSig: script, Sequence: seq}, nil
}

func cloneInput(in TxInput) TxInput {
	in.ScriptSig = cloneScript(in.ScriptSig)
	return in
}
