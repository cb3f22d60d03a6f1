package txcodec

import (
	"errors"
	"fmt"
	"slices"
)

// MinTransactionSize is the encoded size of a transaction with no inputs and
// no outputs: version, two one-byte counts and lock time.
const MinTransactionSize = 4 + 1 + 1 + 4

// LegacyTransaction is a pre-segwit transaction. Values are treated as
// immutable once built or decoded; use From to derive a new one.
type LegacyTransaction struct {
	Version  int32
	Inputs   []TxInput
	Outputs  []TxOutput
	LockTime uint32
}

// Serialize implements Serializer.
func (tx LegacyTransaction) Serialize() []byte {
	return tx.AppendSerialized(make([]byte, 0, tx.SerializeSize()))
}

// AppendSerialized implements Serializer.
func (tx LegacyTransaction) AppendSerialized(dst []byte) []byte {
	dst = appendInt32(dst, tx.Version)
	dst = AppendVarint(dst, uint64(len(tx.Inputs)))
	for _, in := range tx.Inputs {
		dst = in.AppendSerialized(dst)
	}
	dst = AppendVarint(dst, uint64(len(tx.Outputs)))
	for _, out := range tx.Outputs {
		dst = out.AppendSerialized(dst)
	}
	return appendUint32(dst, tx.LockTime)
}

// SerializeSize implements Serializer.
func (tx LegacyTransaction) SerializeSize() int {
	n := 4 + VarintSize(uint64(len(tx.Inputs))) + VarintSize(uint64(len(tx.Outputs))) + 4
	for _, in := range tx.Inputs {
		n += in.SerializeSize()
	}
	for _, out := range tx.Outputs {
		n += out.SerializeSize()
	}
	return n
}

// MarshalBinary implements encoding.BinaryMarshaler. It never fails.
func (tx LegacyTransaction) MarshalBinary() ([]byte, error) {
	return tx.Serialize(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The receiver is only
// overwritten when decoding succeeds.
func (tx *LegacyTransaction) UnmarshalBinary(data []byte) error {
	decoded, err := DecodeTransaction(data)
	if err != nil {
		return err
	}
	*tx = decoded
	return nil
}

// Equal reports whether both transactions have the same canonical encoding.
func (tx LegacyTransaction) Equal(other LegacyTransaction) bool {
	return tx.Version == other.Version &&
		tx.LockTime == other.LockTime &&
		slices.EqualFunc(tx.Inputs, other.Inputs, TxInput.Equal) &&
		slices.EqualFunc(tx.Outputs, other.Outputs, TxOutput.Equal)
}

// DecodeTransaction decodes exactly one transaction occupying all of buf.
//
// Every error wraps ErrInvalidTransaction together with the narrower cause
// (ErrMalformedVarint, ErrUnexpectedEndOfBuffer or ErrInvalidScript) when
// there is one. Trailing bytes are rejected.
func DecodeTransaction(buf []byte) (LegacyTransaction, error) {
	if len(buf) < MinTransactionSize {
		return LegacyTransaction{}, fmt.Errorf("%w: %d bytes is below the %d byte minimum", ErrInvalidTransaction, len(buf), MinTransactionSize)
	}

	r := newReader(buf, 0)
	tx, err := readTransaction(r)
	if err != nil {
		return LegacyTransaction{}, invalid(err)
	}
	if n := r.remaining(); n > 0 {
		return LegacyTransaction{}, fmt.Errorf("%w: %d trailing bytes after lock_time", ErrInvalidTransaction, n)
	}
	return tx, nil
}

func readTransaction(r *reader) (LegacyTransaction, error) {
	version, err := r.readInt32("version")
	if err != nil {
		return LegacyTransaction{}, err
	}

	inputCount, err := readCount(r, "input count", minTxInputSize)
	if err != nil {
		return LegacyTransaction{}, err
	}
	inputs := make([]TxInput, 0, inputCount)
	for i := 0; i < inputCount; i++ {
		in, err := readTxInput(r)
		if err != nil {
			return LegacyTransaction{}, fmt.Errorf("input %d: %w", i, err)
		}
		inputs = append(inputs, in)
	}

	outputCount, err := readCount(r, "output count", minTxOutputSize)
	if err != nil {
		return LegacyTransaction{}, err
	}
	outputs := make([]TxOutput, 0, outputCount)
	for i := 0; i < outputCount; i++ {
		out, err := readTxOutput(r)
		if err != nil {
			return LegacyTransaction{}, fmt.Errorf("output %d: %w", i, err)
		}
		outputs = append(outputs, out)
	}

	lockTime, err := r.readUint32("lock_time")
	if err != nil {
		return LegacyTransaction{}, err
	}

	return LegacyTransaction{
		Version:  version,
		Inputs:   inputs,
		Outputs:  outputs,
		LockTime: lockTime,
	}, nil
}

// readCount reads a vector length and rejects counts that could not fit in
// the rest of the buffer at minEntrySize bytes each.
func readCount(r *reader, field string, minEntrySize int) (int, error) {
	count, err := r.readVarint(field)
	if err != nil {
		return 0, err
	}
	if limit := uint64(r.remaining() / minEntrySize); count > limit {
		return 0, fmt.Errorf("%w: %s %d exceeds the %d entries the remaining %d bytes can hold",
			ErrInvalidTransaction, field, count, limit, r.remaining())
	}
	return int(count), nil
}

// invalid makes sure a decode failure also matches ErrInvalidTransaction.
func invalid(err error) error {
	if errors.Is(err, ErrInvalidTransaction) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInvalidTransaction, err)
}
