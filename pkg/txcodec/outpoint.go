package txcodec

import (
	"encoding/hex"
	"fmt"
	"strconv"
)

// OutPointSize is the fixed encoded size of an OutPoint.
const OutPointSize = HashSize + 4

// OutPoint references output Vout of the transaction TxID. TxID holds the
// bytes exactly as they appear on the wire.
type OutPoint struct {
	TxID [HashSize]byte
	Vout uint32
}

// Serialize implements Serializer.
func (o OutPoint) Serialize() []byte {
	return o.AppendSerialized(make([]byte, 0, OutPointSize))
}

// AppendSerialized implements Serializer.
func (o OutPoint) AppendSerialized(dst []byte) []byte {
	dst = append(dst, o.TxID[:]...)
	return appendUint32(dst, o.Vout)
}

// SerializeSize implements Serializer.
func (o OutPoint) SerializeSize() int {
	return OutPointSize
}

// String renders the outpoint as wire-order hex and index.
func (o OutPoint) String() string {
	return hex.EncodeToString(o.TxID[:]) + ":" + strconv.FormatUint(uint64(o.Vout), 10)
}

// DecodeOutPoint reads an OutPoint at offset and returns it with the number of
// bytes consumed.
func DecodeOutPoint(buf []byte, offset int) (OutPoint, int, error) {
	r := newReader(buf, offset)
	o, err := readOutPoint(r)
	if err != nil {
		return OutPoint{}, 0, err
	}
	return o, OutPointSize, nil
}

func readOutPoint(r *reader) (OutPoint, error) {
	if r.remaining() < OutPointSize {
		return OutPoint{}, fmt.Errorf("%w: outpoint needs %d bytes, %d remain", ErrInvalidTransaction, OutPointSize, r.remaining())
	}
	txid, err := r.readHash("outpoint txid")
	if err != nil {
		return OutPoint{}, err
	}
	vout, err := r.readUint32("outpoint vout")
	if err != nil {
		return OutPoint{}, err
	}
	return OutPoint{TxID: txid, Vout: vout}, nil
}
