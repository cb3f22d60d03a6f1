// Package txcodec encodes and decodes legacy (pre-segwit) Bitcoin
// transactions in their canonical wire form.
//
// All multi-byte integers are little-endian, vector and script lengths are
// varint-prefixed, and scripts are carried as opaque bytes. Decoding is a
// single forward pass that either returns a complete value or an error.
package txcodec

// Serializer is implemented by every wire entity in this package.
type Serializer interface {
	// Serialize returns the canonical encoding.
	Serialize() []byte
	// AppendSerialized appends the canonical encoding to dst.
	AppendSerialized(dst []byte) []byte
	// SerializeSize returns len(Serialize()) without encoding.
	SerializeSize() int
}

var (
	_ Serializer = OutPoint{}
	_ Serializer = TxInput{}
	_ Serializer = TxOutput{}
	_ Serializer = LegacyTransaction{}
)
