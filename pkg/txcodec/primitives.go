package txcodec

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// HashSize is the width of a transaction id reference.
const HashSize = 32

// reader is a forward-only cursor over a single buffer. Every read either
// advances past the whole field or leaves the cursor where it was.
type reader struct {
	buf []byte
	off int
}

func newReader(buf []byte, offset int) *reader {
	if offset < 0 || offset > len(buf) {
		offset = len(buf)
	}
	return &reader{buf: buf, off: offset}
}

func (r *reader) remaining() int {
	if r.off >= len(r.buf) {
		return 0
	}
	return len(r.buf) - r.off
}

func (r *reader) take(n int, field string) ([]byte, error) {
	if n > r.remaining() {
		return nil, fmt.Errorf("%w: %s needs %d bytes, %d remain", ErrUnexpectedEndOfBuffer, field, n, r.remaining())
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *reader) readInt32(field string) (int32, error) {
	v, err := r.readUint32(field)
	return int32(v), err
}

func (r *reader) readUint32(field string) (uint32, error) {
	b, err := r.take(4, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *reader) readUint64(field string) (uint64, error) {
	b, err := r.take(8, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *reader) readHash(field string) ([HashSize]byte, error) {
	var h [HashSize]byte
	b, err := r.take(HashSize, field)
	if err != nil {
		return h, err
	}
	copy(h[:], b)
	return h, nil
}

func (r *reader) readVarint(field string) (uint64, error) {
	v, n, err := DecodeVarint(r.buf, r.off)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	r.off += n
	return v, nil
}

// readScript reads a varint length followed by that many raw bytes. The
// declared length is checked against the bytes actually left before
// anything is allocated.
func (r *reader) readScript(field string) ([]byte, error) {
	length, err := r.readVarint(field + " length")
	if err != nil {
		return nil, err
	}
	if length > uint64(r.remaining()) {
		return nil, fmt.Errorf("%w: %s declares %d bytes, %d remain", ErrInvalidScript, field, length, r.remaining())
	}
	b, _ := r.take(int(length), field)
	return cloneScript(b), nil
}

// cloneScript copies a script. Empty scripts are always nil.
func cloneScript(script []byte) []byte {
	if len(script) == 0 {
		return nil
	}
	return bytes.Clone(script)
}

func appendInt32(dst []byte, v int32) []byte {
	return binary.LittleEndian.AppendUint32(dst, uint32(v))
}

func appendUint32(dst []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, v)
}

func appendUint64(dst []byte, v uint64) []byte {
	return binary.LittleEndian.AppendUint64(dst, v)
}

func appendScript(dst []byte, script []byte) []byte {
	dst = AppendVarint(dst, uint64(len(script)))
	return append(dst, script...)
}
