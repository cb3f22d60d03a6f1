package txcodec

import (
	"encoding/binary"
	"fmt"
	"math"
)

const (
	varintTag16 = 0xfd
	varintTag32 = 0xfe
	varintTag64 = 0xff

	// MaxVarintSize is the longest possible varint encoding.
	MaxVarintSize = 9
)

// VarintSize returns the number of bytes EncodeVarint produces for n.
func VarintSize(n uint64) int {
	switch {
	case n < varintTag16:
		return 1
	case n <= math.MaxUint16:
		return 3
	case n <= math.MaxUint32:
		return 5
	default:
		return MaxVarintSize
	}
}

// EncodeVarint returns the canonical encoding of n.
func EncodeVarint(n uint64) []byte {
	return AppendVarint(make([]byte, 0, VarintSize(n)), n)
}

// AppendVarint appends the canonical encoding of n to dst.
func AppendVarint(dst []byte, n uint64) []byte {
	switch {
	case n < varintTag16:
		return append(dst, byte(n))
	case n <= math.MaxUint16:
		return binary.LittleEndian.AppendUint16(append(dst, varintTag16), uint16(n))
	case n <= math.MaxUint32:
		return binary.LittleEndian.AppendUint32(append(dst, varintTag32), uint32(n))
	default:
		return binary.LittleEndian.AppendUint64(append(dst, varintTag64), n)
	}
}

// DecodeVarint reads a varint starting at offset and returns the value with
// the number of bytes consumed. Truncated input and encodings that are not the
// shortest form of their value fail with ErrMalformedVarint.
func DecodeVarint(buf []byte, offset int) (uint64, int, error) {
	if offset < 0 || offset >= len(buf) {
		return 0, 0, fmt.Errorf("%w: no tag byte at offset %d", ErrMalformedVarint, offset)
	}
	tag := buf[offset]
	rest := buf[offset+1:]

	var (
		value uint64
		width int
		floor uint64
	)
	switch tag {
	case varintTag16:
		width, floor = 2, varintTag16
		if len(rest) >= width {
			value = uint64(binary.LittleEndian.Uint16(rest))
		}
	case varintTag32:
		width, floor = 4, math.MaxUint16+1
		if len(rest) >= width {
			value = uint64(binary.LittleEndian.Uint32(rest))
		}
	case varintTag64:
		width, floor = 8, math.MaxUint32+1
		if len(rest) >= width {
			value = binary.LittleEndian.Uint64(rest)
		}
	default:
		return uint64(tag), 1, nil
	}

	if len(rest) < width {
		return 0, 0, fmt.Errorf("%w: tag %#x needs %d bytes, %d remain", ErrMalformedVarint, tag, width, len(rest))
	}
	if value < floor {
		return 0, 0, fmt.Errorf("%w: non-canonical encoding of %d with tag %#x", ErrMalformedVarint, value, tag)
	}
	return value, 1 + width, nil
}
