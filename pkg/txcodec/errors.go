package txcodec

import "errors"

var (
	// ErrMalformedVarint reports a truncated or non-minimal variable-length integer.
	ErrMalformedVarint = errors.New("malformed varint")
	// ErrUnexpectedEndOfBuffer reports a fixed-width field that runs past the end of the buffer.
	ErrUnexpectedEndOfBuffer = errors.New("unexpected end of buffer")
	// ErrInvalidTransaction reports a structural failure while decoding a transaction.
	ErrInvalidTransaction = errors.New("invalid transaction format")
	// ErrInvalidScript reports a script whose declared length exceeds the remaining buffer.
	ErrInvalidScript = errors.New("invalid script format")
)
