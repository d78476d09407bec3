package codec

import (
	"errors"
	"fmt"
)

var (
	ErrTruncatedInput  = errors.New("truncated codeword")
	ErrInvalidEncoding = errors.New("invalid encoding")
	ErrInvalidOffset   = errors.New("back-reference before start of output")
	ErrEncodeOverflow  = errors.New("encoded output exceeds limit")
	ErrDecodeOverflow  = errors.New("decoded output exceeds limit")
	ErrUnknownMethod   = errors.New("unknown codec")
)

func encodeOverflow(m Method, limit int) error {
	return fmt.Errorf("%w: %s output larger than %d bytes", ErrEncodeOverflow, m, limit)
}

func decodeOverflow(m Method, limit int) error {
	return fmt.Errorf("%w: %s output larger than %d bytes", ErrDecodeOverflow, m, limit)
}

func truncated(m Method, offset int) error {
	return fmt.Errorf("%w: %s marker at offset %d", ErrTruncatedInput, m, offset)
}
