package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

// LZ4 stores a record as a single LZ4 frame. Empty content is stored as an
// empty payload rather than an empty frame.
type LZ4 struct {
	Limits
}

func (LZ4) Method() Method { return MethodLZ4 }

func (c LZ4) Encode(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return []byte{}, nil
	}

	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if _, err := zw.Write(src); err != nil {
		return nil, fmt.Errorf("write lz4 frame: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close lz4 frame: %w", err)
	}
	if exceeds(c.MaxEncoded, buf.Len()) {
		return nil, encodeOverflow(MethodLZ4, c.MaxEncoded)
	}
	return buf.Bytes(), nil
}

func (c LZ4) Decode(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return []byte{}, nil
	}

	var r io.Reader = lz4.NewReader(bytes.NewReader(src))
	if c.MaxDecoded > 0 {
		// one extra byte tells "exactly at the limit" apart from "over it"
		r = io.LimitReader(r, int64(c.MaxDecoded)+1)
	}
	dst, err := io.ReadAll(r)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: lz4 frame: %w", ErrTruncatedInput, err)
		}
		return nil, fmt.Errorf("%w: lz4 frame: %w", ErrInvalidEncoding, err)
	}
	if exceeds(c.MaxDecoded, len(dst)) {
		return nil, decodeOverflow(MethodLZ4, c.MaxDecoded)
	}
	return dst, nil
}
