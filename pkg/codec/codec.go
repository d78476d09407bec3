// Package codec implements the byte-stream codecs an archive record can be
// stored with. Every codec works on whole in-memory buffers and grows its
// output as needed; Limits only exist to cap what a caller is willing to hold.
package codec

import (
	"fmt"
	"strings"
)

// Method is the one-byte codec tag stored with every archive record.
type Method byte

const (
	MethodNone   Method = 0x00 // stored as-is
	MethodRLE    Method = 0x01 // run-length encoding, marker 0xFF
	MethodLZLite Method = 0x02 // 255-byte window back-references, marker 0xFD
	MethodLZ4    Method = 0x03 // one LZ4 frame
)

// String returns the name used in logs and listings.
func (m Method) String() string {
	switch m {
	case MethodNone:
		return "NONE"
	case MethodRLE:
		return "RLE"
	case MethodLZLite:
		return "LZ_LITE"
	case MethodLZ4:
		return "LZ4"
	default:
		return fmt.Sprintf("UNKNOWN(0x%02x)", byte(m))
	}
}

// ParseMethod maps a user supplied codec name to its Method.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "":
		return MethodNone, nil
	case "rle":
		return MethodRLE, nil
	case "lzlite", "lz_lite", "lz-lite":
		return MethodLZLite, nil
	case "lz4":
		return MethodLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

// Limits caps the size of codec output. Zero means unlimited.
type Limits struct {
	MaxEncoded int
	MaxDecoded int
}

// Codec transforms a whole buffer to and from its stored representation.
type Codec interface {
	Method() Method
	Encode(src []byte) ([]byte, error)
	Decode(src []byte) ([]byte, error)
}

// New returns the codec registered for m.
func New(m Method, limits Limits) (Codec, error) {
	switch m {
	case MethodNone:
		return None{Limits: limits}, nil
	case MethodRLE:
		return RLE{Limits: limits}, nil
	case MethodLZLite:
		return LZLite{Limits: limits}, nil
	case MethodLZ4:
		return LZ4{Limits: limits}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, m)
	}
}

// None stores content unchanged.
type None struct {
	Limits
}

func (None) Method() Method { return MethodNone }

func (c None) Encode(src []byte) ([]byte, error) {
	if exceeds(c.MaxEncoded, len(src)) {
		return nil, encodeOverflow(MethodNone, c.MaxEncoded)
	}
	return src, nil
}

func (c None) Decode(src []byte) ([]byte, error) {
	if exceeds(c.MaxDecoded, len(src)) {
		return nil, decodeOverflow(MethodNone, c.MaxDecoded)
	}
	return src, nil
}

func exceeds(limit, n int) bool {
	return limit > 0 && n > limit
}
