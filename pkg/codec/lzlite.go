package codec

import "fmt"

const (
	LZLiteMarker   byte = 0xFD
	LZLiteWindow        = 255
	LZLiteMinMatch      = 2
	LZLiteMaxMatch      = 16
)

// LZLite replaces repeated sequences with [marker, offset, length] codewords
// pointing back into the last LZLiteWindow bytes. Offset 0 is reserved: a
// literal marker byte is escaped as [marker, 0x00].
//
// A match may overlap the bytes it produces (offset < length), so runs
// compress to a single codeword after their first byte.
type LZLite struct {
	Limits
}

func (LZLite) Method() Method { return MethodLZLite }

func (c LZLite) Encode(src []byte) ([]byte, error) {
	dst := make([]byte, 0, len(src))
	for pos := 0; pos < len(src); {
		length, offset := longestMatch(src, pos)

		switch {
		case length >= LZLiteMinMatch:
			dst = append(dst, LZLiteMarker, byte(offset), byte(length))
			pos += length
		case src[pos] == LZLiteMarker:
			dst = append(dst, LZLiteMarker, 0x00)
			pos++
		default:
			dst = append(dst, src[pos])
			pos++
		}
		if exceeds(c.MaxEncoded, len(dst)) {
			return nil, encodeOverflow(MethodLZLite, c.MaxEncoded)
		}
	}
	return dst, nil
}

// longestMatch scans the window from its oldest byte to its newest and keeps
// the first match of maximal length, so ties go to the most distant offset.
func longestMatch(src []byte, pos int) (length, offset int) {
	start := 0
	if pos > LZLiteWindow {
		start = pos - LZLiteWindow
	}
	for i := start; i < pos; i++ {
		n := 0
		for n < LZLiteMaxMatch && pos+n < len(src) && src[i+n] == src[pos+n] {
			n++
		}
		if n > length {
			length, offset = n, pos-i
			if n == LZLiteMaxMatch {
				break
			}
		}
	}
	return length, offset
}

func (c LZLite) Decode(src []byte) ([]byte, error) {
	dst := make([]byte, 0, len(src)*2)
	for pos := 0; pos < len(src); {
		start := pos
		b := src[pos]
		pos++

		if b != LZLiteMarker {
			if exceeds(c.MaxDecoded, len(dst)+1) {
				return nil, decodeOverflow(MethodLZLite, c.MaxDecoded)
			}
			dst = append(dst, b)
			continue
		}

		if pos >= len(src) {
			return nil, truncated(MethodLZLite, start)
		}
		offset := int(src[pos])
		pos++
		if offset == 0 {
			if exceeds(c.MaxDecoded, len(dst)+1) {
				return nil, decodeOverflow(MethodLZLite, c.MaxDecoded)
			}
			dst = append(dst, LZLiteMarker)
			continue
		}

		if pos >= len(src) {
			return nil, truncated(MethodLZLite, start)
		}
		length := int(src[pos])
		pos++
		if length == 0 {
			return nil, fmt.Errorf("%w: zero-length match at offset %d", ErrInvalidEncoding, start)
		}
		if offset > len(dst) {
			return nil, fmt.Errorf("%w: offset %d with %d bytes produced (codeword at %d)",
				ErrInvalidOffset, offset, len(dst), start)
		}
		if exceeds(c.MaxDecoded, len(dst)+length) {
			return nil, decodeOverflow(MethodLZLite, c.MaxDecoded)
		}

		from := len(dst) - offset
		for i := 0; i < length; i++ {
			dst = append(dst, dst[from+i])
		}
	}
	return dst, nil
}
