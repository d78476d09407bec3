package codec

import "fmt"

const (
	RLEMarker byte = 0xFF
	RLEMaxRun      = 255

	// runs shorter than this are cheaper as literals
	rleMinRun = 3
)

// RLE collapses runs of identical bytes into [marker, value, count] codewords.
//
// A lone marker byte is escaped as [marker, 0x00], and a run of 2..255 marker
// bytes as [marker, marker, count]. Runs of 0x00 are always written literally
// because [marker, 0x00, ...] already means an escaped marker.
type RLE struct {
	Limits
}

func (RLE) Method() Method { return MethodRLE }

func (c RLE) Encode(src []byte) ([]byte, error) {
	dst := make([]byte, 0, len(src))
	for pos := 0; pos < len(src); {
		value := src[pos]
		run := runLength(src, pos)

		switch {
		case value == RLEMarker && run == 1:
			dst = append(dst, RLEMarker, 0x00)
		case value == RLEMarker, value != 0x00 && run >= rleMinRun:
			dst = append(dst, RLEMarker, value, byte(run))
		default:
			for i := 0; i < run; i++ {
				dst = append(dst, value)
			}
		}
		if exceeds(c.MaxEncoded, len(dst)) {
			return nil, encodeOverflow(MethodRLE, c.MaxEncoded)
		}
		pos += run
	}
	return dst, nil
}

func (c RLE) Decode(src []byte) ([]byte, error) {
	dst := make([]byte, 0, len(src))
	for pos := 0; pos < len(src); {
		start := pos
		b := src[pos]
		pos++

		if b != RLEMarker {
			if exceeds(c.MaxDecoded, len(dst)+1) {
				return nil, decodeOverflow(MethodRLE, c.MaxDecoded)
			}
			dst = append(dst, b)
			continue
		}

		if pos >= len(src) {
			return nil, truncated(MethodRLE, start)
		}
		value := src[pos]
		pos++
		if value == 0x00 {
			if exceeds(c.MaxDecoded, len(dst)+1) {
				return nil, decodeOverflow(MethodRLE, c.MaxDecoded)
			}
			dst = append(dst, RLEMarker)
			continue
		}

		if pos >= len(src) {
			return nil, truncated(MethodRLE, start)
		}
		count := int(src[pos])
		pos++
		if count == 0 {
			return nil, fmt.Errorf("%w: zero-length run at offset %d", ErrInvalidEncoding, start)
		}
		if exceeds(c.MaxDecoded, len(dst)+count) {
			return nil, decodeOverflow(MethodRLE, c.MaxDecoded)
		}
		for i := 0; i < count; i++ {
			dst = append(dst, value)
		}
	}
	return dst, nil
}

// runLength counts identical bytes starting at pos, capped at RLEMaxRun.
func runLength(src []byte, pos int) int {
	n := 1
	for pos+n < len(src) && n < RLEMaxRun && src[pos+n] == src[pos] {
		n++
	}
	return n
}
