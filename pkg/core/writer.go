package core

import (
	"encoding/binary"
	"fmt"
	"io"

	"mxa/pkg/codec"
)

// Writer appends records to an archive stream.
type Writer struct {
	w      io.Writer
	closed bool
}

// NewWriter writes the archive magic to w.
func NewWriter(w io.Writer) (*Writer, error) {
	if _, err := io.WriteString(w, Magic); err != nil {
		return nil, fmt.Errorf("%w: write magic: %w", ErrIO, err)
	}
	return &Writer{w: w}, nil
}

// WriteRecord appends rec. The payload must already be encoded with
// rec.Method.
func (w *Writer) WriteRecord(rec Record) error {
	if w.closed {
		return ErrWriterClosed
	}
	if err := validateName(rec.Name); err != nil {
		return err
	}
	if uint64(len(rec.Payload)) > MaxPayloadSize {
		return fmt.Errorf("%w: %s payload of %d bytes does not fit the size field",
			codec.ErrEncodeOverflow, rec.Name, len(rec.Payload))
	}

	header := make([]byte, 0, 1+len(rec.Name)+4+1)
	header = append(header, byte(len(rec.Name)))
	header = append(header, rec.Name...)
	header = binary.LittleEndian.AppendUint32(header, uint32(len(rec.Payload)))
	header = append(header, byte(rec.Method))

	if _, err := w.w.Write(header); err != nil {
		return fmt.Errorf("%w: write header for %s: %w", ErrIO, rec.Name, err)
	}
	if _, err := w.w.Write(rec.Payload); err != nil {
		return fmt.Errorf("%w: write payload for %s: %w", ErrIO, rec.Name, err)
	}
	return nil
}

// Close writes the terminator. It does not close the underlying writer.
func (w *Writer) Close() error {
	if w.closed {
		return ErrWriterClosed
	}
	w.closed = true
	if _, err := w.w.Write([]byte{0x00}); err != nil {
		return fmt.Errorf("%w: write terminator: %w", ErrIO, err)
	}
	return nil
}
