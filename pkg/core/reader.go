package core

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"mxa/pkg/codec"
)

// initial payload allocation; larger payloads grow as bytes actually arrive
const maxPayloadPrealloc = 1 << 20

// Reader iterates over the records of an archive stream.
type Reader struct {
	r    io.Reader
	done bool
}

// NewReader reads and verifies the archive magic.
func NewReader(r io.Reader) (*Reader, error) {
	var magic [len(Magic)]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("%w: read magic: %w", ErrInvalidFormat, err)
	}
	if string(magic[:]) != Magic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrInvalidFormat, magic[:])
	}
	return &Reader{r: r}, nil
}

// Next returns the next record, or io.EOF once the terminator was read.
func (r *Reader) Next() (*Record, error) {
	entry, err := r.nextHeader()
	if err != nil {
		return nil, err
	}

	var payload bytes.Buffer
	payload.Grow(int(min(entry.PayloadSize, maxPayloadPrealloc)))
	if _, err := io.CopyN(&payload, r.r, int64(entry.PayloadSize)); err != nil {
		return nil, readError("payload of "+entry.Name, err)
	}

	return &Record{
		Name:    entry.Name,
		Method:  entry.Method,
		Payload: payload.Bytes(),
	}, nil
}

// Skip returns the next record header and discards its payload.
func (r *Reader) Skip() (*Entry, error) {
	entry, err := r.nextHeader()
	if err != nil {
		return nil, err
	}
	if _, err := io.CopyN(io.Discard, r.r, int64(entry.PayloadSize)); err != nil {
		return nil, readError("payload of "+entry.Name, err)
	}
	return entry, nil
}

func (r *Reader) nextHeader() (*Entry, error) {
	if r.done {
		return nil, io.EOF
	}

	var nameLen [1]byte
	if _, err := io.ReadFull(r.r, nameLen[:]); err != nil {
		return nil, readError("name length", err)
	}
	if nameLen[0] == 0 {
		r.done = true
		return nil, io.EOF
	}

	name := make([]byte, nameLen[0])
	if _, err := io.ReadFull(r.r, name); err != nil {
		return nil, readError("name", err)
	}

	var fields [5]byte
	if _, err := io.ReadFull(r.r, fields[:]); err != nil {
		return nil, readError("header of "+string(name), err)
	}

	return &Entry{
		Name:        string(name),
		PayloadSize: binary.LittleEndian.Uint32(fields[:4]),
		Method:      codec.Method(fields[4]),
	}, nil
}
