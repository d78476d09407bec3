package core

import (
	"errors"
	"fmt"
	"io"
)

var (
	ErrIO               = errors.New("i/o error")
	ErrInvalidFormat    = errors.New("not a valid mxa archive")
	ErrTruncatedArchive = errors.New("truncated archive")
	ErrInvalidName      = errors.New("invalid file name")
	ErrUnsafeName       = errors.New("unsafe file name")
	ErrArchiveBusy      = errors.New("archive is locked by another writer")
	ErrWriterClosed     = errors.New("archive writer already closed")
)

// readError classifies a failed read of the named field: a short read is a
// truncated archive, anything else an I/O failure.
func readError(field string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: reading %s", ErrTruncatedArchive, field)
	}
	return fmt.Errorf("%w: read %s: %w", ErrIO, field, err)
}
