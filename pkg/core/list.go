package core

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// List returns the record headers of the archive at archivePath without
// decoding any payload.
func List(ctx context.Context, archivePath string) ([]Entry, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrInvalidFormat, archivePath, err)
	}
	defer f.Close()

	ar, err := NewReader(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", archivePath, err)
	}

	var entries []Entry
	for {
		if err := ctx.Err(); err != nil {
			return entries, err
		}
		entry, err := ar.Skip()
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return entries, err
		}
		entries = append(entries, *entry)
	}
}
