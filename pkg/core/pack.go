package core

import (
	"bufio"
	"context"
	"fmt"
	"math"
	"os"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog"

	"mxa/pkg/codec"
	"mxa/pkg/progress"
)

// PackOptions configures a single Pack call.
type PackOptions struct {
	Method     codec.Method      // Codec applied to every input
	MaxPayload int               // Largest encoded payload accepted; 0 means MaxPayloadSize
	Logger     *zerolog.Logger   // Defaults to the global zerolog logger
	Progress   *progress.Tracker // Optional, counts input bytes
}

func (o PackOptions) maxPayload() int {
	if o.MaxPayload > 0 {
		return o.MaxPayload
	}
	return int(min(uint64(MaxPayloadSize), uint64(math.MaxInt)))
}

// Pack writes inputs, in order, into a new archive at archivePath.
//
// Inputs that are not regular files are skipped. Every other failure aborts
// the run and leaves the partially written archive on disk. The returned
// result is never nil and lists what was processed before any failure.
func Pack(ctx context.Context, archivePath string, inputs []string, opts PackOptions) (*PackResult, error) {
	logger := loggerOrDefault(opts.Logger)
	result := &PackResult{}

	c, err := codec.New(opts.Method, codec.Limits{MaxEncoded: opts.maxPayload()})
	if err != nil {
		return result, err
	}

	f, err := os.OpenFile(archivePath, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return result, fmt.Errorf("%w: open archive: %w", ErrIO, err)
	}
	defer f.Close()

	lock := flock.New(archivePath)
	locked, err := lock.TryLock()
	if err != nil {
		return result, fmt.Errorf("%w: lock archive: %w", ErrIO, err)
	}
	if !locked {
		return result, fmt.Errorf("%w: %s", ErrArchiveBusy, archivePath)
	}
	defer lock.Unlock()

	if err := f.Truncate(0); err != nil {
		return result, fmt.Errorf("%w: truncate archive: %w", ErrIO, err)
	}

	bw := bufio.NewWriter(f)
	aw, err := NewWriter(bw)
	if err != nil {
		return result, err
	}

	opts.Progress.Start(calculateTotalSize(inputs))
	defer opts.Progress.Stop()

	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		packed, err := packFile(aw, c, input, logger, opts.Progress)
		if err != nil {
			return result, err
		}
		if !packed {
			result.Skipped = append(result.Skipped, input)
			continue
		}
		result.Packed = append(result.Packed, input)
	}

	if err := aw.Close(); err != nil {
		return result, err
	}
	if err := bw.Flush(); err != nil {
		return result, fmt.Errorf("%w: flush archive: %w", ErrIO, err)
	}
	if err := f.Close(); err != nil {
		return result, fmt.Errorf("%w: close archive: %w", ErrIO, err)
	}

	logger.Info().
		Str("archive", archivePath).
		Int("packed", len(result.Packed)).
		Int("skipped", len(result.Skipped)).
		Msg("archive created")
	return result, nil
}

// packFile appends one input to the archive. It reports false when the input
// was skipped because it is not a regular file.
func packFile(aw *Writer, c codec.Codec, input string, logger *zerolog.Logger, tracker *progress.Tracker) (bool, error) {
	name, err := baseName(input)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(input)
	if err != nil {
		return false, fmt.Errorf("%w: stat %s: %w", ErrIO, input, err)
	}
	if !info.Mode().IsRegular() {
		logger.Warn().Str("file", input).Msg("not a regular file, skipping")
		return false, nil
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return false, fmt.Errorf("%w: read %s: %w", ErrIO, input, err)
	}

	payload, err := c.Encode(data)
	if err != nil {
		return false, fmt.Errorf("encode %s: %w", input, err)
	}

	if err := aw.WriteRecord(Record{Name: name, Method: c.Method(), Payload: payload}); err != nil {
		return false, err
	}

	logger.Info().
		Str("file", name).
		Int("original", len(data)).
		Int("stored", len(payload)).
		Stringer("codec", c.Method()).
		Msg("packed")
	tracker.Add(uint64(len(data)))
	return true, nil
}

// calculateTotalSize sums the sizes of the inputs that can be stat'ed.
func calculateTotalSize(inputs []string) uint64 {
	var total uint64
	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		total += uint64(info.Size())
	}
	return total
}
