package core

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"mxa/pkg/codec"
	"mxa/pkg/progress"
)

// UnpackOptions configures a single Unpack call.
type UnpackOptions struct {
	OutputDir string            // Directory records are restored into; defaults to "."
	MaxOutput int               // Decoded size bound per record; 0 means unbounded
	Logger    *zerolog.Logger   // Defaults to the global zerolog logger
	Progress  *progress.Tracker // Optional, counts archive bytes
}

func (o UnpackOptions) outputDir() string {
	if o.OutputDir == "" {
		return "."
	}
	return o.OutputDir
}

func (o UnpackOptions) maxOutput() int {
	return max(o.MaxOutput, 0)
}

// Unpack restores every record of the archive at archivePath.
//
// Records whose name is unsafe or whose output file cannot be created are
// skipped. A bad header, a truncated record, an unknown codec or a payload
// that fails to decode aborts the run; files restored before that stay on
// disk.
func Unpack(ctx context.Context, archivePath string, opts UnpackOptions) (*UnpackResult, error) {
	logger := loggerOrDefault(opts.Logger)
	result := &UnpackResult{}

	f, err := os.Open(archivePath)
	if err != nil {
		return result, fmt.Errorf("%w: open %s: %w", ErrInvalidFormat, archivePath, err)
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil {
		opts.Progress.Start(uint64(info.Size()))
		defer opts.Progress.Stop()
	}

	ar, err := NewReader(bufio.NewReader(&progress.Reader{R: f, T: opts.Progress}))
	if err != nil {
		return result, fmt.Errorf("%s: %w", archivePath, err)
	}
	logger.Debug().Str("archive", archivePath).Msg("extracting")

	outDir := opts.outputDir()
	limits := codec.Limits{MaxDecoded: opts.maxOutput()}

	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		rec, err := ar.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return result, err
		}

		extracted, err := extractRecord(rec, outDir, limits, logger)
		if err != nil {
			return result, err
		}
		if !extracted {
			result.Skipped = append(result.Skipped, rec.Name)
			continue
		}
		result.Extracted = append(result.Extracted, rec.Name)
	}

	logger.Info().
		Str("archive", archivePath).
		Int("extracted", len(result.Extracted)).
		Int("skipped", len(result.Skipped)).
		Msg("extraction complete")
	return result, nil
}

// extractRecord decodes rec and writes it below outDir. It reports false when
// the record was skipped.
func extractRecord(rec *Record, outDir string, limits codec.Limits, logger *zerolog.Logger) (bool, error) {
	if err := checkExtractName(rec.Name); err != nil {
		logger.Warn().Err(err).Msg("skipping record")
		return false, nil
	}

	c, err := codec.New(rec.Method, limits)
	if err != nil {
		return false, fmt.Errorf("%s: %w", rec.Name, err)
	}
	data, err := c.Decode(rec.Payload)
	if err != nil {
		return false, fmt.Errorf("decode %s: %w", rec.Name, err)
	}

	dest := filepath.Join(outDir, rec.Name)
	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		logger.Warn().Err(err).Str("file", rec.Name).Msg("cannot create output file, skipping")
		return false, nil
	}

	if _, err := out.Write(data); err != nil {
		out.Close()
		return false, fmt.Errorf("%w: write %s: %w", ErrIO, dest, err)
	}
	if err := out.Close(); err != nil {
		return false, fmt.Errorf("%w: close %s: %w", ErrIO, dest, err)
	}

	logger.Info().
		Str("file", rec.Name).
		Int("size", len(data)).
		Stringer("codec", rec.Method).
		Msg("extracted")
	return true, nil
}
