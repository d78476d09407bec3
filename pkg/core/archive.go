// Package core reads and writes MXA archives.
//
// An archive is the 4-byte Magic followed by records and a terminator:
//
//	NameLength  1 byte             0 marks the terminator
//	Name        NameLength bytes   base name, raw bytes
//	PayloadSize 4 bytes            little-endian uint32
//	Method      1 byte             codec.Method of the payload
//	Payload     PayloadSize bytes
//
// Records are read strictly in order; there is no index.
package core

import (
	"math"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"mxa/pkg/codec"
)

// Constants for archive format
const (
	Magic          = "MXA\x00" // Magic number to identify the archive
	MaxNameLength  = 255
	MaxPayloadSize = math.MaxUint32
)

// Record is one packed file as stored in the archive.
type Record struct {
	Name    string       // Base name, no directory part
	Method  codec.Method // Codec the payload was encoded with
	Payload []byte       // Encoded content
}

// Entry describes a record without its payload.
type Entry struct {
	Name        string
	Method      codec.Method
	PayloadSize uint32
}

// PackResult lists the inputs Pack stored and the ones it skipped.
type PackResult struct {
	Packed  []string
	Skipped []string
}

// UnpackResult lists the records Unpack restored and the ones it skipped.
type UnpackResult struct {
	Extracted []string
	Skipped   []string
}

func loggerOrDefault(l *zerolog.Logger) *zerolog.Logger {
	if l != nil {
		return l
	}
	return &log.Logger
}
