package core

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"mxa/pkg/codec"
)

func quiet() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

// writeFiles creates the given files below dir and returns their paths in
// the order given by names.
func writeFiles(t *testing.T, dir string, names []string, contents map[string][]byte) []string {
	t.Helper()
	paths := make([]string, 0, len(names))
	for _, name := range names {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, contents[name], 0o644))
		paths = append(paths, p)
	}
	return paths
}

// buildArchive serializes recs with a Writer, bypassing Pack.
func buildArchive(t *testing.T, recs ...Record) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)
	for _, rec := range recs {
		require.NoError(t, w.WriteRecord(rec))
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func writeArchive(t *testing.T, dir string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, "test.mxa")
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func dirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

var allMethods = []codec.Method{codec.MethodNone, codec.MethodRLE, codec.MethodLZLite, codec.MethodLZ4}
