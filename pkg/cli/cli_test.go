package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mxa/pkg/core"
)

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = Run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"off", zerolog.Disabled},
		{"none", zerolog.Disabled},
	}
	for _, tt := range tests {
		got, err := ParseLogLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLogLevel("loud")
	assert.ErrorContains(t, err, "invalid log level")
}

func TestPackUnpackRoundTrip(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("hello hello hello"), 0o644))
	require.NoError(t, os.WriteFile(b, bytes.Repeat([]byte{0xFF}, 40), 0o644))
	archive := filepath.Join(dir, "out.mxa")

	for _, flag := range []string{"-n", "-m", "-d", "-z"} {
		t.Run(flag, func(t *testing.T) {
			code, _, stderr := run(t, "--log-level=disabled", "pack", flag, archive, a, b)
			require.Equal(t, ExitOK, code, stderr)

			outDir := t.TempDir()
			code, _, stderr = run(t, "--log-level=disabled", "unpack", "-o", outDir, archive)
			require.Equal(t, ExitOK, code, stderr)

			for _, src := range []string{a, b} {
				want, err := os.ReadFile(src)
				require.NoError(t, err)
				got, err := os.ReadFile(filepath.Join(outDir, filepath.Base(src)))
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}
		})
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(file, []byte("some notes"), 0o644))
	archive := filepath.Join(dir, "list.mxa")

	code, _, stderr := run(t, "--log-level=disabled", "pack", "-m", archive, file)
	require.Equal(t, ExitOK, code, stderr)

	code, stdout, _ := run(t, "--log-level=disabled", "list", archive)
	require.Equal(t, ExitOK, code)
	assert.Contains(t, stdout, "notes.txt")
	assert.Contains(t, stdout, "RLE")
}

func TestUsageErrors(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "x.mxa")

	tests := []struct {
		name string
		args []string
	}{
		{"no command", nil},
		{"unknown command", []string{"explode"}},
		{"pack without files", []string{"pack", archive}},
		{"conflicting codecs", []string{"pack", "-m", "-d", archive, "f"}},
		{"unknown flag", []string{"unpack", "--frobnicate", archive}},
		{"unpack without archive", []string{"unpack"}},
		{"bad log level", []string{"--log-level=loud", "list", archive}},
		{"bad max output", []string{"unpack", "--max-output=lots", archive}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := run(t, tt.args...)
			assert.Equal(t, ExitUsage, code)
			assert.Contains(t, stderr, "Error:")
			assert.Contains(t, stderr, "Usage:")
		})
	}
	assert.NoFileExists(t, archive)
}

func TestFatalErrors(t *testing.T) {
	dir := t.TempDir()

	code, _, stderr := run(t, "--log-level=disabled", "unpack", filepath.Join(dir, "missing.mxa"))
	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, core.ErrInvalidFormat.Error())
	assert.NotContains(t, stderr, "Usage:")

	code, _, _ = run(t, "--log-level=disabled", "pack", filepath.Join(dir, "a.mxa"), filepath.Join(dir, "nope"))
	assert.Equal(t, ExitError, code)

	// the aborted archive has no terminator
	code, _, _ = run(t, "--log-level=disabled", "list", filepath.Join(dir, "a.mxa"))
	assert.Equal(t, ExitError, code)
}

func TestPackSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("f"), 0o644))
	archive := filepath.Join(dir, "skip.mxa")

	code, _, stderr := run(t, "--log-level=warn", "pack", archive, dir, file)
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, stderr, "skipping")
}

func TestLogLevelFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("f"), 0o644))
	archive := filepath.Join(dir, "env.mxa")

	t.Setenv(LogLevelEnv, "disabled")
	code, _, stderr := run(t, "pack", archive, file)
	require.Equal(t, ExitOK, code)
	assert.Empty(t, stderr)

	t.Setenv(LogLevelEnv, "debug")
	code, _, stderr = run(t, "list", archive)
	require.Equal(t, ExitOK, code)
	assert.Contains(t, stderr, "listed")
}

func TestParseMaxOutput(t *testing.T) {
	n, err := parseMaxOutput("64KiB")
	require.NoError(t, err)
	assert.Equal(t, 64*1024, n)

	n, err = parseMaxOutput("Unlimited")
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = parseMaxOutput("0")
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = parseMaxOutput("1GB")
	require.NoError(t, err)
	assert.Equal(t, 1000*1000*1000, n)
}
