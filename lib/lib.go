// Package lib provides command-style entry points for embedding mxa in a
// host shell. Each call takes the arguments that follow the command name and
// returns 0 on success or 1 on any failure, including a malformed command
// line. The mxa binary reports the latter as 2 instead.
// This package re-exports the archive magic and codec tags.
package lib

import (
	"context"
	"io"
	"os"

	"mxa/pkg/cli"
	"mxa/pkg/codec"
	"mxa/pkg/core"
)

// Magic identifies an archive, re-exported from core
const Magic = core.Magic

// Method re-exported from codec
type Method = codec.Method

// Re-export codec tags
const (
	MethodNone   = codec.MethodNone
	MethodRLE    = codec.MethodRLE
	MethodLZLite = codec.MethodLZLite
	MethodLZ4    = codec.MethodLZ4
)

// Pack runs "mxa pack args...", e.g. Pack([]string{"-m", "out.mxa", "a.txt"}).
func Pack(args []string) int {
	return PackContext(context.Background(), args, os.Stdout, os.Stderr)
}

// Unpack runs "mxa unpack args...".
func Unpack(args []string) int {
	return UnpackContext(context.Background(), args, os.Stdout, os.Stderr)
}

// PackContext is Pack with an explicit context and output streams.
func PackContext(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return status(cli.Run(ctx, withCommand("pack", args), stdout, stderr))
}

// UnpackContext is Unpack with an explicit context and output streams.
func UnpackContext(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return status(cli.Run(ctx, withCommand("unpack", args), stdout, stderr))
}

// status folds the CLI exit codes into the 0/1 convention of shell commands.
func status(code int) int {
	if code == cli.ExitOK {
		return 0
	}
	return 1
}

func withCommand(name string, args []string) []string {
	return append([]string{name}, args...)
}
