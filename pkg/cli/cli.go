// Package cli implements the mxa command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// runError marks a failure of the operation itself, as opposed to a
// malformed command line.
type runError struct{ err error }

func (e *runError) Error() string { return e.err.Error() }
func (e *runError) Unwrap() error { return e.err }

func failed(err error) error {
	if err == nil {
		return nil
	}
	return &runError{err: err}
}

// app holds the state shared by the commands of one Run.
type app struct {
	stdout   io.Writer
	stderr   io.Writer
	logLevel string
	logger   zerolog.Logger
}

// Run executes the command line in args and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, logger: zerolog.Nop()}
	root := newRootCmd(a)
	if args == nil {
		args = []string{} // cobra falls back to os.Args on nil
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return ExitOK
	}

	var re *runError
	if errors.As(err, &re) {
		fmt.Fprintf(stderr, "Error: %v\n", re.err)
		return ExitError
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	fmt.Fprint(stderr, cmd.UsageString())
	return ExitUsage
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "mxa",
		Short:         "Pack and unpack MXA archives",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := ParseLogLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.logger = newLogger(a.stderr, level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("a command is required")
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", defaultLogLevel(),
		"Log level: debug, info, warn, error or disabled (env "+LogLevelEnv+")")

	root.AddCommand(newPackCmd(a), newUnpackCmd(a), newListCmd(a))
	return root
}
