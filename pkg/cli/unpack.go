package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"mxa/pkg/core"
	"mxa/pkg/progress"
)

func newUnpackCmd(a *app) *cobra.Command {
	var (
		outputDir string
		maxOutput string
	)

	cmd := &cobra.Command{
		Use:   "unpack [-o DIR] <archive>",
		Short: "Restore the files stored in an archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := parseMaxOutput(maxOutput)
			if err != nil {
				return err
			}
			_, err = core.Unpack(cmd.Context(), args[0], core.UnpackOptions{
				OutputDir: outputDir,
				MaxOutput: limit,
				Logger:    &a.logger,
				Progress:  progress.New("unpack", a.logger),
			})
			return failed(err)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Directory to restore files into")
	cmd.Flags().StringVar(&maxOutput, "max-output", "unlimited",
		`Largest decoded size accepted per file, e.g. "64MiB", or "unlimited"`)
	return cmd
}

// parseMaxOutput accepts sizes such as "64MiB" or "2GB". Zero and
// "unlimited" disable the bound.
func parseMaxOutput(s string) (int, error) {
	if strings.EqualFold(s, "unlimited") {
		return 0, nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid --max-output: %w", err)
	}
	if n > math.MaxInt {
		return 0, nil
	}
	return int(n), nil
}
