package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"mxa/pkg/core"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list <archive>",
		Short: "List the records of an archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := core.List(cmd.Context(), args[0])
			if err != nil {
				return failed(err)
			}
			out := cmd.OutOrStdout()
			for _, e := range entries {
				fmt.Fprintf(out, "%-8s %10s  %s\n", e.Method, humanize.IBytes(uint64(e.PayloadSize)), e.Name)
			}
			a.logger.Debug().Int("records", len(entries)).Str("archive", args[0]).Msg("listed")
			return nil
		},
	}
}
