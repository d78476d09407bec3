package cli

import (
	"github.com/spf13/cobra"

	"mxa/pkg/codec"
	"mxa/pkg/core"
	"mxa/pkg/progress"
)

type packFlags struct {
	none   bool
	rle    bool
	lzlite bool
	lz4    bool
}

func (f packFlags) method() codec.Method {
	switch {
	case f.rle:
		return codec.MethodRLE
	case f.lzlite:
		return codec.MethodLZLite
	case f.lz4:
		return codec.MethodLZ4
	default:
		return codec.MethodNone
	}
}

func newPackCmd(a *app) *cobra.Command {
	var flags packFlags

	cmd := &cobra.Command{
		Use:   "pack [-n|-m|-d|-z] <archive> <file>...",
		Short: "Pack files into a new archive",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := core.Pack(cmd.Context(), args[0], args[1:], core.PackOptions{
				Method:   flags.method(),
				Logger:   &a.logger,
				Progress: progress.New("pack", a.logger),
			})
			return failed(err)
		},
	}

	cmd.Flags().BoolVarP(&flags.none, "none", "n", false, "Store files without compression (default)")
	cmd.Flags().BoolVarP(&flags.rle, "rle", "m", false, "Compress with run-length encoding")
	cmd.Flags().BoolVarP(&flags.lzlite, "lzlite", "d", false, "Compress with LZ-Lite")
	cmd.Flags().BoolVarP(&flags.lz4, "lz4", "z", false, "Compress with LZ4 frames")
	cmd.MarkFlagsMutuallyExclusive("none", "rle", "lzlite", "lz4")
	return cmd
}
