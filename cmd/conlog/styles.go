package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/formatter"
)

func newStylesCmd(opts *options, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "Show every configured style",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			out, err := cfg.NewOutput(stdout)
			if err != nil {
				return err
			}
			opts.apply(out)
			out.SetVerbosity(core.VerbosityDebug)

			for _, name := range out.Styles().Names() {
				if err := out.WriteLine(formatter.Wrap(name, name)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
