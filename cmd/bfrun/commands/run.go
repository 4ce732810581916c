package commands

import (
	"github.com/spf13/cobra"

	"github.com/robbyt/go-bfscript"
)

func newRunCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [file|url|program|-]",
		Short: "Compile and execute a program, printing its output",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(cfg.format); err != nil {
				return err
			}

			ldr, err := openLoader(args, cmd.InOrStdin(), cfg)
			if err != nil {
				return err
			}

			e, err := bfscript.FromLoader(ldr, cfg.logHandler, cfg.runtimeOptions()...)
			if err != nil {
				return err
			}

			resp, evalErr := e.Eval(cmd.Context())
			if resp != nil {
				if err := render(cmd.OutOrStdout(), resp, cfg.format); err != nil {
					return err
				}
			}
			return evalErr
		},
	}
	withTape(cmd, cfg)
	withFormat(cmd, cfg)
	return cmd
}
