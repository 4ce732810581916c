package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robbyt/go-bfscript/engines/brainfuck/program"
)

func newDumpCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump [file|url|program|-]",
		Short: "Print the compiled instruction tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ldr, err := openLoader(args, cmd.InOrStdin(), cfg)
			if err != nil {
				return err
			}

			prog, err := compileProgram(ldr, cfg)
			if err != nil {
				return err
			}

			if cfg.flat {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), prog.Flatten())
				return err
			}
			return program.Format(cmd.OutOrStdout(), prog)
		},
	}
	withFlat(cmd, cfg)
	return cmd
}
