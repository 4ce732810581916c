package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "check [file|url|program|-]",
		Short: "Validate a program without running it",
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

			commands, loops, depth := prog.Stats()
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d commands, %d loops, max depth %d\n", commands, loops, depth)
			return err
		},
	}
}
