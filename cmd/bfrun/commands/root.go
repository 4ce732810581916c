package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the bfrun command tree.
func NewRootCmd() *cobra.Command {
	cfg := &config{}

	rootCmd := &cobra.Command{
		Use:           "bfrun",
		Short:         "bfrun compiles and runs tape programs written with > < + - . [ ]",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(cfg.logLevel)); err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", cfg.logLevel, err)
			}
			cfg.logHandler = slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			return nil
		},
	}
	withLogLevel(rootCmd, cfg)
	withTimeout(rootCmd, cfg)

	rootCmd.AddCommand(newRunCmd(cfg), newCheckCmd(cfg), newDumpCmd(cfg))
	return rootCmd
}

// Execute runs bfrun and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
