package commands

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/robbyt/go-bfscript/engines/brainfuck/runtime"
)

const (
	formatText   = "text"
	formatValues = "values"
	formatHex    = "hex"
)

type config struct {
	logLevel   string
	logHandler slog.Handler
	timeout    time.Duration

	tapeSize  int
	byteCells bool
	format    string
	flat      bool
}

func (c *config) runtimeOptions() []runtime.Option {
	opts := []runtime.Option{runtime.WithTapeSize(c.tapeSize)}
	if c.byteCells {
		opts = append(opts, runtime.WithCellMode(runtime.Byte))
	}
	return opts
}

func withLogLevel(cmd *cobra.Command, cfg *config) {
	cmd.PersistentFlags().StringVar(&cfg.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
}

func withTimeout(cmd *cobra.Command, cfg *config) {
	cmd.PersistentFlags().DurationVar(&cfg.timeout, "timeout", 30*time.Second, "timeout for fetching programs over http")
}

func withTape(cmd *cobra.Command, cfg *config) {
	cmd.Flags().IntVar(&cfg.tapeSize, "tape-size", runtime.DefaultTapeSize, "number of cells on the tape")
	cmd.Flags().BoolVar(&cfg.byteCells, "byte-cells", false, "wrap cell values to 0..255")
}

func withFormat(cmd *cobra.Command, cfg *config) {
	cmd.Flags().StringVar(&cfg.format, "format", formatText, "output format: text, values or hex")
}

func withFlat(cmd *cobra.Command, cfg *config) {
	cmd.Flags().BoolVar(&cfg.flat, "flat", false, "print the canonical token stream instead of the tree")
}
