// Command arrayqueue walks through the ArrayQueue operations and prints each result.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/arrayqueue/internal/demo"
	"github.com/huynhanx03/arrayqueue/pkg/logger"
	"github.com/huynhanx03/arrayqueue/pkg/settings"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := settings.Default()

	cmd := &cobra.Command{
		Use:           "arrayqueue",
		Short:         "Run the array-backed FIFO queue demonstration",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				cmd.PrintErrln(err)
				return err
			}

			log, err := logger.New(&cfg.Logger)
			if err != nil {
				cmd.PrintErrln(err)
				return err
			}
			defer func() { _ = log.Sync() }()

			if err := demo.Run(cfg.Queue.InitialCapacity, log, cmd.OutOrStdout()); err != nil {
				log.Error("demo failed", zap.Error(err))
				return err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.Queue.InitialCapacity, "capacity", cfg.Queue.InitialCapacity, "initial backing capacity")
	flags.StringVar(&cfg.Logger.LogLevel, "log-level", cfg.Logger.LogLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&cfg.Logger.FileLogName, "log-file", cfg.Logger.FileLogName, "also write JSON logs to this rotated file")

	return cmd
}
