package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/softsulphur/sulphite/pkg/log"
	"github.com/softsulphur/sulphite/pkg/srv"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the tutoring assistant",
	Long:  `Opens the default session and starts the configured transports (terminal, Telegram).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting sulphite")

		// Define services using the setup.go logic
		services := NewServices(ctx)

		// Start services
		srv.StartServices(ctx, services)

		// Wait for shutdown signal
		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("sulphite has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
