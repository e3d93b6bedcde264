package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/redlight/internal/server"
)

var flagHealthAddr string

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Run only the health endpoint",
	Long: `Serve GET /api/health without the game, for probes and deployments.

Examples:
  redlight health
  redlight health --http :9090`,
	Args: cobra.NoArgs,
	RunE: runHealth,
}

func init() {
	healthCmd.Flags().StringVar(&flagHealthAddr, "http", ":8080", "Health endpoint address")
}

func runHealth(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "redlight-http")
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(flagHealthAddr, logger).Run(ctx)
}
