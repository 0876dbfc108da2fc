package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tronrelic/tronrelic-indexer/internal/observability/metrics"
	"github.com/tronrelic/tronrelic-indexer/internal/observability/tracing"
)

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the market aggregator and the chain observers",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	ctx = tracing.InjectTraceID(ctx)

	// initialize metrics with the metrics port from config
	metrics.Init(a.cfg.Metrics.GetMetricsPort())

	a.service.StartServer(ctx)
	log.Ctx(ctx).Info().Int("markets", len(a.cfg.Markets)).Msg("indexer started")

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := a.service.StopObservers(shutdownCtx); err != nil {
		log.Ctx(shutdownCtx).Error().Err(err).Msg("observers did not stop cleanly")
	}
	a.close(shutdownCtx)
	return nil
}
