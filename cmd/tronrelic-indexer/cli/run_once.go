package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func RunOnceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run-once",
		Short: "Runs a single market aggregation and exits",
		Args:  cobra.ExactArgs(0),
		RunE:  runOnce,
	}

	return cmd
}

func runOnce(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close(ctx)

	if err := a.service.RefreshChainParameters(ctx); err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("chain parameters refresh failed, using persisted values")
	}
	return a.service.RunAggregation(ctx)
}
