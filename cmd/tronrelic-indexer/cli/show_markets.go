package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func ShowMarketsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show-markets",
		Short: "Prints the ranked active markets as json",
		Args:  cobra.ExactArgs(0),
		RunE:  showMarkets,
	}

	cmd.Flags().Int("limit", 0, "Print only the first n markets, 0 prints all")

	return cmd
}

func showMarkets(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close(ctx)

	docs, err := a.service.GetRankedMarkets(ctx)
	if err != nil {
		return err
	}
	if limit > 0 && len(docs) > limit {
		docs = docs[:limit]
	}

	out, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode markets: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
