package cmd

import (
	"fmt"

	"github.com/hance08/pointsbot/internal/ui/views"
	"github.com/spf13/cobra"
)

type leaderboardFlags struct {
	Limit  int
	Offset int
}

type leaderboardRunner struct {
	rt    *runtime
	flags *leaderboardFlags
}

func NewLeaderboardCmd(rt *runtime) *cobra.Command {
	flags := &leaderboardFlags{}

	cmd := &cobra.Command{
		Use:     "leaderboard",
		Aliases: []string{"lb"},
		Short:   "Show the users with the most points (alias: lb)",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &leaderboardRunner{rt: rt, flags: flags}
			return runner.Run(cmd)
		},
	}

	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 10, "Maximum number of users to display")
	cmd.Flags().IntVarP(&flags.Offset, "offset", "o", 0, "Number of users to skip")

	return cmd
}

func (r *leaderboardRunner) Run(cmd *cobra.Command) error {
	application, cleanup, err := r.rt.openApp()
	if err != nil {
		return err
	}
	defer cleanup()

	balances, err := application.Ledger.Leaderboard(cmd.Context(), r.flags.Limit, r.flags.Offset)
	if err != nil {
		return fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return views.NewLeaderboardView(application.Config.Bot.CurrencySymbol).Render(balances, r.flags.Offset)
}
