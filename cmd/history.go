package cmd

import (
	"fmt"

	"github.com/hance08/pointsbot/internal/ui/views"
	"github.com/spf13/cobra"
)

type historyFlags struct {
	Limit  int
	Offset int
}

type historyRunner struct {
	rt    *runtime
	flags *historyFlags
}

func NewHistoryCmd(rt *runtime) *cobra.Command {
	flags := &historyFlags{}

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"hs"},
		Short:   "List recent point transfers (alias: hs)",
		Long: `List recent point transfers, newest first.

Unlike the !history chat command this is not capped, so it can page
through the whole ledger with --offset.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &historyRunner{rt: rt, flags: flags}
			return runner.Run(cmd)
		},
	}

	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 20, "Maximum number of transfers to display")
	cmd.Flags().IntVarP(&flags.Offset, "offset", "o", 0, "Number of transfers to skip")

	return cmd
}

func (r *historyRunner) Run(cmd *cobra.Command) error {
	application, cleanup, err := r.rt.openApp()
	if err != nil {
		return err
	}
	defer cleanup()

	actions, err := application.Ledger.History(cmd.Context(), r.flags.Limit, r.flags.Offset)
	if err != nil {
		return fmt.Errorf("failed to get transactions: %w", err)
	}

	return views.NewHistoryView(application.Config.Bot.CurrencySymbol).Render(actions, r.flags.Limit)
}
