package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/hance08/pointsbot/internal/app"
	"github.com/hance08/pointsbot/internal/bot"
	"github.com/hance08/pointsbot/internal/config"
	"github.com/hance08/pointsbot/internal/store/memory"
	"github.com/hance08/pointsbot/internal/ui"
	"github.com/hance08/pointsbot/internal/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type consoleFlags struct {
	As     string
	Memory bool
}

type consoleRunner struct {
	rt    *runtime
	flags *consoleFlags
}

func NewConsoleCmd(rt *runtime) *cobra.Command {
	flags := &consoleFlags{}

	cmd := &cobra.Command{
		Use:   "console",
		Short: "Type bot commands in the terminal",
		Long: `Run the bot against standard input instead of Discord.

Each line is handled as a chat message from the current user. Switch the
current user with "/as <id>". Exit with Ctrl+D.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &consoleRunner{rt: rt, flags: flags}
			return runner.Run(cmd)
		},
	}

	cmd.Flags().StringVar(&flags.As, "as", "1", "User id the messages come from")
	cmd.Flags().BoolVar(&flags.Memory, "memory", false, "Use a throwaway in-memory ledger instead of the database")

	return cmd
}

func (r *consoleRunner) Run(cmd *cobra.Command) error {
	sender := r.flags.As
	if id, ok := utils.ParseMention(sender); ok {
		sender = id
	}
	if !utils.IsSnowflake(sender) {
		return fmt.Errorf("invalid user id: %q", r.flags.As)
	}

	application, cleanup, err := r.open()
	if err != nil {
		return err
	}
	defer cleanup()

	ui.PrintL1Title("%s console", config.AppName)
	pterm.Info.Printf("Speaking as %s. Type !help for commands, /as <id> to switch user.\n", utils.Mention(sender))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	transport := bot.NewConsoleTransport(application.NewBot(), sender, cmd.InOrStdin(), cmd.OutOrStdout()).
		WithPrompt("> ")
	return transport.Run(ctx)
}

func (r *consoleRunner) open() (*app.App, func(), error) {
	if r.flags.Memory {
		application := app.NewWithRepository(r.rt.cfg, memory.NewStore(), r.rt.log)
		return application, func() {}, nil
	}
	return r.rt.openApp()
}
