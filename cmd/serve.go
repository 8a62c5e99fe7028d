package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hance08/pointsbot/internal/bot"
	"github.com/hance08/pointsbot/internal/ui/prompts"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var errNoToken = errors.New("no bot token configured, set bot.token, bot.token_file or POINTSBOT_BOT_TOKEN")

type serveRunner struct {
	rt *runtime
}

func NewServeCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Connect to Discord and answer point commands",
		Long: `Connect to Discord with the configured bot token and answer point
commands in every channel the bot can read. Runs until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &serveRunner{rt: rt}
			return runner.Run(cmd)
		},
	}
}

func (r *serveRunner) Run(cmd *cobra.Command) error {
	token, err := r.token()
	if err != nil {
		return err
	}

	application, cleanup, err := r.rt.openApp()
	if err != nil {
		return err
	}
	defer cleanup()

	transport, err := bot.NewDiscordTransport(
		token,
		application.NewBot(),
		r.rt.log.With().Str("component", "discord").Logger(),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pterm.Info.Println("Connecting to Discord, press Ctrl+C to stop")
	return transport.Run(ctx)
}

func (r *serveRunner) token() (string, error) {
	token, err := r.rt.cfg.LoadToken()
	if err != nil {
		return "", err
	}
	if token != "" {
		return token, nil
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return "", errNoToken
	}

	token, err = prompts.PromptSecret("Discord bot token", "Not saved. Put it in the config or .env to skip this prompt.")
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return token, nil
}
