package cmd

import (
	"os"

	"github.com/hance08/pointsbot/internal/config"
	"github.com/hance08/pointsbot/internal/ui"
	"github.com/hance08/pointsbot/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	rt *runtime
}

func NewInfoCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database path, and system details.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{rt: rt}
			return runner.Run(cmd)
		},
	}
}

func (r *infoRunner) Run(cmd *cobra.Command) error {
	cfg := r.rt.cfg

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		return err
	}

	items := views.SystemInfoItem{
		ConfigPath:     configPath,
		DBPath:         dbPath,
		CurrencySymbol: cfg.Bot.CurrencySymbol,
		MaxAmount:      cfg.Ledger.MaxAmount,
		AppDataDir:     appDataDirOrUnknown(),
	}

	// only open the database when it is there, info should not create it
	if _, err := os.Stat(dbPath); err == nil {
		items.DBExists = true

		application, cleanup, err := r.rt.openApp()
		if err != nil {
			return err
		}
		defer cleanup()

		if items.Transfers, err = application.Store.CountActions(cmd.Context()); err != nil {
			return err
		}
	}

	ui.PrintL2Title("%s system info", config.AppName)
	return views.RenderSystemInfo(items)
}

func appDataDirOrUnknown() string {
	dir, err := config.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
