package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/pointsbot/cmd/db"
	"github.com/hance08/pointsbot/internal/app"
	"github.com/hance08/pointsbot/internal/config"
	"github.com/hance08/pointsbot/internal/errhandler"
	"github.com/hance08/pointsbot/internal/logger"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "POINTSBOT"

// runtime carries what every subcommand needs once the config is loaded.
type runtime struct {
	migrations fs.FS
	cfgFile    string
	cfg        *config.Config
	log        zerolog.Logger
}

func (r *runtime) Config() *config.Config { return r.cfg }

func (r *runtime) Migrations() fs.FS { return r.migrations }

func (r *runtime) Logger() zerolog.Logger { return r.log }

func (r *runtime) openApp() (*app.App, func(), error) {
	return app.NewApp(r.cfg, r.migrations, r.log)
}

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	rt := &runtime{migrations: migrations}
	rootCmd := newRootCmd(rt)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(errhandler.HandleError(err))
	}
}

func newRootCmd(rt *runtime) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   config.AppName,
		Short: "pointsbot keeps a shared points ledger for a chat server",
		Long: `pointsbot keeps a shared points ledger for a chat server.

Members grant, give and take points with chat commands such as !grant,
!give and !take. Every transfer is recorded and can be reviewed with
!history, !leaderboard and !undo.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.initConfig()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&rt.cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(NewServeCmd(rt))
	rootCmd.AddCommand(NewConsoleCmd(rt))
	rootCmd.AddCommand(NewLeaderboardCmd(rt))
	rootCmd.AddCommand(NewHistoryCmd(rt))
	rootCmd.AddCommand(NewInfoCmd(rt))
	rootCmd.AddCommand(db.NewDBCmd(rt))

	return rootCmd
}

func (r *runtime) initConfig() error {
	// a missing .env is normal
	_ = godotenv.Load()

	for key, value := range config.Defaults() {
		viper.SetDefault(key, value)
	}

	if r.cfgFile != "" {
		viper.SetConfigFile(r.cfgFile)
	} else {
		appDir, err := config.AppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {
		if r.cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	r.cfg = config.NewDefault()
	if err := viper.Unmarshal(r.cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	r.cfg.ConfigPath = viper.ConfigFileUsed()
	if err := r.cfg.Validate(); err != nil {
		return err
	}

	r.log = logger.New(r.cfg.Log.Level, os.Stderr)

	return nil
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
