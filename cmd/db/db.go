package db

import (
	"io/fs"

	"github.com/hance08/pointsbot/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Env gives the db commands the loaded configuration.
type Env interface {
	Config() *config.Config
	Migrations() fs.FS
	Logger() zerolog.Logger
}

func NewDBCmd(env Env) *cobra.Command {
	dbCmd := &cobra.Command{
		Use:   "db",
		Short: "Manage the points database",
		Long:  `Create, migrate or reset the SQLite database that holds balances and transfer history.`,
	}

	dbCmd.AddCommand(NewInitCmd(env))

	return dbCmd
}
