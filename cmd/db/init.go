package db

import (
	"fmt"

	"github.com/hance08/pointsbot/internal/store"
	"github.com/hance08/pointsbot/internal/ui"
	"github.com/hance08/pointsbot/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type initFlags struct {
	Drop bool
}

type initRunner struct {
	env     Env
	flags   *initFlags
	confirm func(message string, defaultValue bool) (bool, error)
}

func NewInitCmd(env Env) *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the database and apply migrations",
		Long: `Create the database file if needed and bring the schema up to date.

With --drop, after a y/N confirmation, every balance and transfer is
deleted and the tables are created again from scratch.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &initRunner{
				env:     env,
				flags:   flags,
				confirm: prompts.PromptConfirm,
			}
			return runner.Run()
		},
	}

	cmd.Flags().BoolVar(&flags.Drop, "drop", false, "Drop and recreate all tables")

	return cmd
}

func (r *initRunner) Run() error {
	dbPath, err := r.env.Config().DatabasePath()
	if err != nil {
		return err
	}

	drop := false
	if r.flags.Drop {
		pterm.Warning.Println("This deletes every balance and transfer. It cannot be undone!")
		ok, err := r.confirm("Drop and recreate the points and actions tables?", false)
		if err != nil {
			return err
		}
		if !ok {
			pterm.Info.Println("Reset cancelled, keeping existing data")
		}
		drop = ok
	}

	s, err := store.NewStore(dbPath, r.env.Migrations())
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer s.Close()

	if drop {
		if err := s.ResetSchema(); err != nil {
			return fmt.Errorf("failed to reset database: %w", err)
		}
		log := r.env.Logger()
		log.Info().Str("path", dbPath).Msg("database reset")
		pterm.Success.Printf("Database reset at %s\n", dbPath)
	} else {
		pterm.Success.Printf("Database ready at %s\n", dbPath)
	}

	ui.PrintSeparator()
	return nil
}
