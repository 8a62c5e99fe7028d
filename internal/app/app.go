package app

import (
	"fmt"
	"io/fs"

	"github.com/hance08/pointsbot/internal/bot"
	"github.com/hance08/pointsbot/internal/command"
	"github.com/hance08/pointsbot/internal/config"
	"github.com/hance08/pointsbot/internal/ledger"
	"github.com/hance08/pointsbot/internal/store"
	"github.com/rs/zerolog"
)

type App struct {
	Config      *config.Config
	Store       store.Repository
	Ledger      *ledger.Engine
	Interpreter *command.Interpreter
	Log         zerolog.Logger
}

// NewApp opens the SQLite database, applies migrations and wires the ledger and interpreter.
func NewApp(cfg *config.Config, migrationFS fs.FS, log zerolog.Logger) (*App, func(), error) {
	dbPath, err := cfg.DatabasePath()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve database path: %w", err)
	}

	dbStore, err := store.NewStore(dbPath, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	log.Debug().Str("path", dbPath).Msg("database ready")

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			log.Error().Err(err).Msg("error closing database")
		}
	}

	return NewWithRepository(cfg, dbStore, log), cleanup, nil
}

// NewWithRepository wires the application on top of an already opened repository.
func NewWithRepository(cfg *config.Config, repo store.Repository, log zerolog.Logger) *App {
	engine := ledger.NewEngine(
		repo,
		log.With().Str("component", "ledger").Logger(),
		ledger.WithMaxAmount(cfg.Ledger.MaxAmount),
	)

	return &App{
		Config:      cfg,
		Store:       repo,
		Ledger:      engine,
		Interpreter: command.NewInterpreter(engine, cfg.Bot.CurrencySymbol),
		Log:         log,
	}
}

func (a *App) NewBot() *bot.Bot {
	return bot.New(
		a.Interpreter,
		a.Log.With().Str("component", "bot").Logger(),
		bot.Options{IgnoreNotice: a.Config.Bot.IgnoreNotice},
	)
}
