package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hance08/pointsbot/internal/ledger"
	"github.com/hance08/pointsbot/internal/utils"
)

const AppName = "pointsbot"

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Bot        BotConfig      `mapstructure:"bot"`
	Ledger     LedgerConfig   `mapstructure:"ledger"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type BotConfig struct {
	Token          string `mapstructure:"token"`
	TokenFile      string `mapstructure:"token_file"`
	CurrencySymbol string `mapstructure:"currency_symbol" validate:"required"`
	IgnoreNotice   bool   `mapstructure:"ignore_notice"`
}

type LedgerConfig struct {
	MaxAmount int64 `mapstructure:"max_amount" validate:"gt=0"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Bot:      BotConfig{CurrencySymbol: utils.DefaultCurrencySymbol},
		Ledger:   LedgerConfig{MaxAmount: ledger.DefaultMaxAmount},
		Log:      LogConfig{Level: "info"},
	}
}

// Defaults flattens NewDefault into viper keys.
func Defaults() map[string]any {
	d := NewDefault()
	return map[string]any{
		"database.path":       d.Database.Path,
		"bot.token":           d.Bot.Token,
		"bot.token_file":      d.Bot.TokenFile,
		"bot.currency_symbol": d.Bot.CurrencySymbol,
		"bot.ignore_notice":   d.Bot.IgnoreNotice,
		"ledger.max_amount":   d.Ledger.MaxAmount,
		"log.level":           d.Log.Level,
	}
}

// Validate checks the loaded values and names the first offending key.
func (c *Config) Validate() error {
	vld := validator.New(validator.WithRequiredStructEnabled())
	vld.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]
	})

	err := vld.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("invalid config: %w", err)
	}

	fe := validationErrors[0]
	// drop the root struct name, "Config.ledger.max_amount" -> "ledger.max_amount"
	key := fe.Namespace()
	if _, rest, ok := strings.Cut(key, "."); ok {
		key = rest
	}

	switch fe.Tag() {
	case "required":
		return fmt.Errorf("invalid config: '%s' is required", key)
	case "gt":
		return fmt.Errorf("invalid config: '%s' must be greater than %s", key, fe.Param())
	case "oneof":
		return fmt.Errorf("invalid config: '%s' must be one of [%s]", key, fe.Param())
	default:
		return fmt.Errorf("invalid config: '%s' failed '%s' check", key, fe.Tag())
	}
}

// LoadToken returns bot.token, falling back to the first line of bot.token_file.
func (c *Config) LoadToken() (string, error) {
	if token := strings.TrimSpace(c.Bot.Token); token != "" {
		return token, nil
	}
	if c.Bot.TokenFile == "" {
		return "", nil
	}

	path, err := ExpandPath(c.Bot.TokenFile)
	if err != nil {
		return "", err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read token file: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

// DatabasePath resolves database.path, defaulting to pointsbot.db in the app data dir.
func (c *Config) DatabasePath() (string, error) {
	if c.Database.Path == "" {
		appDir, err := AppDataDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(appDir, AppName+".db"), nil
	}
	return ExpandPath(c.Database.Path)
}

func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+AppName), nil
	}

	return filepath.Join(configDir, AppName), nil
}

func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}
