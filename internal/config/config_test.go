package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()

	assert.Equal(t, "ꙮ", cfg.Bot.CurrencySymbol)
	assert.Equal(t, int64(1000), cfg.Ledger.MaxAmount)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Bot.IgnoreNotice)
}

func TestDefaults_CoverEveryKey(t *testing.T) {
	d := Defaults()

	for _, key := range []string{
		"database.path", "bot.token", "bot.token_file", "bot.currency_symbol",
		"bot.ignore_notice", "ledger.max_amount", "log.level",
	} {
		assert.Contains(t, d, key)
	}
}

func TestLoadToken(t *testing.T) {
	t.Run("inline token wins", func(t *testing.T) {
		cfg := NewDefault()
		cfg.Bot.Token = "  abc  "
		cfg.Bot.TokenFile = "/does/not/exist"

		token, err := cfg.LoadToken()
		require.NoError(t, err)
		assert.Equal(t, "abc", token)
	})

	t.Run("token file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "token")
		require.NoError(t, os.WriteFile(path, []byte("from-file\n"), 0600))

		cfg := NewDefault()
		cfg.Bot.TokenFile = path

		token, err := cfg.LoadToken()
		require.NoError(t, err)
		assert.Equal(t, "from-file", token)
	})

	t.Run("missing token file", func(t *testing.T) {
		cfg := NewDefault()
		cfg.Bot.TokenFile = filepath.Join(t.TempDir(), "missing")

		_, err := cfg.LoadToken()
		assert.Error(t, err)
	})

	t.Run("nothing configured", func(t *testing.T) {
		token, err := NewDefault().LoadToken()
		require.NoError(t, err)
		assert.Empty(t, token)
	})
}

func TestDatabasePath(t *testing.T) {
	cfg := NewDefault()
	cfg.Database.Path = "/tmp/points.db"

	path, err := cfg.DatabasePath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/points.db", path)

	cfg.Database.Path = ""
	path, err = cfg.DatabasePath()
	require.NoError(t, err)
	assert.Equal(t, "pointsbot.db", filepath.Base(path))
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~/points.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "points.db"), got)

	got, err = ExpandPath("relative.db")
	require.NoError(t, err)
	assert.Equal(t, "relative.db", got)
}

func TestValidate(t *testing.T) {
	require.NoError(t, NewDefault().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "zero ceiling",
			mutate: func(c *Config) { c.Ledger.MaxAmount = 0 },
			want:   "invalid config: 'ledger.max_amount' must be greater than 0",
		},
		{
			name:   "empty symbol",
			mutate: func(c *Config) { c.Bot.CurrencySymbol = "" },
			want:   "invalid config: 'bot.currency_symbol' is required",
		},
		{
			name:   "unknown level",
			mutate: func(c *Config) { c.Log.Level = "loud" },
			want:   "invalid config: 'log.level' must be one of [trace debug info warn error fatal panic disabled]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefault()
			tt.mutate(cfg)
			assert.EqualError(t, cfg.Validate(), tt.want)
		})
	}
}
