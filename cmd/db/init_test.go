package db

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/hance08/pointsbot/internal/config"
	"github.com/hance08/pointsbot/internal/store"
	"github.com/hance08/pointsbot/migrations"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	cfg *config.Config
}

var _ Env = (*testEnv)(nil)

func (e *testEnv) Config() *config.Config { return e.cfg }

func (e *testEnv) Migrations() fs.FS { return migrations.FS }

func (e *testEnv) Logger() zerolog.Logger { return zerolog.Nop() }

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg := config.NewDefault()
	cfg.Database.Path = filepath.Join(t.TempDir(), "points.db")
	return &testEnv{cfg: cfg}
}

func seed(t *testing.T, path string) {
	t.Helper()
	s, err := store.NewStore(path, migrations.FS)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.UpdatePoints(context.Background(), "1", 10, 1))
}

func countBalances(t *testing.T, path string) int {
	t.Helper()
	s, err := store.NewStore(path, migrations.FS)
	require.NoError(t, err)
	defer s.Close()
	board, err := s.GetLeaderboard(context.Background(), 100, 0)
	require.NoError(t, err)
	return len(board)
}

func TestInit_Drop(t *testing.T) {
	pterm.DisableOutput()
	defer pterm.EnableOutput()

	tests := []struct {
		name    string
		flags   initFlags
		answer  bool
		asked   bool
		wantRow int
	}{
		{name: "plain init keeps data", flags: initFlags{}, wantRow: 1},
		{name: "drop declined", flags: initFlags{Drop: true}, answer: false, asked: true, wantRow: 1},
		{name: "drop confirmed", flags: initFlags{Drop: true}, answer: true, asked: true, wantRow: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			seed(t, env.cfg.Database.Path)

			asked := false
			flags := tt.flags
			runner := &initRunner{
				env:   env,
				flags: &flags,
				confirm: func(message string, defaultValue bool) (bool, error) {
					asked = true
					assert.False(t, defaultValue)
					return tt.answer, nil
				},
			}

			require.NoError(t, runner.Run())
			assert.Equal(t, tt.asked, asked)
			assert.Equal(t, tt.wantRow, countBalances(t, env.cfg.Database.Path))
		})
	}
}

func TestInit_DropDeclinedStillCreatesTables(t *testing.T) {
	pterm.DisableOutput()
	defer pterm.EnableOutput()

	env := newTestEnv(t)
	runner := &initRunner{
		env:   env,
		flags: &initFlags{Drop: true},
		confirm: func(string, bool) (bool, error) {
			return false, nil
		},
	}

	require.NoError(t, runner.Run())
	assert.FileExists(t, env.cfg.Database.Path)
	assert.Zero(t, countBalances(t, env.cfg.Database.Path))
}

func TestInit_ConfirmErrorAborts(t *testing.T) {
	pterm.DisableOutput()
	defer pterm.EnableOutput()

	env := newTestEnv(t)
	boom := errors.New("interrupt")
	runner := &initRunner{
		env:   env,
		flags: &initFlags{Drop: true},
		confirm: func(string, bool) (bool, error) {
			return false, boom
		},
	}

	assert.ErrorIs(t, runner.Run(), boom)
	assert.NoFileExists(t, env.cfg.Database.Path)
}

func TestInit_CreatesDatabase(t *testing.T) {
	pterm.DisableOutput()
	defer pterm.EnableOutput()

	env := newTestEnv(t)
	env.cfg.Database.Path = filepath.Join(t.TempDir(), "nested", "dir", "points.db")

	runner := &initRunner{env: env, flags: &initFlags{}}
	require.NoError(t, runner.Run())
	assert.FileExists(t, env.cfg.Database.Path)
}
