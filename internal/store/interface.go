package store

import (
	"context"

	"github.com/hance08/pointsbot/internal/model"
)

type Repository interface {
	// Action Operations
	AddAction(ctx context.Context, action *model.Action) error
	GetLastAction(ctx context.Context, user string) (*model.Action, error)
	GetHistory(ctx context.Context, limit, offset int) ([]*model.Action, error)
	CountActions(ctx context.Context) (int64, error)

	// Points Operations
	UpdatePoints(ctx context.Context, user string, delta int64, timestamp int64) error
	GetBalance(ctx context.Context, user string) (*model.Balance, error)
	GetLeaderboard(ctx context.Context, limit, offset int) ([]*model.Balance, error)

	// ExecTx runs fn against a Repository bound to a single transaction.
	// Everything fn writes is committed together or rolled back together.
	ExecTx(ctx context.Context, fn func(Repository) error) error

	Close() error
}
