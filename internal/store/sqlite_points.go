package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hance08/pointsbot/internal/model"
)

// UpdatePoints adds delta (which may be negative) to the user's balance,
// creating the row on first use.
func (s *Store) UpdatePoints(ctx context.Context, user string, delta int64, timestamp int64) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO points (user, amount, updated_at) VALUES (?, ?, ?)
        ON CONFLICT(user) DO UPDATE
        SET amount = amount + excluded.amount, updated_at = excluded.updated_at
    `, user, delta, timestamp)
	if err != nil {
		return fmt.Errorf("failed to update points for '%s': %w", user, err)
	}
	return nil
}

func (s *Store) GetBalance(ctx context.Context, user string) (*model.Balance, error) {
	row := s.db.QueryRowContext(ctx, "SELECT user, amount, updated_at FROM points WHERE user = ?", user)

	balance := &model.Balance{}
	err := row.Scan(&balance.User, &balance.Amount, &balance.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no balance for user '%s': %w", user, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query balance: %w", err)
	}

	return balance, nil
}

// GetLeaderboard orders by amount descending, ties broken by user id.
func (s *Store) GetLeaderboard(ctx context.Context, limit, offset int) ([]*model.Balance, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT user, amount, updated_at
        FROM points
        ORDER BY amount DESC, user ASC
        LIMIT ? OFFSET ?
    `, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var balances []*model.Balance
	for rows.Next() {
		balance := &model.Balance{}
		if err := rows.Scan(&balance.User, &balance.Amount, &balance.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan balance: %w", err)
		}
		balances = append(balances, balance)
	}

	return balances, rows.Err()
}
