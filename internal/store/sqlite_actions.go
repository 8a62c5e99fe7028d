package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hance08/pointsbot/internal/model"
	sqlite "github.com/mattn/go-sqlite3"
)

// AddAction appends one record to the transaction log.
// It relies on the caller (ledger engine) to wrap it in ExecTx together with the balance updates.
func (s *Store) AddAction(ctx context.Context, action *model.Action) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO actions (user_from, user_to, amount, command, note, timestamp)
        VALUES (?, ?, ?, ?, ?, ?)
    `, action.From, action.To, action.Amount, action.Command, action.Note, action.Timestamp)

	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite.ErrConstraint {
			return fmt.Errorf("failed to insert action (%s -> %s): %w", action.From, action.To, ErrConstraintViolation)
		}
		return fmt.Errorf("failed to insert action: %w", err)
	}

	return nil
}

// GetLastAction returns the newest action initiated by user.
func (s *Store) GetLastAction(ctx context.Context, user string) (*model.Action, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT user_from, user_to, amount, command, note, timestamp
        FROM actions
        WHERE user_from = ?
        ORDER BY timestamp DESC, rowid DESC
        LIMIT 1
    `, user)

	action := &model.Action{}
	err := row.Scan(&action.From, &action.To, &action.Amount, &action.Command, &action.Note, &action.Timestamp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no action from user '%s': %w", user, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query last action: %w", err)
	}

	return action, nil
}

// GetHistory returns actions newest first; rows sharing a timestamp keep reverse insertion order.
func (s *Store) GetHistory(ctx context.Context, limit, offset int) ([]*model.Action, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT user_from, user_to, amount, command, note, timestamp
        FROM actions
        ORDER BY timestamp DESC, rowid DESC
        LIMIT ? OFFSET ?
    `, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var actions []*model.Action
	for rows.Next() {
		action := &model.Action{}
		err := rows.Scan(&action.From, &action.To, &action.Amount, &action.Command, &action.Note, &action.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("failed to scan action: %w", err)
		}
		actions = append(actions, action)
	}

	return actions, rows.Err()
}

func (s *Store) CountActions(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM actions").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count actions: %w", err)
	}
	return count, nil
}
