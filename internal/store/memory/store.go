// Package memory is an in-process implementation of store.Repository.
// It backs throwaway console sessions and the ledger/interpreter tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/hance08/pointsbot/internal/model"
	"github.com/hance08/pointsbot/internal/store"
)

type Store struct {
	txMu sync.Mutex // serializes ExecTx units
	mu   sync.Mutex // protects actions and points
	// actions keeps insertion order.
	actions []model.Action
	points  map[string]model.Balance
}

var _ store.Repository = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		actions: make([]model.Action, 0),
		points:  make(map[string]model.Balance),
	}
}

func (m *Store) AddAction(ctx context.Context, action *model.Action) error {
	if action.Amount <= 0 {
		return fmt.Errorf("failed to insert action (%s -> %s): %w", action.From, action.To, store.ErrConstraintViolation)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.actions = append(m.actions, *action)
	return nil
}

func (m *Store) GetLastAction(ctx context.Context, user string) (*model.Action, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var last *model.Action
	for i := len(m.actions) - 1; i >= 0; i-- {
		a := m.actions[i]
		if a.From != user {
			continue
		}
		if last == nil || a.Timestamp > last.Timestamp {
			last = &a
		}
	}
	if last == nil {
		return nil, fmt.Errorf("no action from user '%s': %w", user, store.ErrRecordNotFound)
	}
	return last, nil
}

func (m *Store) GetHistory(ctx context.Context, limit, offset int) ([]*model.Action, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ordered := make([]*model.Action, 0, len(m.actions))
	for i := len(m.actions) - 1; i >= 0; i-- {
		a := m.actions[i]
		ordered = append(ordered, &a)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp > ordered[j].Timestamp
	})

	return page(ordered, limit, offset), nil
}

func (m *Store) CountActions(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return int64(len(m.actions)), nil
}

func (m *Store) UpdatePoints(ctx context.Context, user string, delta int64, timestamp int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	balance := m.points[user]
	balance.User = user
	balance.Amount += delta
	balance.UpdatedAt = timestamp
	m.points[user] = balance
	return nil
}

func (m *Store) GetBalance(ctx context.Context, user string) (*model.Balance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	balance, ok := m.points[user]
	if !ok {
		return nil, fmt.Errorf("no balance for user '%s': %w", user, store.ErrRecordNotFound)
	}
	return &balance, nil
}

func (m *Store) GetLeaderboard(ctx context.Context, limit, offset int) ([]*model.Balance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	balances := make([]*model.Balance, 0, len(m.points))
	for _, b := range m.points {
		b := b
		balances = append(balances, &b)
	}
	sort.Slice(balances, func(i, j int) bool {
		if balances[i].Amount != balances[j].Amount {
			return balances[i].Amount > balances[j].Amount
		}
		return balances[i].User < balances[j].User
	})

	return page(balances, limit, offset), nil
}

// ExecTx restores the previous state when fn fails.
func (m *Store) ExecTx(ctx context.Context, fn func(store.Repository) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	actions, points := m.snapshot()
	if err := fn(m); err != nil {
		m.restore(actions, points)
		return err
	}
	return nil
}

func (m *Store) Close() error {
	return nil
}

func (m *Store) snapshot() ([]model.Action, map[string]model.Balance) {
	m.mu.Lock()
	defer m.mu.Unlock()

	actions := make([]model.Action, len(m.actions))
	copy(actions, m.actions)
	points := make(map[string]model.Balance, len(m.points))
	for k, v := range m.points {
		points[k] = v
	}
	return actions, points
}

func (m *Store) restore(actions []model.Action, points map[string]model.Balance) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.actions = actions
	m.points = points
}

func page[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) || limit <= 0 {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
