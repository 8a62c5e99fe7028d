// Package ledger enforces the points rules and applies transfers to the store.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hance08/pointsbot/internal/model"
	"github.com/hance08/pointsbot/internal/store"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const DefaultMaxAmount = 1000

// TransferRequest describes one grant, give or take before validation.
type TransferRequest struct {
	From    string
	To      string
	Amount  decimal.Decimal
	Command string
	Note    string

	// Undo marks a compensating transfer synthesized by the undo command.
	Undo bool
}

type Engine struct {
	repo      store.Repository
	log       zerolog.Logger
	maxAmount int64
	now       func() time.Time
}

type Option func(*Engine)

// WithMaxAmount overrides the per-transfer ceiling. Non-positive values are ignored.
func WithMaxAmount(n int64) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxAmount = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func NewEngine(repo store.Repository, log zerolog.Logger, opts ...Option) *Engine {
	e := &Engine{
		repo:      repo,
		log:       log,
		maxAmount: DefaultMaxAmount,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) MaxAmount() int64 {
	return e.maxAmount
}

// Grant moves amount from req.From to req.To. The recipient is always credited;
// the source is debited only when deductFrom is set. A negative amount with
// deductFrom reverses the direction, without it the grant is rejected.
func (e *Engine) Grant(ctx context.Context, req TransferRequest, deductFrom bool) (*model.Action, error) {
	if err := e.validate("grant", req); err != nil {
		return nil, err
	}

	from, to, amount := req.From, req.To, req.Amount
	if amount.IsNegative() {
		if !deductFrom {
			return nil, Invalid("Can't grant negative points from the bank like this. Try !take.")
		}
		from, to = to, from
		amount = amount.Neg()
	}
	if amount.GreaterThan(decimal.NewFromInt(e.maxAmount)) {
		return nil, Invalid("Can only grant %s points maximum right now.", humanize.Comma(e.maxAmount))
	}

	action := e.newAction(from, to, amount, req)
	err := e.repo.ExecTx(ctx, func(repo store.Repository) error {
		if err := repo.AddAction(ctx, action); err != nil {
			return err
		}
		if deductFrom {
			if err := repo.UpdatePoints(ctx, action.From, -action.Amount, action.Timestamp); err != nil {
				return err
			}
		}
		return repo.UpdatePoints(ctx, action.To, action.Amount, action.Timestamp)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record %s: %w", req.Command, err)
	}

	e.logCommitted(action, req, deductFrom)
	return action, nil
}

// Take debits req.To by the magnitude of the amount, whatever its sign.
func (e *Engine) Take(ctx context.Context, req TransferRequest) (*model.Action, error) {
	if err := e.validate("take", req); err != nil {
		return nil, err
	}

	amount := req.Amount.Abs()
	if amount.GreaterThan(decimal.NewFromInt(e.maxAmount)) {
		return nil, Invalid("Can only take %s points maximum right now.", humanize.Comma(e.maxAmount))
	}

	action := e.newAction(req.From, req.To, amount, req)
	err := e.repo.ExecTx(ctx, func(repo store.Repository) error {
		if err := repo.AddAction(ctx, action); err != nil {
			return err
		}
		return repo.UpdatePoints(ctx, action.To, -action.Amount, action.Timestamp)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record %s: %w", req.Command, err)
	}

	e.logCommitted(action, req, false)
	return action, nil
}

// LastAction returns the newest action initiated by user, or nil when there is none.
func (e *Engine) LastAction(ctx context.Context, user string) (*model.Action, error) {
	action, err := e.repo.GetLastAction(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return action, nil
}

func (e *Engine) History(ctx context.Context, limit, offset int) ([]*model.Action, error) {
	if limit < 0 || offset < 0 {
		return nil, Invalid("History limit and offset can't be negative.")
	}
	return e.repo.GetHistory(ctx, limit, offset)
}

func (e *Engine) Leaderboard(ctx context.Context, limit, offset int) ([]*model.Balance, error) {
	if limit < 0 || offset < 0 {
		return nil, Invalid("Leaderboard limit and offset can't be negative.")
	}
	return e.repo.GetLeaderboard(ctx, limit, offset)
}

// Balance reports found=false when the user has never been credited or debited.
func (e *Engine) Balance(ctx context.Context, user string) (int64, bool, error) {
	balance, err := e.repo.GetBalance(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return balance.Amount, true, nil
}

func (e *Engine) validate(verb string, req TransferRequest) error {
	if !req.Amount.IsInteger() {
		return Invalid("Can't %s fractional points.", verb)
	}
	if req.From == "" {
		return Invalid("Can't %s points, there was no `from` user?", verb)
	}
	if req.To == "" {
		return Invalid("Can't %s points, there was no `to` user?", verb)
	}
	if req.Amount.IsZero() {
		return Invalid("Can't %s zero points.", verb)
	}
	return nil
}

func (e *Engine) newAction(from, to string, amount decimal.Decimal, req TransferRequest) *model.Action {
	return &model.Action{
		From:      from,
		To:        to,
		Amount:    amount.IntPart(),
		Command:   req.Command,
		Note:      req.Note,
		Timestamp: e.now().Unix(),
	}
}

func (e *Engine) logCommitted(action *model.Action, req TransferRequest, deductFrom bool) {
	e.log.Info().
		Str("from", action.From).
		Str("to", action.To).
		Int64("amount", action.Amount).
		Str("command", action.Command).
		Bool("deduct_from", deductFrom).
		Bool("undo", req.Undo).
		Msg("transfer committed")
}
