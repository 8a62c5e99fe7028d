// Package command turns chat messages into ledger operations and formats the replies.
package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/hance08/pointsbot/internal/ledger"
	"github.com/hance08/pointsbot/internal/model"
	"github.com/hance08/pointsbot/internal/utils"
	"github.com/shopspring/decimal"
)

const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 20
	LeaderboardSize     = 10
	noteDisplayLen      = 20
	historyTimeLayout   = "2006-01-02 15:04:05"
)

// Ledger is the part of the ledger engine the interpreter drives.
type Ledger interface {
	Grant(ctx context.Context, req ledger.TransferRequest, deductFrom bool) (*model.Action, error)
	Take(ctx context.Context, req ledger.TransferRequest) (*model.Action, error)
	LastAction(ctx context.Context, user string) (*model.Action, error)
	History(ctx context.Context, limit, offset int) ([]*model.Action, error)
	Leaderboard(ctx context.Context, limit, offset int) ([]*model.Balance, error)
	Balance(ctx context.Context, user string) (int64, bool, error)
}

var _ Ledger = (*ledger.Engine)(nil)

type Interpreter struct {
	ledger Ledger
	symbol string
}

func NewInterpreter(l Ledger, currencySymbol string) *Interpreter {
	if currencySymbol == "" {
		currencySymbol = utils.DefaultCurrencySymbol
	}
	return &Interpreter{ledger: l, symbol: currencySymbol}
}

func (i *Interpreter) IsCommand(text string) bool {
	_, ok := Classify(text)
	return ok
}

// Process runs one command on behalf of sender and returns the reply text.
// Ledger validation errors are returned untouched for the caller to report.
func (i *Interpreter) Process(ctx context.Context, sender, text string) (string, error) {
	kind, ok := Classify(text)
	if !ok {
		return "", ErrNotCommand
	}

	switch kind {
	case KindGrant, KindGive, KindTake:
		args, err := parseTransfer(kind, text)
		if err != nil {
			return "", err
		}
		return i.transfer(ctx, newTransferIntent(sender, kind, args))
	case KindHistory:
		args, err := parseHistory(text, DefaultHistoryLimit)
		if err != nil {
			return "", err
		}
		return i.history(ctx, args)
	case KindLeaderboard:
		if err := parseBare(kind, text); err != nil {
			return "", err
		}
		return i.leaderboard(ctx)
	case KindWallet:
		args, err := parseWallet(text)
		if err != nil {
			return "", err
		}
		if args.Target == "" {
			args.Target = sender
		}
		return i.wallet(ctx, args.Target)
	case KindHelp:
		if err := parseBare(kind, text); err != nil {
			return "", err
		}
		return helpText(i.symbol), nil
	case KindUndo:
		if err := parseBare(kind, text); err != nil {
			return "", err
		}
		return i.undo(ctx, sender)
	default:
		return "", ErrNotCommand
	}
}

func (i *Interpreter) transfer(ctx context.Context, intent TransferIntent) (string, error) {
	req := ledger.TransferRequest{
		From:    intent.Sender,
		To:      intent.Target,
		Amount:  intent.Amount,
		Command: intent.Command,
		Note:    intent.Note,
		Undo:    intent.Undo,
	}

	switch intent.Kind {
	case KindGrant:
		action, err := i.ledger.Grant(ctx, req, false)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s granted %s to %s!",
			utils.Mention(intent.Sender), i.points(action.Amount), utils.Mention(action.To)), nil
	case KindGive:
		if intent.Target == intent.Sender {
			return "", ledger.Invalid("Giving points to yourself doesn't do anything.\n(Use !grant to get them from the bank.)")
		}
		action, err := i.ledger.Grant(ctx, req, true)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Gave %s from %s to %s!",
			i.points(action.Amount), utils.Mention(action.From), utils.Mention(action.To)), nil
	case KindTake:
		action, err := i.ledger.Take(ctx, req)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s Took %s away from %s and gave it to the bank!",
			utils.Mention(intent.Sender), i.points(action.Amount), utils.Mention(action.To)), nil
	default:
		return "", fmt.Errorf("%s is not a transfer command", intent.Kind)
	}
}

// undo replays the inverse of the sender's most recent action through the
// regular transfer path, so every rule applies to the compensating transfer.
func (i *Interpreter) undo(ctx context.Context, sender string) (string, error) {
	last, err := i.ledger.LastAction(ctx, sender)
	if err != nil {
		return "", err
	}
	if last == nil {
		return fmt.Sprintf("%s has nothing to undo.", utils.Mention(sender)), nil
	}

	intent := TransferIntent{
		Amount: decimal.NewFromInt(last.Amount),
		Note:   undoNote,
		Undo:   true,
	}
	var prefix string

	switch last.Command {
	case CommandGrant:
		prefix = "Undoing !grant: "
		intent.Sender, intent.Target = last.From, last.To
		intent.Kind, intent.Command = KindTake, CommandTake
	case CommandGive, CommandSend:
		prefix = "Undoing !give/!send: "
		intent.Sender, intent.Target = last.To, last.From
		intent.Kind, intent.Command = KindGive, CommandGive
	case CommandTake:
		prefix = "Undoing !take: "
		intent.Sender, intent.Target = last.From, last.To
		intent.Kind, intent.Command = KindGrant, CommandGrant
	default:
		return fmt.Sprintf("No undo command defined for %s!", last.Command), nil
	}

	reply, err := i.transfer(ctx, intent)
	if err != nil {
		return "", err
	}
	return prefix + reply, nil
}

func (i *Interpreter) history(ctx context.Context, args *historyArgs) (string, error) {
	if args.Limit > MaxHistoryLimit {
		return "", ledger.Invalid("Cannot get more than %d rows using !hist[ory]", MaxHistoryLimit)
	}

	actions, err := i.ledger.History(ctx, args.Limit, args.Offset)
	if err != nil {
		return "", err
	}
	if len(actions) == 0 {
		return "No transactions yet.", nil
	}

	lines := make([]string, 0, len(actions))
	for _, a := range actions {
		lines = append(lines, i.formatAction(a))
	}
	return strings.Join(lines, "\n"), nil
}

func (i *Interpreter) leaderboard(ctx context.Context) (string, error) {
	balances, err := i.ledger.Leaderboard(ctx, LeaderboardSize, 0)
	if err != nil {
		return "", err
	}
	if len(balances) == 0 {
		return "Nobody has any points yet.", nil
	}

	lines := make([]string, 0, len(balances))
	for _, b := range balances {
		lines = append(lines, fmt.Sprintf("%s: %s", utils.Mention(b.User), i.points(b.Amount)))
	}
	return strings.Join(lines, "\n"), nil
}

func (i *Interpreter) wallet(ctx context.Context, user string) (string, error) {
	amount, _, err := i.ledger.Balance(ctx, user)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s has %s", utils.Mention(user), i.points(amount)), nil
}

func (i *Interpreter) formatAction(a *model.Action) string {
	line := fmt.Sprintf("%s %s -> %s %s (%s)",
		a.Time().Format(historyTimeLayout),
		utils.Mention(a.From),
		utils.Mention(a.To),
		i.points(a.Amount),
		a.Command)
	if a.Note != "" {
		line += fmt.Sprintf(" \"%s\"", utils.Ellipsize(a.Note, noteDisplayLen))
	}
	return line
}

func (i *Interpreter) points(amount int64) string {
	return utils.FormatPoints(i.symbol, amount)
}
