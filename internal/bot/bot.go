// Package bot sits between chat transports and the command interpreter.
package bot

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/hance08/pointsbot/internal/command"
	"github.com/hance08/pointsbot/internal/ledger"
	"github.com/rs/zerolog"
)

const (
	IgnoreNotice  = "Ignoring unknown command. Try !help."
	genericFailed = "ERROR: something went wrong, check the logs."
)

// Message is one inbound chat message.
type Message struct {
	SenderID string
	Text     string
}

type Processor interface {
	IsCommand(text string) bool
	Process(ctx context.Context, sender, text string) (string, error)
}

var _ Processor = (*command.Interpreter)(nil)

type Options struct {
	// SelfID is the bot's own user id; its messages are dropped.
	SelfID string
	// IgnoreNotice answers unknown "!" words instead of staying silent.
	IgnoreNotice bool
}

type Bot struct {
	proc Processor
	log  zerolog.Logger
	opts Options
	mu   sync.Mutex
}

func New(proc Processor, log zerolog.Logger, opts Options) *Bot {
	return &Bot{proc: proc, log: log, opts: opts}
}

// SetSelfID records the bot identity once the transport knows it.
func (b *Bot) SetSelfID(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.opts.SelfID = id
}

// Reply handles one message to completion. ok is false when nothing should be sent back.
// Calls are serialized so no two commands touch the ledger at the same time.
func (b *Bot) Reply(ctx context.Context, msg Message) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.opts.SelfID != "" && msg.SenderID == b.opts.SelfID {
		return "", false
	}
	if !b.proc.IsCommand(msg.Text) {
		if b.opts.IgnoreNotice && strings.HasPrefix(msg.Text, "!") {
			return IgnoreNotice, true
		}
		return "", false
	}

	log := b.log.With().
		Str("request_id", uuid.NewString()).
		Str("sender", msg.SenderID).
		Logger()

	reply, err := b.proc.Process(ctx, msg.SenderID, msg.Text)
	if err != nil {
		return b.failure(log, msg, err), true
	}

	log.Debug().Str("text", msg.Text).Msg("command processed")
	return reply, true
}

func (b *Bot) failure(log zerolog.Logger, msg Message, err error) string {
	var parseErr *command.ParseError
	var validationErr *ledger.ValidationError

	switch {
	case errors.As(err, &parseErr):
		log.Warn().Err(err).Str("text", msg.Text).Msg("command rejected")
		return "Oops: " + parseErr.Error()
	case errors.As(err, &validationErr):
		log.Warn().Err(err).Str("text", msg.Text).Msg("command rejected")
		return "Oops: " + validationErr.Reason
	}

	log.Error().Err(err).Str("text", msg.Text).Msg("command failed")
	return genericFailed
}
