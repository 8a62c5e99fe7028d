package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// DiscordTransport feeds guild and direct messages into a Bot.
type DiscordTransport struct {
	session *discordgo.Session
	bot     *Bot
	log     zerolog.Logger
	ctx     context.Context
}

func NewDiscordTransport(token string, b *Bot, log zerolog.Logger) (*DiscordTransport, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent |
		discordgo.IntentsGuildMembers
	// handlers run one after another, in arrival order
	session.SyncEvents = true

	t := &DiscordTransport{
		session: session,
		bot:     b,
		log:     log,
		ctx:     context.Background(),
	}
	session.AddHandler(t.onReady)
	session.AddHandler(t.onMessage)

	return t, nil
}

// Run connects and blocks until ctx is cancelled.
func (t *DiscordTransport) Run(ctx context.Context) error {
	t.ctx = ctx
	if err := t.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord connection: %w", err)
	}

	<-ctx.Done()
	t.log.Info().Msg("closing discord connection")

	if err := t.session.Close(); err != nil {
		return fmt.Errorf("failed to close discord connection: %w", err)
	}
	return nil
}

func (t *DiscordTransport) onReady(s *discordgo.Session, r *discordgo.Ready) {
	t.bot.SetSelfID(r.User.ID)
	t.log.Info().Str("user", r.User.Username).Msg("logged in")
}

func (t *DiscordTransport) onMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil {
		return
	}

	reply, ok := t.bot.Reply(t.ctx, Message{SenderID: m.Author.ID, Text: m.Content})
	if !ok {
		return
	}

	_, err := s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Content: reply,
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Parse: []discordgo.AllowedMentionType{},
		},
	})
	if err != nil {
		t.log.Error().Err(err).Str("channel", m.ChannelID).Msg("failed to send reply")
	}
}
