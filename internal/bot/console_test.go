package bot

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/hance08/pointsbot/internal/command"
	"github.com/hance08/pointsbot/internal/ledger"
	"github.com/hance08/pointsbot/internal/store/memory"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConsoleBot(t *testing.T) *Bot {
	t.Helper()
	engine := ledger.NewEngine(memory.NewStore(), zerolog.Nop(),
		ledger.WithClock(func() time.Time { return time.Unix(0, 0) }))
	return New(command.NewInterpreter(engine, ""), zerolog.Nop(), Options{})
}

func TestConsoleTransport_Session(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"!grant <@2> 100",
		"just chatting",
		"/as <@2>",
		"!give <@3> 40",
		"!wallet",
		"!give <@2> 1",
	}, "\n"))
	var out bytes.Buffer

	transport := NewConsoleTransport(newConsoleBot(t), "1", in, &out)
	require.NoError(t, transport.Run(context.Background()))

	assert.Equal(t, "2", transport.Sender())
	assert.Equal(t, strings.Join([]string{
		"<@1> granted ꙮ100 to <@2>!",
		"now speaking as <@2>",
		"Gave ꙮ40 from <@2> to <@3>!",
		"<@2> has ꙮ60",
		"Oops: Giving points to yourself doesn't do anything.",
		"(Use !grant to get them from the bank.)",
	}, "\n")+"\n", out.String())
}

func TestConsoleTransport_Prompt(t *testing.T) {
	var out bytes.Buffer

	transport := NewConsoleTransport(newConsoleBot(t), "1", strings.NewReader("!wallet\n"), &out).
		WithPrompt("> ")
	require.NoError(t, transport.Run(context.Background()))

	assert.Equal(t, "> <@1> has ꙮ0\n> ", out.String())
}

func TestConsoleTransport_BadSwitch(t *testing.T) {
	var out bytes.Buffer

	transport := NewConsoleTransport(newConsoleBot(t), "1", strings.NewReader("/as  \n/as bob\n"), &out)
	require.NoError(t, transport.Run(context.Background()))

	assert.Equal(t, "1", transport.Sender())
	assert.Equal(t, "usage: /as <user id>\nusage: /as <user id>\n", out.String())
}

func TestConsoleTransport_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer

	transport := NewConsoleTransport(newConsoleBot(t), "1", strings.NewReader("!grant <@2> 5\n"), &out)
	require.NoError(t, transport.Run(ctx))
	assert.Empty(t, out.String())
}
