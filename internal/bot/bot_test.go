package bot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/hance08/pointsbot/internal/command"
	"github.com/hance08/pointsbot/internal/ledger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProcessor struct {
	IsCommandFunc func(text string) bool
	ProcessFunc   func(ctx context.Context, sender, text string) (string, error)
	calls         int
}

var _ Processor = (*fakeProcessor)(nil)

func (f *fakeProcessor) IsCommand(text string) bool {
	return f.IsCommandFunc(text)
}

func (f *fakeProcessor) Process(ctx context.Context, sender, text string) (string, error) {
	f.calls++
	return f.ProcessFunc(ctx, sender, text)
}

func answering(reply string, err error) *fakeProcessor {
	return &fakeProcessor{
		IsCommandFunc: func(text string) bool { return text == "!cmd" },
		ProcessFunc: func(ctx context.Context, sender, text string) (string, error) {
			return reply, err
		},
	}
}

func TestReply_Success(t *testing.T) {
	b := New(answering("done", nil), zerolog.Nop(), Options{})

	reply, ok := b.Reply(context.Background(), Message{SenderID: "1", Text: "!cmd"})
	assert.True(t, ok)
	assert.Equal(t, "done", reply)
}

func TestReply_IgnoresNonCommands(t *testing.T) {
	proc := answering("done", nil)
	b := New(proc, zerolog.Nop(), Options{})

	for _, text := range []string{"hello", "!nope", ""} {
		_, ok := b.Reply(context.Background(), Message{SenderID: "1", Text: text})
		assert.False(t, ok, text)
	}
	assert.Zero(t, proc.calls)
}

func TestReply_IgnoreNotice(t *testing.T) {
	b := New(answering("done", nil), zerolog.Nop(), Options{IgnoreNotice: true})

	reply, ok := b.Reply(context.Background(), Message{SenderID: "1", Text: "!nope"})
	assert.True(t, ok)
	assert.Equal(t, IgnoreNotice, reply)

	_, ok = b.Reply(context.Background(), Message{SenderID: "1", Text: "plain chat"})
	assert.False(t, ok)
}

func TestReply_DropsOwnMessages(t *testing.T) {
	proc := answering("done", nil)
	b := New(proc, zerolog.Nop(), Options{})
	b.SetSelfID("99")

	_, ok := b.Reply(context.Background(), Message{SenderID: "99", Text: "!cmd"})
	assert.False(t, ok)
	assert.Zero(t, proc.calls)
}

func TestReply_Failures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "validation",
			err:  ledger.Invalid("Can't grant zero points."),
			want: "Oops: Can't grant zero points.",
		},
		{
			name: "wrapped validation",
			err:  fmt.Errorf("undo: %w", ledger.Invalid("Can't take zero points.")),
			want: "Oops: Can't take zero points.",
		},
		{
			name: "parse",
			err:  &command.ParseError{Command: "!grant", Text: "!grant x"},
			want: "Oops: Failed to parse !grant command. `!grant x`",
		},
		{
			name: "internal",
			err:  errors.New("database is locked"),
			want: "ERROR: something went wrong, check the logs.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			b := New(answering("", tt.err), zerolog.New(&buf), Options{})

			reply, ok := b.Reply(context.Background(), Message{SenderID: "1", Text: "!cmd"})
			assert.True(t, ok)
			assert.Equal(t, tt.want, reply)
			assert.Contains(t, buf.String(), `"request_id"`)
		})
	}
}

func TestReply_LogsInternalErrors(t *testing.T) {
	var buf bytes.Buffer
	b := New(answering("", errors.New("database is locked")), zerolog.New(&buf), Options{})

	_, ok := b.Reply(context.Background(), Message{SenderID: "7", Text: "!cmd"})
	require.True(t, ok)

	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "database is locked")
	assert.Contains(t, buf.String(), `"sender":"7"`)
}
