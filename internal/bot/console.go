package bot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hance08/pointsbot/internal/utils"
)

const switchSenderCommand = "/as"

// ConsoleTransport reads one message per line and writes replies back.
// A line "/as <id>" changes who the following messages come from.
type ConsoleTransport struct {
	bot    *Bot
	sender string
	in     io.Reader
	out    io.Writer
	prompt string
}

func NewConsoleTransport(b *Bot, sender string, in io.Reader, out io.Writer) *ConsoleTransport {
	return &ConsoleTransport{bot: b, sender: sender, in: in, out: out}
}

// WithPrompt sets the text printed before each line is read.
func (c *ConsoleTransport) WithPrompt(prompt string) *ConsoleTransport {
	c.prompt = prompt
	return c
}

func (c *ConsoleTransport) Sender() string {
	return c.sender
}

// Run processes lines until the input ends or ctx is cancelled.
func (c *ConsoleTransport) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(c.in)
	for {
		if c.prompt != "" {
			fmt.Fprint(c.out, c.prompt)
		}
		if !scanner.Scan() {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if word, rest, _ := strings.Cut(line, " "); word == switchSenderCommand {
			c.switchSender(strings.TrimSpace(rest))
			continue
		}

		reply, ok := c.bot.Reply(ctx, Message{SenderID: c.sender, Text: line})
		if ok {
			fmt.Fprintln(c.out, reply)
		}
	}
	return scanner.Err()
}

func (c *ConsoleTransport) switchSender(id string) {
	if mention, ok := utils.ParseMention(id); ok {
		id = mention
	}
	if !utils.IsSnowflake(id) {
		fmt.Fprintln(c.out, "usage: /as <user id>")
		return
	}
	c.sender = id
	fmt.Fprintf(c.out, "now speaking as %s\n", utils.Mention(id))
}
