package command

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/hance08/pointsbot/internal/utils"
	"github.com/shopspring/decimal"
)

// scanner splits a message into whitespace separated words while keeping
// the untouched remainder available for free-text notes.
type scanner struct {
	rest string
}

func newScanner(text string) *scanner {
	return &scanner{rest: text}
}

func (s *scanner) next() (string, bool) {
	s.rest = strings.TrimLeftFunc(s.rest, unicode.IsSpace)
	if s.rest == "" {
		return "", false
	}
	end := strings.IndexFunc(s.rest, unicode.IsSpace)
	if end < 0 {
		end = len(s.rest)
	}
	word := s.rest[:end]
	s.rest = s.rest[end:]
	return word, true
}

func (s *scanner) remainder() string {
	return strings.TrimSpace(s.rest)
}

type transferArgs struct {
	Command string
	Target  string
	Amount  decimal.Decimal
	Note    string
}

type historyArgs struct {
	Limit  int
	Offset int
}

type walletArgs struct {
	Target string
}

// commandWord consumes the leading word and checks it lies between the
// five character key and the full command name, so "!gran" and "!grant"
// both match while "!grants" does not.
func commandWord(s *scanner, kind Kind, text string) (string, error) {
	word, ok := s.next()
	if !ok || len(word) < keyLen {
		return "", &ParseError{Command: kind.label(), Text: text}
	}
	kw, ok := keywords[word[:keyLen]]
	if !ok || kw.kind != kind || !strings.HasPrefix(kw.full, word) {
		return "", &ParseError{Command: kind.label(), Text: text}
	}
	return kw.full, nil
}

// parseTransfer reads `<command> <mention> [$]<amount> [note]`.
func parseTransfer(kind Kind, text string) (*transferArgs, error) {
	s := newScanner(text)
	word, err := commandWord(s, kind, text)
	if err != nil {
		return nil, err
	}
	fail := &ParseError{Command: kind.label(), Text: text}

	mention, ok := s.next()
	if !ok {
		return nil, fail
	}
	target, ok := utils.ParseMention(mention)
	if !ok {
		return nil, fail
	}

	raw, ok := s.next()
	if !ok {
		return nil, fail
	}
	amount, ok := parseAmount(raw)
	if !ok {
		return nil, fail
	}

	return &transferArgs{
		Command: word,
		Target:  target,
		Amount:  amount,
		Note:    s.remainder(),
	}, nil
}

// parseAmount accepts an optional "$" followed by an unsigned decimal literal.
// A fraction is kept so the ledger can reject it with a proper reason.
func parseAmount(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimPrefix(raw, "$")
	if raw == "" {
		return decimal.Zero, false
	}
	for _, r := range raw {
		if !strings.ContainsRune("0123456789.", r) {
			return decimal.Zero, false
		}
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// parseHistory reads `<command> [limit] [offset]`.
func parseHistory(text string, defaultLimit int) (*historyArgs, error) {
	s := newScanner(text)
	if _, err := commandWord(s, KindHistory, text); err != nil {
		return nil, err
	}
	fail := &ParseError{Command: KindHistory.label(), Text: text}

	args := &historyArgs{Limit: defaultLimit}
	if word, ok := s.next(); ok {
		n, ok := parseCount(word)
		if !ok {
			return nil, fail
		}
		args.Limit = n
	}
	if word, ok := s.next(); ok {
		n, ok := parseCount(word)
		if !ok {
			return nil, fail
		}
		args.Offset = n
	}
	if s.remainder() != "" {
		return nil, fail
	}
	return args, nil
}

func parseCount(word string) (int, bool) {
	n, err := strconv.Atoi(word)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// parseWallet reads `<command> [mention|id]`.
func parseWallet(text string) (*walletArgs, error) {
	s := newScanner(text)
	if _, err := commandWord(s, KindWallet, text); err != nil {
		return nil, err
	}
	fail := &ParseError{Command: KindWallet.label(), Text: text}

	args := &walletArgs{}
	if word, ok := s.next(); ok {
		if id, ok := utils.ParseMention(word); ok {
			args.Target = id
		} else if utils.IsSnowflake(word) {
			args.Target = word
		} else {
			return nil, fail
		}
	}
	if s.remainder() != "" {
		return nil, fail
	}
	return args, nil
}

// parseBare checks the command word of argument-less commands; trailing text is ignored.
func parseBare(kind Kind, text string) error {
	_, err := commandWord(newScanner(text), kind, text)
	return err
}
