package command

import "strings"

// Kind is the closed set of commands the interpreter understands.
type Kind int

const (
	KindUnknown Kind = iota
	KindGrant
	KindGive
	KindTake
	KindHistory
	KindLeaderboard
	KindWallet
	KindHelp
	KindUndo
)

// Command names stored in the action log.
const (
	CommandGrant = "!grant"
	CommandGive  = "!give"
	CommandSend  = "!send"
	CommandTake  = "!take"
)

// keyLen is the length of the classification prefix; every key below has it.
const keyLen = 5

type keyword struct {
	full string
	kind Kind
}

var keywords = map[string]keyword{
	"!gran": {full: "!grant", kind: KindGrant},
	"!hist": {full: "!history", kind: KindHistory},
	"!give": {full: CommandGive, kind: KindGive},
	"!send": {full: CommandSend, kind: KindGive},
	"!take": {full: CommandTake, kind: KindTake},
	"!help": {full: "!help", kind: KindHelp},
	"!undo": {full: "!undo", kind: KindUndo},
	"!lead": {full: "!leaderboard", kind: KindLeaderboard},
	"!wall": {full: "!wallet", kind: KindWallet},
}

// Classify reports which command text addresses, looking only at its first five characters.
func Classify(text string) (Kind, bool) {
	if !strings.HasPrefix(text, "!") || len(text) < keyLen {
		return KindUnknown, false
	}
	kw, ok := keywords[text[:keyLen]]
	if !ok {
		return KindUnknown, false
	}
	return kw.kind, true
}

// label is how a command is named in user-facing parse errors.
func (k Kind) label() string {
	switch k {
	case KindGrant:
		return CommandGrant
	case KindGive:
		return CommandGive
	case KindTake:
		return CommandTake
	case KindHistory:
		return "!hist[ory]"
	case KindLeaderboard:
		return "!lead[erboard]"
	case KindWallet:
		return "!wall[et]"
	case KindHelp:
		return "!help"
	case KindUndo:
		return "!undo"
	default:
		return "unknown"
	}
}

func (k Kind) String() string {
	return k.label()
}
