package command

import "github.com/shopspring/decimal"

const undoNote = "undo"

// TransferIntent is a fully parsed grant, give or take, either typed by a
// user or synthesized by undo.
type TransferIntent struct {
	Sender  string
	Target  string
	Amount  decimal.Decimal
	Kind    Kind
	Command string
	Note    string
	Undo    bool
}

func newTransferIntent(sender string, kind Kind, args *transferArgs) TransferIntent {
	return TransferIntent{
		Sender:  sender,
		Target:  args.Target,
		Amount:  args.Amount,
		Kind:    kind,
		Command: args.Command,
		Note:    args.Note,
	}
}
