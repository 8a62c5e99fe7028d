package views

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hance08/pointsbot/internal/model"
	"github.com/hance08/pointsbot/internal/utils"
	"github.com/pterm/pterm"
)

const dateTimeLayout = "2006-01-02 15:04:05"

type HistoryView struct {
	symbol string
}

func NewHistoryView(symbol string) *HistoryView {
	return &HistoryView{symbol: symbol}
}

func (v *HistoryView) Render(actions []*model.Action, limit int) error {
	if len(actions) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	pterm.DefaultSection.Printf("Showing recent transactions (limit: %d)", limit)

	tableData := pterm.TableData{
		{"Date", "From", "To", "Amount", "Command", "Note"},
	}

	for _, a := range actions {
		var coloredCommand string

		switch a.Command {
		case "!grant":
			coloredCommand = pterm.Green(a.Command)
		case "!take":
			coloredCommand = pterm.Red(a.Command)
		case "!give", "!send":
			coloredCommand = pterm.Blue(a.Command)
		default:
			coloredCommand = a.Command
		}

		tableData = append(tableData, []string{
			formatUnix(a.Timestamp),
			a.From,
			a.To,
			v.symbol + humanize.Comma(a.Amount),
			coloredCommand,
			utils.Ellipsize(a.Note, 40),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(actions))
	return nil
}

func formatUnix(ts int64) string {
	if ts == 0 {
		return "-"
	}
	return time.Unix(ts, 0).UTC().Format(dateTimeLayout)
}
