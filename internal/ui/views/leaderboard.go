package views

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/hance08/pointsbot/internal/model"
	"github.com/pterm/pterm"
)

type LeaderboardView struct {
	symbol string
}

func NewLeaderboardView(symbol string) *LeaderboardView {
	return &LeaderboardView{symbol: symbol}
}

func (v *LeaderboardView) Render(balances []*model.Balance, offset int) error {
	if len(balances) == 0 {
		pterm.Warning.Println("Nobody has any points yet")
		return nil
	}

	pterm.DefaultSection.Printf("Leaderboard")

	tableData := pterm.TableData{
		{"Rank", "User", "Balance", "Last Change"},
	}

	for i, b := range balances {
		amount := v.symbol + humanize.Comma(b.Amount)
		switch {
		case b.Amount > 0:
			amount = pterm.Green(amount)
		case b.Amount < 0:
			amount = pterm.Red(amount)
		default:
			amount = pterm.Gray(amount)
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", offset+i+1),
			b.User,
			amount,
			formatUnix(b.UpdatedAt),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d users\n", len(balances))
	return nil
}
