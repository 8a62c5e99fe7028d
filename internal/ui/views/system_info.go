package views

import (
	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath     string
	DBPath         string
	DBExists       bool // true = Found, false = Not Found
	CurrencySymbol string
	MaxAmount      int64
	Transfers      int64
	AppDataDir     string
}

func RenderSystemInfo(data SystemInfoItem) error {
	dbStatus := pterm.Green("Found")
	if !data.DBExists {
		dbStatus = pterm.Red("Not Found (Will be created)")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Database Path", data.DBPath},
		{"Database Status", dbStatus},
		{"Recorded Transfers", humanize.Comma(data.Transfers)},
		{"Currency Symbol", data.CurrencySymbol},
		{"Transfer Ceiling", humanize.Comma(data.MaxAmount)},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
