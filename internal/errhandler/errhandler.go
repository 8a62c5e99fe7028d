package errhandler

import (
	"errors"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

// HandleError prints err for the operator and returns the process exit code.
// An interrupted prompt is a cancellation, not a failure.
func HandleError(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, huh.ErrUserAborted) {
		pterm.Warning.Println("Operation Cancelled")
		return 0
	}

	pterm.Error.Println(capitalize(err.Error()))
	return 1
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
