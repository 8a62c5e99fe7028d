package prompts

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/huh"
	"github.com/hance08/pointsbot/internal/ui"
)

// PromptSecret asks for a value without echoing it, e.g. the bot token.
func PromptSecret(message string, helpText string) (string, error) {
	var secret string

	err := huh.NewInput().
		Title(message).
		Description(helpText).
		EchoMode(huh.EchoModePassword).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("value is required")
			}
			return nil
		}).
		Value(&secret).
		Run()

	return strings.TrimSpace(secret), err
}

// PromptConfirm asks a y/N question; anything but an explicit yes is a no.
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &confirm, ui.IconOption()); err != nil {
		return false, err
	}

	return confirm, nil
}
