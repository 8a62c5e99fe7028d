package errhandler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestHandleError(t *testing.T) {
	pterm.DisableOutput()
	defer pterm.EnableOutput()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"survey interrupt", terminal.InterruptErr, 0},
		{"wrapped huh abort", fmt.Errorf("prompt: %w", huh.ErrUserAborted), 0},
		{"failure", errors.New("database is locked"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HandleError(tt.err))
		})
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "Failed to open", capitalize("failed to open"))
	assert.Equal(t, "ꙮ", capitalize("ꙮ"))
}
