package command

import (
	"errors"
	"fmt"
)

var ErrNotCommand = errors.New("message is not a command")

// ParseError means the text was classified as a command but does not have the expected shape.
type ParseError struct {
	Command string
	Text    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Failed to parse %s command. `%s`", e.Command, e.Text)
}
