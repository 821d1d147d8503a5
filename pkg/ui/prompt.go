package ui

import (
	"github.com/pterm/pterm"
)

// Prompter asks the user for a single line of input.
// Consumers should accept this interface to enable testing with mocks.
type Prompter interface {
	Ask(question string) (string, error)
	AskSecret(question string) (string, error)
}

// TerminalPrompter prompts on the controlling terminal.
type TerminalPrompter struct{}

// Compile-time check that TerminalPrompter implements Prompter.
var _ Prompter = TerminalPrompter{}

// Ask shows question and returns the typed answer.
func (TerminalPrompter) Ask(question string) (string, error) {
	return pterm.DefaultInteractiveTextInput.Show(question)
}

// AskSecret is Ask with the answer masked while typing.
func (TerminalPrompter) AskSecret(question string) (string, error) {
	return pterm.DefaultInteractiveTextInput.WithMask("*").Show(question)
}
