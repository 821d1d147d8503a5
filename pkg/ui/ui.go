package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
)

var (
	// Emojis
	SuccessEmoji = "✔"
	ErrorEmoji   = "✖"

	// Printers
	Success = pterm.PrefixPrinter{Prefix: pterm.Prefix{Text: SuccessEmoji, Style: pterm.NewStyle(pterm.FgGreen)}, MessageStyle: pterm.NewStyle(pterm.FgDefault)}
	Warn    = pterm.PrefixPrinter{Prefix: pterm.Prefix{Text: "⚠️ ", Style: pterm.NewStyle(pterm.FgYellow)}, MessageStyle: pterm.NewStyle(pterm.FgDefault)}
	Error   = pterm.PrefixPrinter{Prefix: pterm.Prefix{Text: ErrorEmoji, Style: pterm.NewStyle(pterm.FgRed)}, MessageStyle: pterm.NewStyle(pterm.FgDefault)}
)

// Out receives plain command output. Printers follow it through SetOutput.
var Out io.Writer = os.Stdout

// Log is the debug logger; it writes to stderr and stays quiet unless SetDebug(true).
var Log = pterm.DefaultLogger.WithWriter(os.Stderr).WithLevel(pterm.LogLevelWarn)

func init() {
	pterm.EnableColor()
}

// SetOutput redirects all printers and plain output to w.
func SetOutput(w io.Writer) {
	Out = w
	pterm.SetDefaultOutput(w)
}

// SetDebug switches debug logging on or off.
func SetDebug(on bool) {
	if on {
		Log = Log.WithLevel(pterm.LogLevelDebug)
		return
	}
	Log = Log.WithLevel(pterm.LogLevelWarn)
}

// Spin configures and returns a spinner
func Spin(text string) (*pterm.SpinnerPrinter, error) {
	pterm.DefaultSpinner.Sequence = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	return pterm.DefaultSpinner.WithText(text).WithWriter(Out).WithRemoveWhenDone(true).Start()
}

// Action shows progress for one long-running step and ends with a single status line.
type Action struct {
	spinner *pterm.SpinnerPrinter
}

// StartAction begins an action. With a terminal it animates a spinner, otherwise
// it prints text once so logs stay readable.
func StartAction(text string, interactive bool) *Action {
	if interactive {
		if spinner, err := Spin(text); err == nil {
			return &Action{spinner: spinner}
		}
	}
	fmt.Fprintln(Out, text)
	return &Action{}
}

// Succeed ends the action with msg on the Success printer.
func (a *Action) Succeed(msg string) {
	a.halt()
	Success.Println(msg)
}

// Stop ends the action and prints msg verbatim.
func (a *Action) Stop(msg string) {
	a.halt()
	fmt.Fprintln(Out, msg)
}

func (a *Action) halt() {
	if a.spinner != nil {
		_ = a.spinner.Stop()
		a.spinner = nil
	}
}
