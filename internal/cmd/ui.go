package cmd

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// UI provides user interface helpers. Messages go to out, errors and
// warnings to errOut. In quiet mode (structured output) only errors print.
type UI struct {
	out            io.Writer
	errOut         io.Writer
	spinner        *spinner.Spinner
	quiet          bool
	nonInteractive bool
}

// NewUI creates a new UI helper.
func NewUI(out, errOut io.Writer, quiet bool) *UI {
	// Detect if running in a non-interactive environment
	nonInteractive := !isTerminal() || os.Getenv("CI") != "" || os.Getenv("NO_COLOR") != ""

	// Respect --no-color flag or NO_COLOR env
	noColor := cfg.NoColor || os.Getenv("NO_COLOR") != "" || nonInteractive

	if noColor {
		color.NoColor = true
	}

	return &UI{
		out:            out,
		errOut:         errOut,
		quiet:          quiet,
		nonInteractive: nonInteractive,
	}
}

// Interactive reports whether animated output (spinners) may be used.
func (u *UI) Interactive() bool {
	return !u.quiet && !u.nonInteractive
}

// StartSpinner starts a spinner with a message.
func (u *UI) StartSpinner(msg string) {
	if !u.Interactive() {
		return
	}
	u.spinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	u.spinner.Suffix = " " + msg
	u.spinner.Writer = u.out
	u.spinner.Start()
}

// UpdateSpinner replaces the message of a running spinner.
func (u *UI) UpdateSpinner(msg string) {
	if u.spinner == nil {
		return
	}
	u.spinner.Lock()
	u.spinner.Suffix = " " + msg
	u.spinner.Unlock()
}

// StopSpinner stops the spinner without printing anything.
func (u *UI) StopSpinner() {
	if u.spinner == nil {
		return
	}
	u.spinner.Stop()
	u.spinner = nil
}

// StopSpinnerMsg stops the spinner, if any, and prints a message.
func (u *UI) StopSpinnerMsg(success bool, msg string) {
	u.StopSpinner()
	if success {
		u.Success(msg)
	} else {
		u.Error(msg)
	}
}

// Success prints a success message.
func (u *UI) Success(msg string) {
	if u.quiet {
		return
	}
	color.New(color.FgGreen).Fprintf(u.out, "✓ %s\n", msg)
}

// Error prints an error message. Errors print even in quiet mode.
func (u *UI) Error(msg string) {
	color.New(color.FgRed).Fprintf(u.errOut, "ERROR: %s\n", msg)
}

// Info prints an info message.
func (u *UI) Info(msg string) {
	if u.quiet {
		return
	}
	color.New(color.FgCyan).Fprintf(u.out, "ℹ %s\n", msg)
}

// Warning prints a warning message.
func (u *UI) Warning(msg string) {
	color.New(color.FgYellow).Fprintf(u.errOut, "WARNING: %s\n", msg)
}

// Header prints a header/title.
func (u *UI) Header(msg string) {
	if u.quiet {
		return
	}
	color.New(color.FgWhite, color.Bold).Fprintf(u.out, "\n%s\n", msg)
}

func isTerminal() bool {
	if fileInfo, _ := os.Stdout.Stat(); fileInfo != nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}
	return false
}
