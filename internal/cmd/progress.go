package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
)

// progress renders splitter events. In verbose mode every file gets a
// "File 000001:" row with one glyph per line written; otherwise the spinner
// message tracks the current file.
type progress struct {
	ui      *UI
	out     io.Writer
	verbose bool
	label   *color.Color
	glyph   *color.Color
	rowOpen bool
}

func newProgress(ui *UI, out io.Writer, verbose bool) *progress {
	return &progress{
		ui:      ui,
		out:     out,
		verbose: verbose,
		label:   color.New(color.FgWhite),
		glyph:   color.New(color.FgGreen),
	}
}

func (p *progress) FileStarted(index int, path string) {
	if !p.verbose {
		p.ui.UpdateSpinner(fmt.Sprintf("Writing %s", filepath.Base(path)))
		return
	}
	p.label.Fprintf(p.out, "File %06d:     ", index)
	p.rowOpen = true
}

func (p *progress) LineWritten(int, int) {
	if p.verbose {
		p.glyph.Fprint(p.out, "▒")
	}
}

func (p *progress) FileFinished(_ int, _ string, lines int) {
	if !p.verbose {
		return
	}
	fmt.Fprintf(p.out, " %d\n", lines)
	p.rowOpen = false
}

// done terminates a row left open by a failed run.
func (p *progress) done() {
	if p.rowOpen {
		fmt.Fprintln(p.out)
		p.rowOpen = false
	}
}
