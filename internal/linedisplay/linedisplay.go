// Package linedisplay renders a countdown as plain lines of text for the
// non-interactive commands.
package linedisplay

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rishabh06704/getdaysleft/internal/countdown"
	"github.com/rishabh06704/getdaysleft/internal/ui/styles"
)

// Display is a countdown.Display that writes to a pair of writers.
// Alerts and toasts go to errOut as they happen; the slots are written
// when Print or PrintLine is called.
type Display struct {
	*countdown.Panel

	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
}

var _ countdown.Display = (*Display)(nil)

// New returns a display writing countdowns to out and notices to errOut.
func New(out, errOut io.Writer) *Display {
	if errOut == nil {
		errOut = out
	}
	return &Display{Panel: countdown.NewPanel(), out: out, errOut: errOut}
}

// Alert implements countdown.Display.
func (d *Display) Alert(message string) {
	d.write(d.errOut, styles.StatusStyle.Render("Error: "+message)+"\n")
}

// Toast implements countdown.Display.
func (d *Display) Toast(message string) {
	d.write(d.errOut, message+"\n")
}

// Render returns the full countdown block, or "" while results are hidden.
func (d *Display) Render() string {
	if !d.Visible(countdown.ElementResults) {
		return ""
	}
	s := d.Snapshot()

	lines := []string{
		styles.BigNumberStyle.Render(s.BigNumber) + " " + styles.LabelStyle.Render(s.Label),
		d.units(s),
	}
	if s.StatusVisible {
		lines = append(lines, styles.StatusStyle.Render(s.Status))
	}
	lines = append(lines, styles.TargetStyle.Render(s.Target))
	return strings.Join(lines, "\n") + "\n"
}

// Line returns the countdown on a single line.
func (d *Display) Line() string {
	s := d.Snapshot()
	line := fmt.Sprintf("%s %s | %s", s.BigNumber, s.Label, d.units(s))
	if s.StatusVisible {
		line += " | " + s.Status
	}
	return line + "\n"
}

func (d *Display) units(s countdown.DisplayStrings) string {
	parts := []string{
		styles.UnitLabelStyle.Render("Days") + " " + styles.UnitValueStyle.Render(s.Days),
		styles.UnitLabelStyle.Render("Hours") + " " + styles.UnitValueStyle.Render(s.Hours),
		styles.UnitLabelStyle.Render("Minutes") + " " + styles.UnitValueStyle.Render(s.Minutes),
		styles.UnitLabelStyle.Render("Seconds") + " " + styles.UnitValueStyle.Render(s.Seconds),
	}
	return strings.Join(parts, "  ")
}

// Print writes the countdown block to out.
func (d *Display) Print() {
	d.write(d.out, d.Render())
}

// PrintLine writes the single-line countdown to out.
func (d *Display) PrintLine() {
	d.write(d.out, d.Line())
}

func (d *Display) write(w io.Writer, s string) {
	if s == "" {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	_, _ = io.WriteString(w, s)
}
