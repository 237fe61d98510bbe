// Package overlay draws one block of styled text over another without
// clearing what is underneath.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Position specifies where to place the overlay content.
type Position int

const (
	Center Position = iota // middle of the viewport
	Top                    // top center, PadY rows down
	Bottom                 // bottom center, PadY rows up
)

// Config controls overlay rendering behavior.
type Config struct {
	Width    int // viewport width
	Height   int // viewport height
	Position Position
	PadY     int // rows between the overlay and the top or bottom edge
}

// Place renders fg on top of bg. Both may contain ANSI styling; cells of bg
// left and right of fg keep theirs.
func Place(cfg Config, fg, bg string) string {
	rows := strings.Split(bg, "\n")
	for len(rows) < cfg.Height {
		rows = append(rows, strings.Repeat(" ", cfg.Width))
	}

	fgRows := strings.Split(fg, "\n")
	x, y := origin(cfg, lipgloss.Width(fg), len(fgRows))

	for i, fgRow := range fgRows {
		if y+i >= len(rows) {
			break
		}
		rows[y+i] = splice(rows[y+i], fgRow, x)
	}
	return strings.Join(rows, "\n")
}

// splice replaces the cells of row starting at column x with patch.
func splice(row, patch string, x int) string {
	left := ansi.Truncate(row, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}

	end := x + ansi.StringWidth(patch)
	var right string
	if end < ansi.StringWidth(row) {
		right = ansi.TruncateLeft(row, end, "")
	}
	return left + patch + right
}

// origin returns the top-left cell for a block of the given size.
func origin(cfg Config, w, h int) (x, y int) {
	x = (cfg.Width - w) / 2
	switch cfg.Position {
	case Top:
		y = cfg.PadY
	case Bottom:
		y = cfg.Height - h - cfg.PadY
	default:
		y = (cfg.Height - h) / 2
	}
	return max(x, 0), max(y, 0)
}
