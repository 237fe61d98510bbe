// Package toaster shows short-lived notices at the bottom of the screen.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rishabh06704/getdaysleft/internal/ui/overlay"
	"github.com/rishabh06704/getdaysleft/internal/ui/styles"
)

// DefaultDuration is how long a toast stays on screen.
const DefaultDuration = 1500 * time.Millisecond

// Style picks the icon and border colour of a toast.
type Style int

const (
	StyleSuccess Style = iota
	StyleError
	StyleInfo
)

type look struct {
	icon   string
	border lipgloss.AdaptiveColor
}

func (s Style) look() look {
	switch s {
	case StyleError:
		return look{"❌", styles.ToastBorderErrorColor}
	case StyleInfo:
		return look{"ℹ️", styles.ToastBorderInfoColor}
	default:
		return look{"✅", styles.ToastBorderSuccessColor}
	}
}

// Model is the current toast, if any. Showing a toast replaces the
// previous one.
type Model struct {
	message string
	style   Style
	seq     int
}

// New returns an empty toaster.
func New() Model {
	return Model{}
}

// DismissMsg is delivered when a toast's display time runs out.
type DismissMsg struct {
	Seq int
}

// Show puts message on screen and returns the command that removes it
// after d.
func (m Model) Show(message string, style Style, d time.Duration) (Model, tea.Cmd) {
	m.seq++
	m.message = message
	m.style = style
	seq := m.seq
	return m, tea.Tick(d, func(time.Time) tea.Msg { return DismissMsg{Seq: seq} })
}

// Hide clears the toast.
func (m Model) Hide() Model {
	m.message = ""
	return m
}

// Update clears the toast on its own DismissMsg. Timers from replaced
// toasts are ignored.
func (m Model) Update(msg tea.Msg) Model {
	if d, ok := msg.(DismissMsg); ok && d.Seq == m.seq {
		return m.Hide()
	}
	return m
}

// Visible reports whether a toast is showing.
func (m Model) Visible() bool {
	return m.message != ""
}

// Message returns the toast text, or "" when nothing is showing.
func (m Model) Message() string {
	return m.message
}

// View renders the toast box.
func (m Model) View() string {
	if !m.Visible() {
		return ""
	}
	l := m.style.look()
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(l.border).
		Padding(0, 1).
		Render(l.icon + " " + m.message)
}

// Overlay draws the toast centred one row above the bottom of bg.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.Visible() {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    width,
		Height:   height,
		Position: overlay.Bottom,
		PadY:     1,
	}, m.View(), bg)
}
