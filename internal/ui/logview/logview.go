// Package logview shows recent debug log entries in an overlay, with level
// filtering and scrolling.
package logview

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/rishabh06704/getdaysleft/internal/log"
	"github.com/rishabh06704/getdaysleft/internal/ui/overlay"
	"github.com/rishabh06704/getdaysleft/internal/ui/styles"
)

const (
	maxEntries        = 200
	viewportMaxHeight = 15
	viewportMinHeight = 3
	boxMaxWidth       = 120
	boxMinWidth       = 30
)

// Model holds the entries received so far and the overlay state.
type Model struct {
	entries  []string
	minLevel log.Level
	visible  bool
	width    int
	height   int
	viewport viewport.Model
}

// New returns a hidden log view showing every level.
func New() Model {
	return Model{minLevel: log.LevelDebug}
}

// Append adds one entry, dropping the oldest beyond the buffer size.
func (m Model) Append(entry string) Model {
	m.entries = append(m.entries, strings.TrimRight(entry, "\n"))
	if len(m.entries) > maxEntries {
		m.entries = m.entries[len(m.entries)-maxEntries:]
	}
	if m.visible {
		m.refresh()
		m.viewport.GotoBottom()
	}
	return m
}

// Update handles keys while the overlay is visible:
// c clears, d/i/w/e filter, j/k scroll, esc or ctrl+x close.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "c":
			m.entries = nil
		case "d":
			m.minLevel = log.LevelDebug
		case "i":
			m.minLevel = log.LevelInfo
		case "w":
			m.minLevel = log.LevelWarn
		case "e":
			m.minLevel = log.LevelError
		case "j", "down":
			m.viewport.ScrollDown(1)
			return m, nil
		case "k", "up":
			m.viewport.ScrollUp(1)
			return m, nil
		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		case "ctrl+x", "esc":
			m.visible = false
			return m, nil
		default:
			return m, nil
		}
		m.refresh()

	case tea.WindowSizeMsg:
		m = m.SetSize(msg.Width, msg.Height)
	}
	return m, nil
}

// Toggle shows or hides the overlay.
func (m Model) Toggle() Model {
	m.visible = !m.visible
	if m.visible {
		m.refresh()
		m.viewport.GotoBottom()
	}
	return m
}

// SetSize records the screen size.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	m.refresh()
	return m
}

// Visible reports whether the overlay is shown.
func (m Model) Visible() bool {
	return m.visible
}

// MinLevel returns the current filter level.
func (m Model) MinLevel() log.Level {
	return m.minLevel
}

// Filtered returns the entries at or above the filter level.
func (m Model) Filtered() []string {
	var out []string
	for _, entry := range m.entries {
		if level, ok := levelOf(entry); !ok || level >= m.minLevel {
			out = append(out, entry)
		}
	}
	return out
}

// View renders the bordered log box.
func (m Model) View() string {
	if !m.visible {
		return ""
	}
	width := m.boxWidth()

	divider := lipgloss.NewStyle().
		Foreground(styles.BorderDefaultColor).
		Render(strings.Repeat("─", width))
	title := lipgloss.NewStyle().Bold(true).Foreground(styles.AccentColor).PaddingLeft(1).Render("Debug log")

	body := strings.Join([]string{title, divider, m.viewport.View(), divider, m.filterHint()}, "\n")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderDefaultColor).
		Width(width).
		Render(body)
}

// Overlay draws the log box centered over bg.
func (m Model) Overlay(bg string) string {
	if !m.visible {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}

func (m Model) boxWidth() int {
	return max(min(m.width-4, boxMaxWidth), boxMinWidth)
}

func (m *Model) refresh() {
	if m.width == 0 || m.height == 0 {
		return
	}
	contentWidth := m.boxWidth() - 2
	// Title, two dividers, the hint line and the border take 6 lines.
	height := max(min(viewportMaxHeight, m.height-6), viewportMinHeight)

	m.viewport = viewport.New(contentWidth, height)
	m.viewport.SetContent(m.content(contentWidth))
}

func (m Model) content(width int) string {
	filtered := m.Filtered()
	if len(filtered) == 0 {
		return lipgloss.NewStyle().Foreground(styles.TextMutedColor).Italic(true).Render("No log entries")
	}
	lines := make([]string, len(filtered))
	for i, entry := range filtered {
		lines[i] = colorize(entry, width)
	}
	return strings.Join(lines, "\n")
}

func levelOf(entry string) (log.Level, bool) {
	switch {
	case strings.Contains(entry, "[ERROR]"):
		return log.LevelError, true
	case strings.Contains(entry, "[WARN]"):
		return log.LevelWarn, true
	case strings.Contains(entry, "[INFO]"):
		return log.LevelInfo, true
	case strings.Contains(entry, "[DEBUG]"):
		return log.LevelDebug, true
	}
	return log.LevelDebug, false
}

func colorize(entry string, width int) string {
	if ansi.StringWidth(entry) > width {
		entry = ansi.Truncate(entry, width-3, "...")
	}

	color := styles.TextPrimaryColor
	if level, ok := levelOf(entry); ok {
		switch level {
		case log.LevelError:
			color = styles.StatusErrorColor
		case log.LevelWarn:
			color = styles.StatusWarningColor
		case log.LevelInfo:
			color = styles.ToastBorderInfoColor
		case log.LevelDebug:
			color = styles.TextMutedColor
		}
	}
	return lipgloss.NewStyle().Foreground(color).Render(entry)
}

func (m Model) filterHint() string {
	hint := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	active := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Bold(true)

	parts := []string{hint.Render("[c] Clear")}
	for _, f := range []struct {
		level log.Level
		label string
	}{
		{log.LevelDebug, "[d] Debug"},
		{log.LevelInfo, "[i] Info"},
		{log.LevelWarn, "[w] Warn"},
		{log.LevelError, "[e] Error"},
	} {
		if f.level == m.minLevel {
			parts = append(parts, active.Render(f.label))
		} else {
			parts = append(parts, hint.Render(f.label))
		}
	}
	return strings.Join(parts, "  ")
}
