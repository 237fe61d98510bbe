// Package help contains the keybinding help overlay.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/rishabh06704/getdaysleft/internal/keys"
	"github.com/rishabh06704/getdaysleft/internal/ui/overlay"
	"github.com/rishabh06704/getdaysleft/internal/ui/styles"
)

// sections names the groups returned by KeyMap.FullHelp, in order.
var sections = []string{"Form", "Actions", "General"}

// Model holds the help view state.
type Model struct {
	keys   keys.KeyMap
	width  int
	height int
}

// New creates a help view for the given key map.
func New(km keys.KeyMap) Model {
	return Model{keys: km}
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the help box centred in an empty viewport.
func (m Model) View() string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderBox())
}

// Overlay renders the help box centred on top of background.
func (m Model) Overlay(background string) string {
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.renderBox(), background)
}

func (m Model) renderBox() string {
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.TextPrimaryColor).MarginTop(1)
	keyStyle := lipgloss.NewStyle().Foreground(styles.AccentColor).Width(11)
	descStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)

	groups := m.keys.FullHelp()
	cols := make([]string, 0, len(groups))
	for i, group := range groups {
		var col strings.Builder
		if i < len(sections) {
			col.WriteString(sectionStyle.Render(sections[i]))
			col.WriteString("\n")
		}
		for _, b := range group {
			col.WriteString(renderBinding(b, keyStyle, descStyle))
		}
		style := lipgloss.NewStyle()
		if i < len(groups)-1 {
			style = style.MarginRight(4)
		}
		cols = append(cols, style.Render(col.String()))
	}

	columns := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	boxWidth := lipgloss.Width(columns) + 4

	footer := lipgloss.NewStyle().Foreground(styles.TextMutedColor).MarginTop(1).Render("Press ? to close")
	body := lipgloss.NewStyle().Padding(0, 2).Render(columns + "\n" + footer)

	var content strings.Builder
	content.WriteString(lipgloss.NewStyle().Bold(true).PaddingLeft(2).Render("Keybindings"))
	content.WriteString("\n")
	content.WriteString(lipgloss.NewStyle().Foreground(styles.BorderDefaultColor).Render(strings.Repeat("─", boxWidth)))
	content.WriteString("\n")
	content.WriteString(body)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderDefaultColor).
		Width(boxWidth).
		Render(content.String())
}

func renderBinding(b key.Binding, keyStyle, descStyle lipgloss.Style) string {
	h := b.Help()
	return keyStyle.Render(h.Key) + descStyle.Render(h.Desc) + "\n"
}
