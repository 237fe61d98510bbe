package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"

	"github.com/rishabh06704/getdaysleft/internal/countdown"
	"github.com/rishabh06704/getdaysleft/internal/ui/styles"
)

const (
	defaultWidth = 60
	maxCardWidth = 64
)

var units = []struct {
	slot  countdown.Slot
	label string
}{
	{countdown.SlotDays, "Days"},
	{countdown.SlotHours, "Hours"},
	{countdown.SlotMinutes, "Minutes"},
	{countdown.SlotSeconds, "Seconds"},
}

// View implements tea.Model.
func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	cardWidth := min(width-4, maxCardWidth)

	sections := []string{m.renderTitle(width - 4), m.renderForm(), m.renderButtons()}
	if m.screen.Visible(countdown.ElementResults) {
		sections = append(sections, m.renderResults(cardWidth))
	}
	if m.showKeys {
		sections = append(sections, m.helpBar.View(m.keys))
	}

	view := lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n\n"))

	if m.showHelp {
		view = m.helpView.Overlay(view)
	}
	if m.logView.Visible() {
		view = m.logView.Overlay(view)
	}
	if m.toaster.Visible() {
		view = m.toaster.Overlay(view, width, max(m.height, lipgloss.Height(view)))
	}
	if m.mouse {
		view = zone.Scan(view)
	}
	return view
}

func (m Model) renderTitle(width int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(styles.AccentColor).Render("getdaysleft")
	tagline := styles.TruncateString("How many days until...", width-lipgloss.Width(title)-2)
	if tagline == "" {
		return title
	}
	return title + "  " + styles.LabelStyle.Render(tagline)
}

func (m Model) renderForm() string {
	field := func(idx int, label, id string) string {
		labelStyle := styles.InputLabelStyle
		border := styles.BorderDefaultColor
		if m.focus == idx {
			labelStyle = styles.InputLabelFocusedStyle
			border = styles.BorderFocusColor
		}
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			Width(14).
			Render(m.inputs[idx].View())
		return m.mark(id, labelStyle.Render(label)+"\n"+box)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		field(focusDate, "Date", zoneDate),
		"  ",
		field(focusTime, "Time (optional)", zoneTime),
	)
}

func (m Model) renderButtons() string {
	button := func(idx int, label, id string, primary bool) string {
		style := styles.SecondaryButtonStyle
		switch {
		case primary && m.focus == idx:
			style = styles.PrimaryButtonFocusedStyle
		case primary:
			style = styles.PrimaryButtonStyle
		case m.focus == idx:
			style = styles.SecondaryButtonFocusedStyle
		}
		return m.mark(id, style.Render(label))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		button(focusStart, "Start", zoneStart, true),
		" ",
		button(focusReset, "Reset", zoneReset, false),
		" ",
		button(focusCopy, "Copy link", zoneCopy, false),
	)
}

func (m Model) renderResults(width int) string {
	s := m.screen
	rows := []string{
		styles.BigNumberStyle.Render(s.Text(countdown.SlotBigNumber)) + " " +
			styles.LabelStyle.Render(s.Text(countdown.SlotLabel)),
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderDefaultColor).
		Padding(0, 1)
	cards := make([]string, 0, len(units))
	for _, u := range units {
		cards = append(cards, card.Render(
			styles.UnitValueStyle.Render(s.Text(u.slot))+"\n"+styles.UnitLabelStyle.Render(u.label),
		))
	}
	rows = append(rows, "", lipgloss.JoinHorizontal(lipgloss.Top, cards...))

	if s.Visible(countdown.ElementStatus) {
		rows = append(rows, "", styles.StatusStyle.Render(s.Text(countdown.SlotStatus)))
	}
	if target := s.Text(countdown.SlotTarget); target != "" {
		rows = append(rows, "", styles.TargetStyle.Render(wordwrap.String(target, max(width-2, 1))))
	}

	return styles.RenderCard(strings.Join(rows, "\n"), "Countdown", width, false)
}

func (m Model) mark(id, s string) string {
	if !m.mouse {
		return s
	}
	return zone.Mark(id, s)
}
