package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// RenderCard draws content inside a rounded box of the given outer width
// with the title set into the top border: ╭─ Title ─────╮
// Lines are padded so the right border lines up; the box grows to fit the
// content's height.
func RenderCard(content, title string, width int, focused bool) string {
	var borderColor lipgloss.TerminalColor = BorderDefaultColor
	if focused {
		borderColor = BorderFocusColor
	}
	border := lipgloss.NewStyle().Foreground(borderColor)

	inner := max(width-2, 1)
	body := lipgloss.NewStyle().Width(inner).Render(content)

	lines := strings.Split(body, "\n")
	out := make([]string, 0, len(lines)+2)
	out = append(out, topBorder(title, inner, border, lipgloss.NewStyle().Bold(true).Foreground(TextPrimaryColor)))
	for _, line := range lines {
		if w := lipgloss.Width(line); w < inner {
			line += strings.Repeat(" ", inner-w)
		}
		out = append(out, border.Render(borderVertical)+line+border.Render(borderVertical))
	}
	out = append(out, border.Render(borderBottomLeft+strings.Repeat(borderHorizontal, inner)+borderBottomRight))

	return strings.Join(out, "\n")
}

func topBorder(title string, inner int, border, titleStyle lipgloss.Style) string {
	// "─ " + title + " " needs at least four cells to be worth drawing.
	if title == "" || inner < 4 {
		return border.Render(borderTopLeft + strings.Repeat(borderHorizontal, inner) + borderTopRight)
	}

	title = TruncateString(title, inner-4)
	rest := max(inner-3-lipgloss.Width(title), 0)

	return border.Render(borderTopLeft+borderHorizontal+" ") +
		titleStyle.Render(title) +
		border.Render(" "+strings.Repeat(borderHorizontal, rest)+borderTopRight)
}
