package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	m.Run()
}

func TestRenderCard_Layout(t *testing.T) {
	out := RenderCard("42\ndays left", "Countdown", 20, false)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 4)
	require.Equal(t, "╭─ Countdown ──────╮", lines[0])
	require.Equal(t, "│42                │", lines[1])
	require.Equal(t, "│days left         │", lines[2])
	require.Equal(t, "╰──────────────────╯", lines[3])
	for _, line := range lines {
		require.Equal(t, 20, lipgloss.Width(line))
	}
}

func TestRenderCard_LongTitleIsTruncated(t *testing.T) {
	out := RenderCard("x", "A very long countdown title", 16, true)
	top := strings.Split(out, "\n")[0]

	require.Equal(t, 16, lipgloss.Width(top))
	require.Contains(t, top, "...")
}

func TestRenderCard_NoTitle(t *testing.T) {
	out := RenderCard("x", "", 5, false)
	require.Equal(t, "╭───╮", strings.Split(out, "\n")[0])
}
