package toaster

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmpty(t *testing.T) {
	m := New()

	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
	assert.Equal(t, "bg", m.Overlay("bg", 10, 3))
}

func TestView_IconPerStyle(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		icon  string
	}{
		{"success", StyleSuccess, "✅"},
		{"error", StyleError, "❌"},
		{"info", StyleInfo, "ℹ️"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cmd := New().Show("Select a date first", tt.style, DefaultDuration)
			require.NotNil(t, cmd)

			view := m.View()
			assert.Contains(t, view, tt.icon+" Select a date first")
			assert.Contains(t, view, "╭")
		})
	}
}

func TestDismiss(t *testing.T) {
	m, cmd := New().Show("Countdown complete", StyleSuccess, time.Millisecond)
	require.Equal(t, "Countdown complete", m.Message())

	msg := cmd()
	require.Equal(t, DismissMsg{Seq: 1}, msg)

	m = m.Update(msg)
	assert.False(t, m.Visible())
	assert.Empty(t, m.Message())
}

func TestDismiss_ReplacedToastSurvivesOldTimer(t *testing.T) {
	m, first := New().Show("Copied to clipboard", StyleSuccess, time.Millisecond)
	m, second := m.Show("Could not copy link", StyleError, time.Millisecond)

	m = m.Update(first())
	assert.Equal(t, "Could not copy link", m.Message())

	m = m.Update(second())
	assert.False(t, m.Visible())
}

func TestUpdate_IgnoresOtherMessages(t *testing.T) {
	m, _ := New().Show("Config reloaded", StyleInfo, DefaultDuration)
	assert.Equal(t, m, m.Update("unrelated"))
}

func TestHide_LeavesOriginal(t *testing.T) {
	shown, _ := New().Show("Hello", StyleSuccess, DefaultDuration)
	hidden := shown.Hide()

	assert.True(t, shown.Visible())
	assert.False(t, hidden.Visible())
}

func TestOverlay_BottomWithOneRowGap(t *testing.T) {
	m, _ := New().Show("Toast", StyleSuccess, DefaultDuration)
	row := strings.Repeat(".", 20)
	bg := strings.TrimSuffix(strings.Repeat(row+"\n", 10), "\n")

	lines := strings.Split(m.Overlay(bg, 20, 10), "\n")

	require.Len(t, lines, 10)
	assert.Equal(t, row, lines[9])
	assert.Contains(t, lines[7], "Toast")
}
