package log

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rishabh06704/getdaysleft/internal/pubsub"
)

func TestFormatEntry(t *testing.T) {
	ts := time.Date(2025, 12, 6, 10, 45, 0, 0, time.UTC)

	tests := []struct {
		name   string
		fields []any
		want   string
	}{
		{"no fields", nil, "2025-12-06T10:45:00 [INFO] [countdown] started\n"},
		{"pairs", []any{"date", "2030-01-01", "time", "00:00"},
			"2025-12-06T10:45:00 [INFO] [countdown] started date=2030-01-01 time=00:00\n"},
		{"orphan key", []any{"date"}, "2025-12-06T10:45:00 [INFO] [countdown] started date=<missing>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, formatEntry(ts, LevelInfo, CatCountdown, "started", tt.fields))
		})
	}
}

func TestMinLevelFiltersEntries(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	SetMinLevel(LevelWarn)

	Debug(CatUI, "hidden")
	Info(CatUI, "hidden too")
	Warn(CatUI, "shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "[WARN] [ui] shown")
}

func TestSetEnabledFalseSilences(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	SetEnabled(false)

	Error(CatConfig, "nothing")
	require.Empty(t, buf.String())
}

func TestErrorErrAppendsError(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)

	ErrorErr(CatClipboard, "copy failed", errors.New("no display"), "len", 3)
	ErrorErr(CatClipboard, "copy failed", nil)

	require.Contains(t, buf.String(), "copy failed len=3 error=no display")
	require.Contains(t, buf.String(), "error=<nil>")
}

func TestListenerReceivesEntries(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := NewListener(ctx)
	require.NotNil(t, listener)

	Info(CatWatcher, "config changed", "path", "config.yaml")

	event, ok := listener.Listen()().(pubsub.Event[string])
	require.True(t, ok)
	require.Contains(t, event.Payload, "config changed path=config.yaml")
}
