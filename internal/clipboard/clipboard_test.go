package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var remoteEnv = []string{"SSH_TTY", "SSH_CLIENT", "SSH_CONNECTION", "TMUX", "STY"}

func clearRemoteEnv(t *testing.T) {
	t.Helper()
	for _, key := range remoteEnv {
		t.Setenv(key, "")
	}
}

func TestShouldUseOSC52(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected bool
	}{
		{"no env vars set", map[string]string{}, false},
		{"SSH_TTY set", map[string]string{"SSH_TTY": "/dev/pts/0"}, true},
		{"SSH_CLIENT set", map[string]string{"SSH_CLIENT": "192.168.1.1 12345 22"}, true},
		{"SSH_CONNECTION set", map[string]string{"SSH_CONNECTION": "192.168.1.1 12345 192.168.1.2 22"}, true},
		{"TMUX set", map[string]string{"TMUX": "/tmp/tmux-1000/default,12345,0"}, true},
		{"STY set (GNU screen)", map[string]string{"STY": "12345.pts-0.hostname"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearRemoteEnv(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}
			require.Equal(t, tt.expected, shouldUseOSC52())
		})
	}
}

func TestOSC52_Sequence(t *testing.T) {
	clearRemoteEnv(t)
	var buf bytes.Buffer

	require.NoError(t, OSC52(&buf)("https://getdaysleft.com/?date=2030-01-01"))

	encoded := base64.StdEncoding.EncodeToString([]byte("https://getdaysleft.com/?date=2030-01-01"))
	require.Equal(t, "\x1b]52;c;"+encoded+"\x07", buf.String())
}

func TestOSC52_TmuxPassthrough(t *testing.T) {
	clearRemoteEnv(t)
	t.Setenv("TMUX", "/tmp/tmux")
	var buf bytes.Buffer

	require.NoError(t, OSC52(&buf)("hello"))

	require.Equal(t, "\x1bPtmux;\x1b\x1b]52;c;aGVsbG8=\x07\x1b\\", buf.String())
}

func TestSystem_PrimarySucceeds(t *testing.T) {
	var primary, fallback []string
	s := &System{
		Primary:  func(text string) error { primary = append(primary, text); return nil },
		Fallback: func(text string) error { fallback = append(fallback, text); return nil },
		Remote:   func() bool { return false },
	}

	require.NoError(t, s.Copy("link"))
	require.Equal(t, []string{"link"}, primary)
	require.Empty(t, fallback)
}

func TestSystem_FallsBackOnPrimaryFailure(t *testing.T) {
	var fallback []string
	s := &System{
		Primary:  func(string) error { return errors.New("xclip missing") },
		Fallback: func(text string) error { fallback = append(fallback, text); return nil },
		Remote:   func() bool { return false },
	}

	require.NoError(t, s.Copy("link"))
	require.Equal(t, []string{"link"}, fallback)
}

func TestSystem_RemoteSkipsPrimary(t *testing.T) {
	primaryCalled := false
	var fallback []string
	s := &System{
		Primary:  func(string) error { primaryCalled = true; return nil },
		Fallback: func(text string) error { fallback = append(fallback, text); return nil },
		Remote:   func() bool { return true },
	}

	require.NoError(t, s.Copy("link"))
	require.False(t, primaryCalled)
	require.Equal(t, []string{"link"}, fallback)
}

func TestSystem_BothFail(t *testing.T) {
	s := &System{
		Primary:  func(string) error { return errors.New("primary") },
		Fallback: func(string) error { return errors.New("fallback") },
		Remote:   func() bool { return false },
	}

	err := s.Copy("link")
	require.ErrorIs(t, err, ErrUnavailable)
	require.Contains(t, err.Error(), "fallback")
}

func TestMock(t *testing.T) {
	m := &Mock{}
	require.NoError(t, m.Copy("a"))
	require.Equal(t, []string{"a"}, m.Copied)

	m.Err = ErrUnavailable
	require.ErrorIs(t, m.Copy("b"), ErrUnavailable)
}
