package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/rishabh06704/getdaysleft/internal/config"
	"github.com/rishabh06704/getdaysleft/internal/countdown"
	"github.com/rishabh06704/getdaysleft/internal/flags"
	"github.com/rishabh06704/getdaysleft/internal/linedisplay"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// resetCommands clears flag values left over from a previous Execute.
func resetCommands(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, child := range c.Commands() {
		resetCommands(child)
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetCommands(rootCmd)
	cfg = config.Config{}
	configPath = ""

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := run()
	return out.String(), errOut.String(), err
}

// writeConfig writes an en-US config so output doesn't depend on the host locale.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("locale: en-US\n"+body), 0o600))
	return path
}

func TestLink(t *testing.T) {
	path := writeConfig(t, "")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"date and time", []string{"--date", "2030-01-01", "--time", "09:30"},
			"https://getdaysleft.com/?date=2030-01-01&time=09%3A30\n"},
		{"blank time", []string{"--date", "2030-01-01"},
			"https://getdaysleft.com/?date=2030-01-01&time=00%3A00\n"},
		{"from url", []string{"--url", "https://elsewhere.example/?date=2031-05-06&time=18%3A45"},
			"https://getdaysleft.com/?date=2031-05-06&time=18%3A45\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, append([]string{"link", "--config", path}, tt.args...)...)
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestLink_ConfiguredOrigin(t *testing.T) {
	path := writeConfig(t, "share:\n  origin: https://example.com\n  path: countdown\n")

	out, _, err := execute(t, "link", "--config", path, "--date", "2030-01-01")

	require.NoError(t, err)
	require.Equal(t, "https://example.com/countdown?date=2030-01-01&time=00%3A00\n", out)
}

func TestLink_NoDate(t *testing.T) {
	path := writeConfig(t, "")

	out, errOut, err := execute(t, "link", "--config", path)

	require.Error(t, err)
	require.Contains(t, err.Error(), "no date selected")
	require.Empty(t, out)
	require.Contains(t, errOut, "Error: ")
}

func TestLink_CopyKeepsStdoutForTheURL(t *testing.T) {
	path := writeConfig(t, "flags:\n  force-osc52: true\n")

	out, errOut, err := execute(t, "link", "--config", path, "--date", "2030-01-01", "--copy")

	require.NoError(t, err)
	require.Equal(t, "https://getdaysleft.com/?date=2030-01-01&time=00%3A00\n", out)
	require.Contains(t, errOut, "]52;c;")
	require.Contains(t, errOut, countdown.ToastCopied)
}

func TestLink_DateAndURLAreExclusive(t *testing.T) {
	path := writeConfig(t, "")

	_, _, err := execute(t, "link", "--config", path, "--date", "2030-01-01", "--url", "https://x.example/?date=2030-01-01")

	require.Error(t, err)
}

func TestShow(t *testing.T) {
	path := writeConfig(t, "")

	out, _, err := execute(t, "show", "--config", path, "--date", "2999-01-01")

	require.NoError(t, err)
	require.Contains(t, out, "days left")
	require.Contains(t, out, "January 1, 2999 at 12:00 AM (Local time)")
}

func TestShow_NoDate(t *testing.T) {
	path := writeConfig(t, "")

	out, errOut, err := execute(t, "show", "--config", path)

	require.ErrorIs(t, err, countdown.ErrNoDate)
	require.Empty(t, out)
	require.Contains(t, errOut, countdown.AlertNoDate)
	require.Equal(t, 1, strings.Count(errOut, "Error:"), "the alert is the only error shown")
	require.NotContains(t, errOut, err.Error())
}

func TestShow_YearOutOfRange(t *testing.T) {
	path := writeConfig(t, "")

	_, errOut, err := execute(t, "show", "--config", path, "--date", "999999999-01-01")

	require.ErrorIs(t, err, countdown.ErrInvalidDate)
	require.Equal(t, 1, strings.Count(errOut, "Error:"))
}

func TestFirstRunWritesDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "getdaysleft", "config.yaml")

	_, _, err := execute(t, "link", "--config", path, "--date", "2030-01-01")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfigTemplate(), string(data))
}

func TestInvalidConfigFails(t *testing.T) {
	path := writeConfig(t, "share:\n  origin: ftp://example.com\n")

	_, _, err := execute(t, "link", "--config", path, "--date", "2030-01-01")

	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid config")
}

func TestConfigCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	out, _, err := execute(t, "config", "--config", path, "init")
	require.NoError(t, err)
	require.Contains(t, out, "Wrote "+path)

	_, _, err = execute(t, "config", "--config", path, "init")
	require.Error(t, err, "init refuses to overwrite")

	_, _, err = execute(t, "config", "--config", path, "init", "--force")
	require.NoError(t, err)

	out, _, err = execute(t, "config", "--config", path, "set", "theme.preset", "nord")
	require.NoError(t, err)
	require.Equal(t, "theme.preset = nord\n", out)

	out, _, err = execute(t, "config", "--config", path, "show")
	require.NoError(t, err)
	require.Contains(t, out, "preset: nord")
	require.Contains(t, out, "origin: https://getdaysleft.com")

	out, _, err = execute(t, "config", "--config", path, "path")
	require.NoError(t, err)
	require.Equal(t, path+"\n", out)
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		c, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		require.Equal(t, config.Defaults().Share, c.Share)
		require.True(t, flags.New(c.Flags).Enabled(flags.FlagAutoStart))
	})

	t.Run("file over defaults", func(t *testing.T) {
		path := writeConfig(t, "ui:\n  mouse: false\n")
		c, err := loadConfig(path)
		require.NoError(t, err)
		require.Equal(t, "en-US", c.Locale)
		require.False(t, c.UI.Mouse)
		require.True(t, c.UI.ShowHelp)
	})

	t.Run("environment over file", func(t *testing.T) {
		t.Setenv("GETDAYSLEFT_SHARE_ORIGIN", "https://env.example")
		t.Setenv("GETDAYSLEFT_FLAGS_FORCE_OSC52", "true")
		c, err := loadConfig(writeConfig(t, ""))
		require.NoError(t, err)
		require.Equal(t, "https://env.example", c.Share.Origin)
		require.True(t, flags.New(c.Flags).Enabled(flags.FlagForceOSC52))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("ui: [unclosed"), 0o600))
		_, err := loadConfig(path)
		require.Error(t, err)
	})
}

func TestNewCopierForceOSC52(t *testing.T) {
	var out bytes.Buffer
	forced := newCopier(flags.New(map[string]bool{flags.FlagForceOSC52: true}), &out)
	require.True(t, forced.Remote())

	require.NoError(t, forced.Copy("https://getdaysleft.com/?date=2030-01-01&time=00%3A00"))
	require.Contains(t, out.String(), "]52;c;")
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

func TestWatch_StopsAtZero(t *testing.T) {
	var out, errOut bytes.Buffer
	disp := linedisplay.New(&out, &errOut)
	formatter := countdown.NewFormatter(countdown.LocaleContext{Tag: language.AmericanEnglish, Location: time.UTC}, nil)
	target := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := watch(ctx, disp, formatter, "2026-10-18", "12:00", countdown.WithClock(fixedClock(target)))

	require.NoError(t, err)
	zero := "0 days left | Days 0  Hours 0  Minutes 0  Seconds 0\n"
	require.Equal(t, zero+zero, out.String(), "the start line, then the line printed when it stops")
	require.Equal(t, countdown.ToastComplete+"\n", errOut.String())
}

func TestWatch_PastTargetRunsUntilCancelled(t *testing.T) {
	var out bytes.Buffer
	disp := linedisplay.New(&out, &out)
	formatter := countdown.NewFormatter(countdown.LocaleContext{Tag: language.AmericanEnglish, Location: time.UTC}, nil)
	now := time.Date(2026, 10, 20, 12, 0, 0, 0, time.UTC)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := watch(ctx, disp, formatter, "2026-10-18", "12:00", countdown.WithClock(fixedClock(now)))

	require.NoError(t, err)
	require.Contains(t, out.String(), "2 days ago")
	require.NotContains(t, out.String(), countdown.ToastComplete)
}
