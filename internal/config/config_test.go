package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/rishabh06704/getdaysleft/internal/flags"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	require.Empty(t, cfg.Locale)
	require.Equal(t, "https://getdaysleft.com", cfg.Share.Origin)
	require.Equal(t, "/", cfg.Share.Path)
	require.True(t, cfg.UI.ShowHelp)
	require.True(t, cfg.Flags[flags.FlagAutoStart])
	require.NoError(t, Validate(cfg))
}

func TestDefaultConfigTemplateMatchesDefaults(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(DefaultConfigTemplate()), &cfg))
	require.Equal(t, Defaults(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"german locale", func(c *Config) { c.Locale = "de-DE" }, ""},
		{"posix style locale", func(c *Config) { c.Locale = "fr_FR.UTF-8" }, ""},
		{"bad locale", func(c *Config) { c.Locale = "not a locale!" }, "locale"},
		{"empty origin", func(c *Config) { c.Share.Origin = "" }, "share.origin is required"},
		{"ftp origin", func(c *Config) { c.Share.Origin = "ftp://example.com" }, "http or https"},
		{"no host", func(c *Config) { c.Share.Origin = "https://" }, "host"},
		{"origin with query", func(c *Config) { c.Share.Origin = "https://example.com?x=1" }, "query"},
		{"http localhost", func(c *Config) { c.Share.Origin = "http://localhost:8080" }, ""},
		{"theme preset", func(c *Config) { c.Theme.Preset = "nord" }, ""},
		{"unknown preset", func(c *Config) { c.Theme.Preset = "solarized" }, "unknown theme preset"},
		{"color override", func(c *Config) { c.Theme.Colors = map[string]string{"accent": "#FF79C6"} }, ""},
		{"bad color", func(c *Config) { c.Theme.Colors = map[string]string{"accent": "pink"} }, "invalid hex color"},
		{"unknown flag", func(c *Config) { c.Flags["auto-strat"] = true }, "unknown feature flag"},
		{"unknown token", func(c *Config) { c.Theme.Colors = map[string]string{"sparkle": "#FFFFFF"} }, "unknown color token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, DefaultConfigTemplate(), string(data))
}

func TestResolveLanguage(t *testing.T) {
	detected := func(s string) DetectFunc {
		return func() (string, error) { return s, nil }
	}
	failing := func() (string, error) { return "", errors.New("no locale") }

	tests := []struct {
		name       string
		configured string
		detect     DetectFunc
		want       language.Tag
	}{
		{"configured wins", "de-DE", detected("fr-FR"), language.MustParse("de-DE")},
		{"detected", "", detected("fr_FR"), language.MustParse("fr-FR")},
		{"detected with codeset", "", detected("en_GB.UTF-8"), language.BritishEnglish},
		{"invalid configured falls through", "???", detected("es-ES"), language.MustParse("es-ES")},
		{"C locale", "", detected("C"), language.AmericanEnglish},
		{"detect error", "", failing, language.AmericanEnglish},
		{"no detector", "", nil, language.AmericanEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ResolveLanguage(tt.configured, tt.detect))
		})
	}
}

func TestLocaleContext(t *testing.T) {
	cfg := Defaults()
	cfg.Locale = "de-DE"

	lc := cfg.LocaleContext(nil)
	require.Equal(t, language.MustParse("de-DE"), lc.Tag)
	require.NotNil(t, lc.Location)
}
