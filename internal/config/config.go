// Package config provides configuration types and defaults for getdaysleft.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"

	"github.com/rishabh06704/getdaysleft/internal/flags"
	"github.com/rishabh06704/getdaysleft/internal/log"
	"github.com/rishabh06704/getdaysleft/internal/ui/styles"
)

// Config holds all configuration options for getdaysleft.
// It stores preferences only; countdown state lives in share URLs.
type Config struct {
	Locale string          `mapstructure:"locale" yaml:"locale"` // BCP 47 tag; empty detects the host locale
	Share  ShareConfig     `mapstructure:"share" yaml:"share"`
	UI     UIConfig        `mapstructure:"ui" yaml:"ui"`
	Theme  ThemeConfig     `mapstructure:"theme" yaml:"theme"`
	Flags  map[string]bool `mapstructure:"flags" yaml:"flags"`
}

// ShareConfig controls the links produced by "copy link".
type ShareConfig struct {
	Origin string `mapstructure:"origin" yaml:"origin"` // scheme and host, e.g. https://getdaysleft.com
	Path   string `mapstructure:"path" yaml:"path"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowHelp bool `mapstructure:"show_help" yaml:"show_help"` // Show the key help line
	Mouse    bool `mapstructure:"mouse" yaml:"mouse"`         // Enable clickable buttons
}

// ThemeConfig selects a color preset and per-token overrides.
// Token names are listed by styles.AllTokens, e.g. "accent" or "border.focus".
type ThemeConfig struct {
	Preset string            `mapstructure:"preset" yaml:"preset"`
	Colors map[string]string `mapstructure:"colors" yaml:"colors"` // token -> #RRGGBB
}

// Styles converts the theme to the form the styles package applies.
func (t ThemeConfig) Styles() styles.ThemeConfig {
	return styles.ThemeConfig{Preset: t.Preset, Colors: t.Colors}
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Locale: "",
		Share: ShareConfig{
			Origin: "https://getdaysleft.com",
			Path:   "/",
		},
		UI: UIConfig{
			ShowHelp: true,
			Mouse:    true,
		},
		Theme: ThemeConfig{
			Colors: map[string]string{},
		},
		Flags: flags.Defaults(),
	}
}

// Validate checks the configuration for errors.
func Validate(cfg Config) error {
	if cfg.Locale != "" {
		if _, err := language.Parse(normalizeLocale(cfg.Locale)); err != nil {
			return fmt.Errorf("locale %q is not a valid language tag: %w", cfg.Locale, err)
		}
	}
	if err := ValidateShare(cfg.Share); err != nil {
		return err
	}
	if err := flags.Validate(cfg.Flags); err != nil {
		return err
	}
	if err := styles.ValidateTheme(cfg.Theme.Styles()); err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	return nil
}

// ValidateShare checks that the share origin is an absolute http(s) URL.
func ValidateShare(s ShareConfig) error {
	if s.Origin == "" {
		return fmt.Errorf("share.origin is required")
	}
	u, err := url.Parse(s.Origin)
	if err != nil {
		return fmt.Errorf("share.origin: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("share.origin must use http or https, got %q", s.Origin)
	}
	if u.Host == "" {
		return fmt.Errorf("share.origin must include a host, got %q", s.Origin)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("share.origin must not carry a query or fragment, got %q", s.Origin)
	}
	return nil
}

// DefaultConfigPath returns ~/.config/getdaysleft/config.yaml, or an empty
// string when the home directory is unknown.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "getdaysleft", "config.yaml")
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# getdaysleft configuration

# Language used for digit grouping, as a BCP 47 tag (e.g. en-US, de-DE).
# Leave empty to follow the system locale.
locale: ""

# Where "copy link" points. The date and time are added as query parameters.
share:
  origin: https://getdaysleft.com
  path: /

# UI settings
ui:
  show_help: true   # Show the key help line under the buttons
  mouse: true       # Make Start / Reset / Copy link clickable

# Colors. Presets: default, dracula, nord, high-contrast.
# Individual tokens override the preset, e.g. colors: { accent: "#FF79C6" }
theme:
  preset: ""
  colors: {}

# Feature flags
flags:
  auto-start: true    # Start counting immediately when launched with a date
  force-osc52: false  # Copy links with OSC 52 even on a local terminal
`
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments. Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}

func normalizeLocale(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	return strings.ReplaceAll(s, "_", "-")
}
