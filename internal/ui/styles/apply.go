package styles

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type adaptive = lipgloss.AdaptiveColor

// ThemeConfig mirrors config.ThemeConfig to avoid an import cycle.
type ThemeConfig struct {
	Preset string
	Colors map[string]string
}

// defaults snapshots the built-in colors so a theme can be re-applied
// from a clean slate.
var defaults = snapshot()

func snapshot() map[ColorToken]adaptive {
	out := make(map[ColorToken]adaptive)
	for token, target := range colorTargets() {
		out[token] = *target
	}
	return out
}

// ValidateTheme reports an unknown preset, token or malformed color.
func ValidateTheme(cfg ThemeConfig) error {
	if cfg.Preset != "" {
		if _, ok := Presets[cfg.Preset]; !ok {
			names := slices.Sorted(maps.Keys(Presets))
			return fmt.Errorf("unknown theme preset %q (valid: %s)", cfg.Preset, strings.Join(names, ", "))
		}
	}
	for key, value := range cfg.Colors {
		if !slices.Contains(AllTokens(), ColorToken(key)) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
	}
	return nil
}

// ApplyTheme resets to the built-in colors, applies the preset, then the
// individual overrides, and rebuilds every style.
func ApplyTheme(cfg ThemeConfig) error {
	if err := ValidateTheme(cfg); err != nil {
		return err
	}

	targets := colorTargets()
	for token, c := range defaults {
		*targets[token] = c
	}

	for token, hex := range Presets[cfg.Preset].Colors {
		*targets[token] = adaptive{Light: hex, Dark: hex}
	}
	for key, hex := range cfg.Colors {
		*targets[ColorToken(key)] = adaptive{Light: hex, Dark: hex}
	}

	rebuildStyles()
	return nil
}

func rebuildStyles() {
	muted := lipgloss.NewStyle().Foreground(TextMutedColor)

	BigNumberStyle = lipgloss.NewStyle().Bold(true).Foreground(AccentColor)
	LabelStyle = muted
	UnitValueStyle = lipgloss.NewStyle().Bold(true).Foreground(TextPrimaryColor)
	UnitLabelStyle = muted
	StatusStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)
	TargetStyle = muted.Italic(true)

	InputLabelStyle = muted
	InputLabelFocusedStyle = lipgloss.NewStyle().Bold(true).Foreground(BorderFocusColor)

	PrimaryButtonStyle, PrimaryButtonFocusedStyle = buttonStyles(ButtonPrimaryBgColor, ButtonPrimaryFocusBgColor)
	SecondaryButtonStyle, SecondaryButtonFocusedStyle = buttonStyles(ButtonSecondaryBgColor, ButtonSecondaryFocusBgColor)
}

// buttonStyles returns the resting and focused style for a button. Focus
// also underlines the label so it shows without colour.
func buttonStyles(bg, focusBg adaptive) (lipgloss.Style, lipgloss.Style) {
	base := lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(ButtonTextColor)
	return base.Background(bg), base.Background(focusBg).Underline(true).UnderlineSpaces(true)
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
