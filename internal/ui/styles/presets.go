package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets. The default preset is the
// built-in AdaptiveColor set and carries no overrides.
var Presets = map[string]Preset{
	"default":       {Name: "default", Description: "Adaptive light/dark colors"},
	"dracula":       DraculaPreset,
	"nord":          NordPreset,
	"high-contrast": HighContrastPreset,
}

// DraculaPreset follows the Dracula palette.
var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dracula dark theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:            "#F8F8F2",
		TokenTextMuted:              "#6272A4",
		TokenAccent:                 "#BD93F9",
		TokenBorderDefault:          "#44475A",
		TokenBorderFocus:            "#FF79C6",
		TokenStatusSuccess:          "#50FA7B",
		TokenStatusWarning:          "#F1FA8C",
		TokenStatusError:            "#FF5555",
		TokenButtonText:             "#282A36",
		TokenButtonPrimaryBg:        "#BD93F9",
		TokenButtonPrimaryFocusBg:   "#FF79C6",
		TokenButtonSecondaryBg:      "#6272A4",
		TokenButtonSecondaryFocusBg: "#8BE9FD",
		TokenToastSuccess:           "#50FA7B",
		TokenToastError:             "#FF5555",
		TokenToastInfo:              "#8BE9FD",
	},
}

// NordPreset follows the Nord palette.
var NordPreset = Preset{
	Name:        "nord",
	Description: "Arctic, north-bluish palette",
	Colors: map[ColorToken]string{
		TokenTextPrimary:            "#ECEFF4",
		TokenTextMuted:              "#4C566A",
		TokenAccent:                 "#88C0D0",
		TokenBorderDefault:          "#434C5E",
		TokenBorderFocus:            "#88C0D0",
		TokenStatusSuccess:          "#A3BE8C",
		TokenStatusWarning:          "#EBCB8B",
		TokenStatusError:            "#BF616A",
		TokenButtonText:             "#2E3440",
		TokenButtonPrimaryBg:        "#81A1C1",
		TokenButtonPrimaryFocusBg:   "#88C0D0",
		TokenButtonSecondaryBg:      "#4C566A",
		TokenButtonSecondaryFocusBg: "#5E81AC",
		TokenToastSuccess:           "#A3BE8C",
		TokenToastError:             "#BF616A",
		TokenToastInfo:              "#5E81AC",
	},
}

// HighContrastPreset uses pure colors for accessibility.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "Maximum contrast for accessibility",
	Colors: map[ColorToken]string{
		TokenTextPrimary:            "#FFFFFF",
		TokenTextMuted:              "#C0C0C0",
		TokenAccent:                 "#FFFF00",
		TokenBorderDefault:          "#FFFFFF",
		TokenBorderFocus:            "#00FFFF",
		TokenStatusSuccess:          "#00FF00",
		TokenStatusWarning:          "#FFFF00",
		TokenStatusError:            "#FF0000",
		TokenButtonText:             "#000000",
		TokenButtonPrimaryBg:        "#00FFFF",
		TokenButtonPrimaryFocusBg:   "#FFFF00",
		TokenButtonSecondaryBg:      "#C0C0C0",
		TokenButtonSecondaryFocusBg: "#FFFFFF",
		TokenToastSuccess:           "#00FF00",
		TokenToastError:             "#FF0000",
		TokenToastInfo:              "#00FFFF",
	},
}
