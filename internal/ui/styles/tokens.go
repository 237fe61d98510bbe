package styles

// ColorToken represents a named, themeable color.
// These are the keys users can override under theme.colors.
type ColorToken string

const (
	TokenTextPrimary ColorToken = "text.primary"
	TokenTextMuted   ColorToken = "text.muted"
	TokenAccent      ColorToken = "accent"

	TokenBorderDefault ColorToken = "border.default"
	TokenBorderFocus   ColorToken = "border.focus"

	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"

	TokenButtonText             ColorToken = "button.text"
	TokenButtonPrimaryBg        ColorToken = "button.primary.bg"
	TokenButtonPrimaryFocusBg   ColorToken = "button.primary.focus"
	TokenButtonSecondaryBg      ColorToken = "button.secondary.bg"
	TokenButtonSecondaryFocusBg ColorToken = "button.secondary.focus"

	TokenToastSuccess ColorToken = "toast.success"
	TokenToastError   ColorToken = "toast.error"
	TokenToastInfo    ColorToken = "toast.info"
)

// AllTokens returns every themeable token.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenTextPrimary, TokenTextMuted, TokenAccent,
		TokenBorderDefault, TokenBorderFocus,
		TokenStatusSuccess, TokenStatusWarning, TokenStatusError,
		TokenButtonText, TokenButtonPrimaryBg, TokenButtonPrimaryFocusBg,
		TokenButtonSecondaryBg, TokenButtonSecondaryFocusBg,
		TokenToastSuccess, TokenToastError, TokenToastInfo,
	}
}

// colorTargets maps each token to the variable it sets.
func colorTargets() map[ColorToken]*adaptive {
	return map[ColorToken]*adaptive{
		TokenTextPrimary:            &TextPrimaryColor,
		TokenTextMuted:              &TextMutedColor,
		TokenAccent:                 &AccentColor,
		TokenBorderDefault:          &BorderDefaultColor,
		TokenBorderFocus:            &BorderFocusColor,
		TokenStatusSuccess:          &StatusSuccessColor,
		TokenStatusWarning:          &StatusWarningColor,
		TokenStatusError:            &StatusErrorColor,
		TokenButtonText:             &ButtonTextColor,
		TokenButtonPrimaryBg:        &ButtonPrimaryBgColor,
		TokenButtonPrimaryFocusBg:   &ButtonPrimaryFocusBgColor,
		TokenButtonSecondaryBg:      &ButtonSecondaryBgColor,
		TokenButtonSecondaryFocusBg: &ButtonSecondaryFocusBgColor,
		TokenToastSuccess:           &ToastBorderSuccessColor,
		TokenToastError:             &ToastBorderErrorColor,
		TokenToastInfo:              &ToastBorderInfoColor,
	}
}
