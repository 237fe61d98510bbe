package config

import (
	"time"

	golocale "github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"

	"github.com/rishabh06704/getdaysleft/internal/countdown"
	"github.com/rishabh06704/getdaysleft/internal/log"
)

// DetectFunc returns the host's locale, e.g. "en-US".
type DetectFunc func() (string, error)

// DetectHostLocale asks the OS for the user's locale.
func DetectHostLocale() (string, error) {
	return golocale.GetLocale()
}

// ResolveLanguage picks the configured locale, then the detected one, then
// US English.
func ResolveLanguage(configured string, detect DetectFunc) language.Tag {
	if configured != "" {
		if tag, err := language.Parse(normalizeLocale(configured)); err == nil {
			return tag
		}
		log.Warn(log.CatConfig, "ignoring invalid locale", "locale", configured)
	}

	if detect != nil {
		host, err := detect()
		if err == nil && host != "" && host != "C" && host != "POSIX" {
			if tag, err := language.Parse(normalizeLocale(host)); err == nil {
				return tag
			}
		}
		if err != nil {
			log.Debug(log.CatConfig, "host locale detection failed", "error", err)
		}
	}

	return language.AmericanEnglish
}

// LocaleContext returns the formatter locale for cfg in the host's local time.
func (c Config) LocaleContext(detect DetectFunc) countdown.LocaleContext {
	return countdown.LocaleContext{
		Tag:      ResolveLanguage(c.Locale, detect),
		Location: time.Local,
	}
}
