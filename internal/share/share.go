// Package share builds and reads the shareable countdown URL.
package share

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/rishabh06704/getdaysleft/internal/countdown"
	"github.com/rishabh06704/getdaysleft/internal/log"
)

// Query parameter names.
const (
	ParamDate = "date"
	ParamTime = "time"
)

// ErrMissingDate is returned when a link is requested without a date.
var ErrMissingDate = errors.New("no date selected")

// BuildURL returns origin+path with the date and time query parameters set,
// overwriting any already present. A blank time becomes "00:00". The date
// is passed through unvalidated.
func BuildURL(dateStr, timeStr, origin, path string) (string, error) {
	u, err := url.Parse(strings.TrimSuffix(origin, "/") + ensureLeadingSlash(path))
	if err != nil {
		return "", fmt.Errorf("parsing share origin: %w", err)
	}

	q := u.Query()
	q.Set(ParamDate, dateStr)
	q.Set(ParamTime, countdown.NormalizeTime(timeStr))
	u.RawQuery = q.Encode()
	u.Fragment = ""
	return u.String(), nil
}

func ensureLeadingSlash(path string) string {
	if path == "" || strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}

// ParseURL reads the date and time parameters from a share URL.
// A missing time comes back as "00:00".
func ParseURL(raw string) (dateStr, timeStr string, err error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", "", fmt.Errorf("parsing share url: %w", err)
	}
	q := u.Query()
	dateStr = q.Get(ParamDate)
	if dateStr == "" {
		return "", "", ErrMissingDate
	}
	return dateStr, countdown.NormalizeTime(q.Get(ParamTime)), nil
}

// Copier copies text somewhere the user can paste it from.
type Copier interface {
	Copy(text string) error
}

// Linker builds share links for one site and copies them.
type Linker struct {
	Origin string
	Path   string
	Copier Copier
}

// URL builds the share link for dateStr/timeStr. An empty date yields
// ErrMissingDate instead of a link.
func (l Linker) URL(dateStr, timeStr string) (string, error) {
	if strings.TrimSpace(dateStr) == "" {
		return "", ErrMissingDate
	}
	return BuildURL(dateStr, timeStr, l.Origin, l.Path)
}

// Copy builds the share link and copies it, returning the link.
func (l Linker) Copy(dateStr, timeStr string) (string, error) {
	link, err := l.URL(dateStr, timeStr)
	if err != nil {
		return "", err
	}
	if l.Copier == nil {
		return link, errors.New("no clipboard configured")
	}
	if err := l.Copier.Copy(link); err != nil {
		log.ErrorErr(log.CatClipboard, "copying share link", err, "url", link)
		return link, fmt.Errorf("copying share link: %w", err)
	}
	log.Debug(log.CatClipboard, "copied share link", "url", link)
	return link, nil
}
