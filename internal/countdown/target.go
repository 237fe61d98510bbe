package countdown

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultTime is used when the time input is blank or malformed.
const DefaultTime = "00:00"

// Years a four-digit date field can hold. Later instants overflow
// millisecond arithmetic.
const (
	minYear = 1
	maxYear = 9999
)

var (
	// ErrNoDate is returned when the date input is empty.
	ErrNoDate = errors.New("no date selected")
	// ErrInvalidDate is returned when the date input is not a real calendar date.
	ErrInvalidDate = errors.New("invalid date")
)

// ParseTarget builds the target instant from a "YYYY-MM-DD" date and an
// "HH:MM" time in loc. A blank or malformed time means midnight.
func ParseTarget(dateStr, timeStr string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, ErrNoDate
	}

	year, month, day, ok := parseDate(dateStr)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, dateStr)
	}
	hour, minute := parseClock(timeStr)

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %q is not on the calendar", ErrInvalidDate, dateStr)
	}
	return t, nil
}

func parseDate(s string) (year, month, day int, ok bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	nums, ok := atois(parts)
	if !ok || nums[0] < minYear || nums[0] > maxYear || nums[1] < 1 || nums[1] > 12 || nums[2] < 1 {
		return 0, 0, 0, false
	}
	return nums[0], nums[1], nums[2], true
}

// parseClock accepts "HH:MM" and "HH:MM:SS" (seconds ignored).
func parseClock(s string) (hour, minute int) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0
	}
	nums, ok := atois(parts[:2])
	if !ok || nums[0] < 0 || nums[0] > 23 || nums[1] < 0 || nums[1] > 59 {
		return 0, 0
	}
	return nums[0], nums[1]
}

func atois(parts []string) ([]int, bool) {
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		nums[i] = n
	}
	return nums, true
}

// NormalizeTime returns timeStr, or DefaultTime when it is blank.
func NormalizeTime(timeStr string) string {
	if strings.TrimSpace(timeStr) == "" {
		return DefaultTime
	}
	return timeStr
}
