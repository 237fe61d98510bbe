// Package countdown computes and renders the time left until (or elapsed
// since) a target instant, and drives the once-a-second refresh loop.
package countdown

import "time"

// Delta is the signed distance from now to the target, broken into
// cumulative unit totals. TotalHours counts every hour, not hours within a day.
type Delta struct {
	IsPast       bool
	RawMillis    int64
	TotalSeconds int64
	TotalMinutes int64
	TotalHours   int64
	TotalDays    int64
}

// ComputeDelta returns the delta between target and now at millisecond
// resolution. A target equal to now is not past.
func ComputeDelta(target, now time.Time) Delta {
	raw := target.UnixMilli() - now.UnixMilli()

	abs := raw
	if abs < 0 {
		abs = -abs
	}

	seconds := abs / 1000
	minutes := seconds / 60
	hours := minutes / 60

	return Delta{
		IsPast:       raw < 0,
		RawMillis:    raw,
		TotalSeconds: seconds,
		TotalMinutes: minutes,
		TotalHours:   hours,
		TotalDays:    hours / 24,
	}
}

// Reached reports whether a forward countdown has hit or crossed zero.
func (d Delta) Reached() bool {
	return d.RawMillis <= 0
}
