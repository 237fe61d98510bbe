package countdown

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Display text.
const (
	LabelFuture     = "days left"
	LabelPast       = "days ago"
	StatusPast      = "This date has already passed."
	LocalTimeSuffix = " (Local time)"

	// TargetLayout is the long-form layout of the target line.
	TargetLayout = "January 2, 2006 at 3:04 PM"
)

// LocaleContext holds what the formatter needs from the host: a language
// for digit grouping and a location for the target line.
type LocaleContext struct {
	Tag      language.Tag
	Location *time.Location
}

// DefaultLocale is US English in the host's local time.
func DefaultLocale() LocaleContext {
	return LocaleContext{Tag: language.AmericanEnglish, Location: time.Local}
}

// DisplayStrings is one rendering of a delta.
type DisplayStrings struct {
	BigNumber     string
	Label         string
	Days          string
	Hours         string
	Minutes       string
	Seconds       string
	Status        string
	StatusVisible bool
	Target        string
}

// Baseline is the rendering shown before any countdown starts and after a reset.
func Baseline() DisplayStrings {
	return DisplayStrings{
		BigNumber: "0",
		Label:     LabelFuture,
		Days:      "0",
		Hours:     "0",
		Minutes:   "0",
		Seconds:   "0",
	}
}

// Apply writes every slot of s to d and toggles the status line.
func (s DisplayStrings) Apply(d Surface) {
	d.SetText(SlotBigNumber, s.BigNumber)
	d.SetText(SlotLabel, s.Label)
	d.SetText(SlotDays, s.Days)
	d.SetText(SlotHours, s.Hours)
	d.SetText(SlotMinutes, s.Minutes)
	d.SetText(SlotSeconds, s.Seconds)
	d.SetText(SlotStatus, s.Status)
	d.SetText(SlotTarget, s.Target)
	d.SetVisible(ElementStatus, s.StatusVisible)
}

// Formatter turns deltas into display strings for one locale.
type Formatter struct {
	locale  LocaleContext
	printer *message.Printer
}

// NewFormatter builds a formatter. printers may be nil.
func NewFormatter(locale LocaleContext, printers *PrinterCache) *Formatter {
	if locale.Location == nil {
		locale.Location = time.Local
	}

	var printer *message.Printer
	if printers != nil {
		printer = printers.Printer(locale.Tag)
	} else {
		printer = message.NewPrinter(locale.Tag)
	}

	return &Formatter{locale: locale, printer: printer}
}

// Locale returns the formatter's locale context.
func (f *Formatter) Locale() LocaleContext {
	return f.locale
}

// Location returns the location targets are parsed and shown in.
func (f *Formatter) Location() *time.Location {
	return f.locale.Location
}

// Format renders delta for target. It does not modify its inputs.
func (f *Formatter) Format(delta Delta, target time.Time) DisplayStrings {
	s := DisplayStrings{
		BigNumber: f.Number(delta.TotalDays),
		Label:     LabelFuture,
		Days:      f.Number(delta.TotalDays),
		Hours:     f.Number(delta.TotalHours),
		Minutes:   f.Number(delta.TotalMinutes),
		Seconds:   f.Number(delta.TotalSeconds),
		Target:    f.TargetLine(target),
	}
	if delta.IsPast {
		s.Label = LabelPast
		s.Status = StatusPast
		s.StatusVisible = true
	}
	return s
}

// Number formats n with the locale's digit grouping.
func (f *Formatter) Number(n int64) string {
	return f.printer.Sprintf("%d", n)
}

// TargetLine describes target in long form in the formatter's location.
func (f *Formatter) TargetLine(target time.Time) string {
	return target.In(f.locale.Location).Format(TargetLayout) + LocalTimeSuffix
}
