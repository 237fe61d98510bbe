package countdown

import "sync"

// User-facing messages.
const (
	AlertNoDate   = "Please select a date first."
	ToastNoDate   = "Select a date first"
	ToastCopied   = "Copied to clipboard"
	ToastComplete = "Countdown complete"
)

// Slot names a text area on the display.
type Slot int

const (
	SlotBigNumber Slot = iota
	SlotLabel
	SlotDays
	SlotHours
	SlotMinutes
	SlotSeconds
	SlotStatus
	SlotTarget
)

var slotNames = [...]string{
	SlotBigNumber: "big",
	SlotLabel:     "label",
	SlotDays:      "days",
	SlotHours:     "hours",
	SlotMinutes:   "minutes",
	SlotSeconds:   "seconds",
	SlotStatus:    "status",
	SlotTarget:    "target",
}

func (s Slot) String() string {
	if s < 0 || int(s) >= len(slotNames) {
		return "unknown"
	}
	return slotNames[s]
}

// Element names a part of the display that can be shown or hidden.
type Element int

const (
	ElementResults Element = iota
	ElementStatus
)

// Surface holds named text slots and toggleable elements.
type Surface interface {
	SetText(slot Slot, text string)
	SetVisible(el Element, visible bool)
}

// Display is the surface the controller renders onto.
type Display interface {
	Surface
	// Alert reports a blocking, user-facing problem.
	Alert(message string)
	// Toast shows a short-lived notice.
	Toast(message string)
}

// Panel keeps the current slot texts and visibility. Display
// implementations embed it and add Alert and Toast.
type Panel struct {
	mu      sync.RWMutex
	texts   map[Slot]string
	visible map[Element]bool
}

// NewPanel returns a panel holding the reset baseline, with everything hidden.
func NewPanel() *Panel {
	p := &Panel{
		texts:   make(map[Slot]string),
		visible: make(map[Element]bool),
	}
	Baseline().Apply(p)
	return p
}

// SetText implements Surface.
func (p *Panel) SetText(slot Slot, text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.texts[slot] = text
}

// SetVisible implements Surface.
func (p *Panel) SetVisible(el Element, visible bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.visible[el] = visible
}

// Text returns the current text of slot.
func (p *Panel) Text(slot Slot) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.texts[slot]
}

// Visible reports whether el is shown.
func (p *Panel) Visible(el Element) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.visible[el]
}

// Snapshot returns the current slot texts as DisplayStrings.
func (p *Panel) Snapshot() DisplayStrings {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return DisplayStrings{
		BigNumber:     p.texts[SlotBigNumber],
		Label:         p.texts[SlotLabel],
		Days:          p.texts[SlotDays],
		Hours:         p.texts[SlotHours],
		Minutes:       p.texts[SlotMinutes],
		Seconds:       p.texts[SlotSeconds],
		Status:        p.texts[SlotStatus],
		StatusVisible: p.visible[ElementStatus],
		Target:        p.texts[SlotTarget],
	}
}
