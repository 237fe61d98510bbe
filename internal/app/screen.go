package app

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rishabh06704/getdaysleft/internal/countdown"
	"github.com/rishabh06704/getdaysleft/internal/ui/toaster"
)

// notice is an alert or toast waiting to be shown by the toaster.
type notice struct {
	text  string
	style toaster.Style
}

// screen is the Display the controller renders onto. Slot texts live in
// the embedded Panel; alerts and toasts are queued until the next Update
// turns them into toaster commands.
type screen struct {
	*countdown.Panel

	mu      sync.Mutex
	pending []notice
}

func newScreen() *screen {
	return &screen{Panel: countdown.NewPanel()}
}

// Alert shows message as an error toast.
func (s *screen) Alert(message string) {
	s.push(notice{text: message, style: toaster.StyleError})
}

// Toast shows message as an info toast.
func (s *screen) Toast(message string) {
	s.push(notice{text: message, style: toaster.StyleInfo})
}

func (s *screen) push(n notice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, n)
}

func (s *screen) drain() []notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.pending
	s.pending = nil
	return out
}

// tickMsg carries a scheduler callback onto the Bubble Tea loop.
type tickMsg struct {
	run func()
}

// tickQueue is the Dispatch used by the ticker scheduler. Callbacks are
// handed to Update instead of running on the ticker goroutine so every
// tick is followed by a redraw.
type tickQueue struct {
	ch chan func()
}

func newTickQueue() *tickQueue {
	return &tickQueue{ch: make(chan func(), 1)}
}

// Dispatch queues fn. A tick arriving while another is still queued is
// dropped; the next one recomputes from the clock anyway.
func (q *tickQueue) Dispatch(fn func()) {
	select {
	case q.ch <- fn:
	default:
	}
}

func (q *tickQueue) wait(done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-done:
			return nil
		case fn := <-q.ch:
			return tickMsg{run: fn}
		}
	}
}

var _ countdown.Display = (*screen)(nil)
