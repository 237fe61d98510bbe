package countdown

import (
	"sync"
	"time"
)

// TickPeriod is how often a running countdown refreshes.
const TickPeriod = time.Second

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time { return time.Now() }

// Handle cancels a recurring registration. Stop is idempotent and never blocks.
type Handle interface {
	Stop()
}

// Scheduler registers recurring callbacks.
type Scheduler interface {
	Every(period time.Duration, fn func()) Handle
}

// Dispatch decides where a tick callback runs.
type Dispatch func(fn func())

// Inline runs fn on the calling goroutine.
func Inline(fn func()) { fn() }

// TickerScheduler fires callbacks from a time.Ticker goroutine and hands
// each one to Dispatch. Ticks missed while a callback is running are dropped.
type TickerScheduler struct {
	Dispatch Dispatch
}

// NewTickerScheduler returns a scheduler using dispatch, or Inline when nil.
func NewTickerScheduler(dispatch Dispatch) *TickerScheduler {
	if dispatch == nil {
		dispatch = Inline
	}
	return &TickerScheduler{Dispatch: dispatch}
}

// Every starts calling fn each period until the handle is stopped.
func (s *TickerScheduler) Every(period time.Duration, fn func()) Handle {
	dispatch := s.Dispatch
	if dispatch == nil {
		dispatch = Inline
	}

	h := &tickerHandle{
		ticker: time.NewTicker(period),
		done:   make(chan struct{}),
	}
	go h.loop(dispatch, fn)
	return h
}

type tickerHandle struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (h *tickerHandle) loop(dispatch Dispatch, fn func()) {
	for {
		select {
		case <-h.done:
			return
		case <-h.ticker.C:
			select {
			case <-h.done:
				return
			default:
			}
			dispatch(fn)
		}
	}
}

func (h *tickerHandle) Stop() {
	h.once.Do(func() {
		h.ticker.Stop()
		close(h.done)
	})
}
