package pubsub

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// ListenCmd waits for one event on ch and hands it to Bubble Tea as a
// message. The command yields nil when ctx ends or ch closes, which stops
// the listen loop.
func ListenCmd[T any](ctx context.Context, ch <-chan Event[T]) tea.Cmd {
	return func() tea.Msg {
		select {
		case event, ok := <-ch:
			if ok {
				return event
			}
		case <-ctx.Done():
		}
		return nil
	}
}

// ContinuousListener holds a single subscription for a model. Re-issue
// Listen from Update after each event to keep the loop going.
type ContinuousListener[T any] struct {
	ctx context.Context
	ch  <-chan Event[T]
}

// NewContinuousListener subscribes to src until ctx ends.
func NewContinuousListener[T any](ctx context.Context, src Subscriber[T]) *ContinuousListener[T] {
	return &ContinuousListener[T]{ctx: ctx, ch: src.Subscribe(ctx)}
}

// Listen returns the command receiving the next event.
func (l *ContinuousListener[T]) Listen() tea.Cmd {
	if l == nil {
		return nil
	}
	return ListenCmd(l.ctx, l.ch)
}
