package countdown

import (
	"time"

	"github.com/rishabh06704/getdaysleft/internal/pubsub"
)

// Controller event types.
const (
	EventStarted pubsub.EventType = "started"
	EventStopped pubsub.EventType = "stopped"
	EventReset   pubsub.EventType = "reset"
)

// Event describes a controller state change.
type Event struct {
	State  State
	Target time.Time
	Delta  Delta
}

// State is the controller's lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}
