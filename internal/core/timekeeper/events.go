package timekeeper

import (
	"time"

	"pomodoro/internal/core/model"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventProgress    EventType = "progress"
	EventComplete    EventType = "complete"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type      EventType
	Mode      model.Mode
	Phase     Phase
	Remaining int
	Total     int
	Progress  float64
	Clock     string
	Title     string
	Message   string
	At        time.Time
}

// NewEvent describes state as an observer event.
func NewEvent(eventType EventType, state State, at time.Time) Event {
	fraction, _ := state.Fraction()
	return Event{
		Type:      eventType,
		Mode:      state.Mode,
		Phase:     state.Phase(),
		Remaining: state.RemainingSeconds,
		Total:     state.TotalSeconds,
		Progress:  fraction,
		Clock:     state.Clock(),
		At:        at,
	}
}
