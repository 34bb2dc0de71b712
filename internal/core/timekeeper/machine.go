package timekeeper

import (
	"pomodoro/internal/core/model"
	"pomodoro/internal/core/progress"
)

// Completion notification text.
const (
	CompleteTitle   = "Pomodoro"
	CompleteMessage = "Time is up"
)

// Phase is the externally visible countdown status.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseRunning   Phase = "running"
	PhaseCompleted Phase = "completed"
)

// State is the complete countdown state of one timer.
type State struct {
	Mode             model.Mode
	Durations        model.Durations
	TotalSeconds     int
	RemainingSeconds int
	Running          bool
}

// NewState returns an idle work countdown using durations.
func NewState(durations model.Durations) State {
	state := State{Durations: durations.Clamp()}
	return state.withMode(model.ModeWork)
}

// Phase reports whether the countdown is idle, running or finished.
func (state State) Phase() Phase {
	if state.Running {
		return PhaseRunning
	}
	if state.TotalSeconds > 0 && state.RemainingSeconds == 0 {
		return PhaseCompleted
	}
	return PhaseIdle
}

// Fraction returns the elapsed share used to draw the dial.
func (state State) Fraction() (float64, bool) {
	return progress.Fraction(state.RemainingSeconds, state.TotalSeconds)
}

// Clock returns the remaining time as mm:ss.
func (state State) Clock() string {
	return progress.FormatClock(state.RemainingSeconds)
}

func (state State) withMode(mode model.Mode) State {
	state.Running = false
	state.Mode = mode
	state.TotalSeconds = state.Durations.Minutes(mode) * 60
	state.RemainingSeconds = state.TotalSeconds
	return state
}

// Message is an input to Apply.
type Message interface {
	message()
}

type (
	// Start begins counting down.
	Start struct{}
	// Pause halts the countdown.
	Pause struct{}
	// Toggle pauses a running countdown and starts an idle one.
	Toggle struct{}
	// Reset stops and restores the full duration of the current mode.
	Reset struct{}
	// Tick is one elapsed second.
	Tick struct{}
	// SelectMode switches to another mode.
	SelectMode struct{ Mode model.Mode }
	// DurationChanged updates the configured minutes for a mode.
	DurationChanged struct {
		Mode    model.Mode
		Minutes int
	}
)

func (Start) message()           {}
func (Pause) message()           {}
func (Toggle) message()          {}
func (Reset) message()           {}
func (Tick) message()            {}
func (SelectMode) message()      {}
func (DurationChanged) message() {}

// Effect is a side effect requested by Apply.
type Effect interface {
	effect()
}

type (
	// StartTicker asks the host to begin the one-second tick source.
	StartTicker struct{}
	// StopTicker asks the host to halt the tick source.
	StopTicker struct{}
	// Notify asks the host to show the end-of-period alert.
	Notify struct {
		Title   string
		Message string
	}
)

func (StartTicker) effect() {}
func (StopTicker) effect()  {}
func (Notify) effect()      {}

// Apply is the single transition function of the countdown.
func Apply(state State, msg Message) (State, []Effect) {
	switch msg := msg.(type) {
	case Start:
		return start(state)
	case Pause:
		return pause(state)
	case Toggle:
		if state.Running {
			return pause(state)
		}
		return start(state)
	case Reset:
		return selectMode(state, state.Mode)
	case SelectMode:
		return selectMode(state, msg.Mode)
	case Tick:
		return tick(state)
	case DurationChanged:
		return durationChanged(state, msg.Mode, msg.Minutes)
	}
	return state, nil
}

func start(state State) (State, []Effect) {
	if state.Running || state.RemainingSeconds == 0 {
		return state, nil
	}
	state.Running = true
	return state, []Effect{StartTicker{}}
}

func pause(state State) (State, []Effect) {
	if !state.Running {
		return state, nil
	}
	state.Running = false
	return state, []Effect{StopTicker{}}
}

func selectMode(state State, mode model.Mode) (State, []Effect) {
	var effects []Effect
	if state.Running {
		effects = append(effects, StopTicker{})
	}
	return state.withMode(mode), effects
}

func tick(state State) (State, []Effect) {
	if !state.Running || state.RemainingSeconds == 0 {
		return state, nil
	}
	state.RemainingSeconds--
	if state.RemainingSeconds > 0 {
		return state, nil
	}
	state.Running = false
	return state, []Effect{
		StopTicker{},
		Notify{Title: CompleteTitle, Message: CompleteMessage},
	}
}

// durationChanged keeps the running flag and restarts the active countdown
// from its new full length.
func durationChanged(state State, mode model.Mode, minutes int) (State, []Effect) {
	state.Durations = state.Durations.With(mode, minutes)
	if mode != state.Mode {
		return state, nil
	}
	state.TotalSeconds = state.Durations.Minutes(mode) * 60
	state.RemainingSeconds = state.TotalSeconds
	return state, nil
}
