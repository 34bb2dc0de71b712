package timekeeper

import (
	"sync"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/logging"
)

// Notifier receives the end-of-period alert.
type Notifier interface {
	Notify(title, message string)
}

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
}

type ticker interface {
	Chan() <-chan time.Time
	Stop()
}

type timeTicker struct {
	*time.Ticker
}

func (t timeTicker) Chan() <-chan time.Time {
	return t.C
}

func newTimeTicker(interval time.Duration) ticker {
	return timeTicker{time.NewTicker(interval)}
}

// TimeKeeper drives a countdown State with a one-second tick source.
type TimeKeeper struct {
	mu         sync.Mutex
	options    Config
	state      State
	notifier   Notifier
	events     []chan Event
	stopCh     chan struct{}
	generation uint64
	closed     bool
	newTicker  func(time.Duration) ticker
}

// New creates an idle TimeKeeper in work mode.
func New(durations model.Durations, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	return &TimeKeeper{
		options:   options,
		state:     NewState(durations),
		newTicker: newTimeTicker,
	}
}

// SetNotifier injects the completion notifier.
func (keeper *TimeKeeper) SetNotifier(notifier Notifier) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.notifier = notifier
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	if keeper.closed {
		close(ch)
	} else {
		keeper.events = append(keeper.events, ch)
	}
	keeper.mu.Unlock()
	return ch
}

// Snapshot returns a copy of the current state.
func (keeper *TimeKeeper) Snapshot() State {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.state
}

// Start begins the countdown.
func (keeper *TimeKeeper) Start() { keeper.Dispatch(Start{}) }

// Pause halts the countdown.
func (keeper *TimeKeeper) Pause() { keeper.Dispatch(Pause{}) }

// Toggle switches between running and paused.
func (keeper *TimeKeeper) Toggle() { keeper.Dispatch(Toggle{}) }

// Reset restores the full duration of the current mode.
func (keeper *TimeKeeper) Reset() { keeper.Dispatch(Reset{}) }

// SetMode switches to mode and stops the countdown.
func (keeper *TimeKeeper) SetMode(mode model.Mode) { keeper.Dispatch(SelectMode{Mode: mode}) }

// SetDuration updates the configured minutes for mode.
func (keeper *TimeKeeper) SetDuration(mode model.Mode, minutes int) {
	keeper.Dispatch(DurationChanged{Mode: mode, Minutes: minutes})
}

// Dispatch applies msg and performs the resulting effects.
func (keeper *TimeKeeper) Dispatch(msg Message) {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	notifications := keeper.applyLocked(msg, time.Now())
	notifier := keeper.notifier
	keeper.mu.Unlock()

	keeper.notify(notifier, notifications)
}

// Close stops the tick source and closes observers.
func (keeper *TimeKeeper) Close() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.closed = true
	keeper.stopTickerLocked()
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (keeper *TimeKeeper) applyLocked(msg Message, now time.Time) []Notify {
	previous := keeper.state
	next, effects := Apply(previous, msg)
	keeper.state = next

	var notifications []Notify
	for _, effect := range effects {
		switch effect := effect.(type) {
		case StartTicker:
			keeper.startTickerLocked()
		case StopTicker:
			keeper.stopTickerLocked()
		case Notify:
			notifications = append(notifications, effect)
		}
	}

	isTick := isTickMessage(msg)
	if isTick && next != previous {
		keeper.emitLocked(NewEvent(EventProgress, next, now))
	}
	if next.Phase() != previous.Phase() || next.Mode != previous.Mode || next.TotalSeconds != previous.TotalSeconds ||
		(!isTick && next.RemainingSeconds != previous.RemainingSeconds) {
		keeper.emitLocked(NewEvent(EventStateChange, next, now))
	}
	for _, notification := range notifications {
		event := NewEvent(EventComplete, next, now)
		event.Title = notification.Title
		event.Message = notification.Message
		keeper.emitLocked(event)
	}
	return notifications
}

func isTickMessage(msg Message) bool {
	_, ok := msg.(Tick)
	return ok
}

func (keeper *TimeKeeper) notify(notifier Notifier, notifications []Notify) {
	for _, notification := range notifications {
		logging.Infof("period complete: %s", notification.Message)
		if notifier != nil {
			notifier.Notify(notification.Title, notification.Message)
		}
	}
}

func (keeper *TimeKeeper) startTickerLocked() {
	if keeper.stopCh != nil {
		return
	}
	keeper.generation++
	keeper.stopCh = make(chan struct{})
	go keeper.run(keeper.newTicker(keeper.options.TickInterval), keeper.stopCh, keeper.generation)
}

func (keeper *TimeKeeper) stopTickerLocked() {
	if keeper.stopCh == nil {
		return
	}
	close(keeper.stopCh)
	keeper.stopCh = nil
}

func (keeper *TimeKeeper) run(source ticker, stopCh <-chan struct{}, generation uint64) {
	defer source.Stop()

	for {
		select {
		case <-stopCh:
			return
		case tickTime := <-source.Chan():
			keeper.tick(generation, tickTime)
		}
	}
}

// tick ignores ticks from a loop that has since been stopped.
func (keeper *TimeKeeper) tick(generation uint64, tickTime time.Time) {
	keeper.mu.Lock()
	if keeper.closed || keeper.stopCh == nil || keeper.generation != generation {
		keeper.mu.Unlock()
		return
	}
	notifications := keeper.applyLocked(Tick{}, tickTime)
	notifier := keeper.notifier
	keeper.mu.Unlock()

	keeper.notify(notifier, notifications)
}

func (keeper *TimeKeeper) emitLocked(event Event) {
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
			logging.Debugf("dropped %s event for slow observer", event.Type)
		}
	}
}
