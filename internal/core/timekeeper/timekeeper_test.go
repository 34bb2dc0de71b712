package timekeeper

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/model"
)

type fakeTicker struct {
	ch      chan time.Time
	stopped chan struct{}
	once    sync.Once
}

func (ticker *fakeTicker) Chan() <-chan time.Time { return ticker.ch }

func (ticker *fakeTicker) Stop() {
	ticker.once.Do(func() { close(ticker.stopped) })
}

type fakeTickerSource struct {
	mu      sync.Mutex
	tickers []*fakeTicker
	created chan *fakeTicker
}

func newFakeTickerSource() *fakeTickerSource {
	return &fakeTickerSource{created: make(chan *fakeTicker, 8)}
}

func (source *fakeTickerSource) new(time.Duration) ticker {
	ticker := &fakeTicker{ch: make(chan time.Time), stopped: make(chan struct{})}
	source.mu.Lock()
	source.tickers = append(source.tickers, ticker)
	source.mu.Unlock()
	source.created <- ticker
	return ticker
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (notifier *recordingNotifier) Notify(title, message string) {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	notifier.messages = append(notifier.messages, title+": "+message)
}

func (notifier *recordingNotifier) count() int {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	return len(notifier.messages)
}

func newTestKeeper(t *testing.T, durations model.Durations) (*TimeKeeper, *fakeTickerSource) {
	t.Helper()
	source := newFakeTickerSource()
	keeper := New(durations, Config{})
	keeper.newTicker = source.new
	t.Cleanup(keeper.Close)
	return keeper, source
}

func nextTicker(t *testing.T, source *fakeTickerSource) *fakeTicker {
	t.Helper()
	select {
	case ticker := <-source.created:
		return ticker
	case <-time.After(time.Second):
		t.Fatal("ticker was not created")
		return nil
	}
}

func waitEvent(t *testing.T, events <-chan Event, eventType EventType) Event {
	t.Helper()
	deadline := time.After(time.Second)
	for {
		select {
		case event := <-events:
			if event.Type == eventType {
				return event
			}
		case <-deadline:
			t.Fatalf("no %s event", eventType)
			return Event{}
		}
	}
}

func TestKeeperCountsDownOnTicks(t *testing.T) {
	keeper, source := newTestKeeper(t, model.DefaultDurations())
	events := keeper.Subscribe(16)

	keeper.Start()
	started := waitEvent(t, events, EventStateChange)
	assert.Equal(t, PhaseRunning, started.Phase)

	ticker := nextTicker(t, source)
	ticker.ch <- time.Now()

	progress := waitEvent(t, events, EventProgress)
	assert.Equal(t, 1499, progress.Remaining)
	assert.Equal(t, "24:59", progress.Clock)
	assert.Equal(t, 1499, keeper.Snapshot().RemainingSeconds)
}

func TestKeeperPauseStopsTickSource(t *testing.T) {
	keeper, source := newTestKeeper(t, model.DefaultDurations())

	keeper.Start()
	ticker := nextTicker(t, source)
	keeper.Pause()

	select {
	case <-ticker.stopped:
	case <-time.After(time.Second):
		t.Fatal("ticker was not stopped on pause")
	}
	assert.False(t, keeper.Snapshot().Running)

	keeper.Toggle()
	resumed := nextTicker(t, source)
	assert.NotSame(t, ticker, resumed)
	assert.True(t, keeper.Snapshot().Running)
}

func TestKeeperIgnoresStaleGeneration(t *testing.T) {
	keeper, source := newTestKeeper(t, model.DefaultDurations())

	keeper.Start()
	nextTicker(t, source)
	keeper.Pause()
	keeper.Start()
	nextTicker(t, source)

	keeper.tick(1, time.Now())
	assert.Equal(t, 1500, keeper.Snapshot().RemainingSeconds)

	keeper.tick(2, time.Now())
	assert.Equal(t, 1499, keeper.Snapshot().RemainingSeconds)
}

func TestKeeperNotifiesOnceOnCompletion(t *testing.T) {
	keeper, source := newTestKeeper(t, model.DefaultDurations().With(model.ModeShortBreak, 1))
	notifier := &recordingNotifier{}
	keeper.SetNotifier(notifier)
	events := keeper.Subscribe(256)

	keeper.SetMode(model.ModeShortBreak)
	keeper.Start()
	ticker := nextTicker(t, source)

	for i := 0; i < 60; i++ {
		ticker.ch <- time.Now()
	}

	complete := waitEvent(t, events, EventComplete)
	assert.Equal(t, CompleteTitle, complete.Title)
	assert.Equal(t, model.ModeShortBreak, complete.Mode)

	select {
	case <-ticker.stopped:
	case <-time.After(time.Second):
		t.Fatal("ticker was not stopped on completion")
	}

	state := keeper.Snapshot()
	assert.Equal(t, 0, state.RemainingSeconds)
	assert.False(t, state.Running)
	assert.Equal(t, 1, notifier.count())
}

func TestKeeperSetDurationWhileRunning(t *testing.T) {
	keeper, source := newTestKeeper(t, model.DefaultDurations())

	keeper.Start()
	nextTicker(t, source)
	keeper.SetDuration(model.ModeWork, 30)

	state := keeper.Snapshot()
	assert.Equal(t, 1800, state.RemainingSeconds)
	assert.True(t, state.Running)
}

func TestKeeperCloseClosesObservers(t *testing.T) {
	keeper := New(model.DefaultDurations(), Config{})
	events := keeper.Subscribe(1)
	keeper.Close()

	_, open := <-events
	require.False(t, open)

	keeper.Start()
	assert.False(t, keeper.Snapshot().Running)

	late := keeper.Subscribe(1)
	_, open = <-late
	assert.False(t, open)
}
