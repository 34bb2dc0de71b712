package timerwindow

import (
	"image/color"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
)

type fakeController struct {
	toggles int
	resets  int
	modes   []model.Mode
}

func (controller *fakeController) Toggle() { controller.toggles++ }
func (controller *fakeController) Reset()  { controller.resets++ }

func (controller *fakeController) SetMode(mode model.Mode) {
	controller.modes = append(controller.modes, mode)
}

func newTestWindow(t *testing.T) (*Window, *fakeController) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)
	controller := &fakeController{}
	return New(app, controller, nil), controller
}

func TestButtonsReachController(t *testing.T) {
	timer, controller := newTestWindow(t)

	test.Tap(timer.toggleButton)
	test.Tap(timer.resetButton)
	timer.modeSelect.SetSelected("Short break")

	assert.Equal(t, 1, controller.toggles)
	assert.Equal(t, 1, controller.resets)
	assert.Equal(t, []model.Mode{model.ModeShortBreak}, controller.modes)
}

func TestRenderUpdatesWidgets(t *testing.T) {
	timer, controller := newTestWindow(t)

	state := timekeeper.NewState(model.DefaultDurations())
	state, _ = timekeeper.Apply(state, timekeeper.SelectMode{Mode: model.ModeLongBreak})
	state, _ = timekeeper.Apply(state, timekeeper.Start{})
	state, _ = timekeeper.Apply(state, timekeeper.Tick{})
	timer.Render(timekeeper.NewEvent(timekeeper.EventProgress, state, time.Now()))

	assert.Equal(t, "14:59", timer.clockLabel.Text)
	assert.Equal(t, "Pause", timer.toggleButton.Text)
	assert.Equal(t, "Long break", timer.modeSelect.Selected)
	assert.Empty(t, controller.modes)
	assert.True(t, timer.dial.Ring().Visible)

	state, _ = timekeeper.Apply(state, timekeeper.Pause{})
	timer.Render(timekeeper.NewEvent(timekeeper.EventStateChange, state, time.Now()))
	assert.Equal(t, "Start", timer.toggleButton.Text)
}

func TestSquareLayout(t *testing.T) {
	layout := &squareLayout{}
	rect := canvas.NewRectangle(color.Black)
	layout.Layout([]fyne.CanvasObject{rect}, fyne.NewSize(300, 200))
	assert.Equal(t, fyne.NewSize(200, 200), rect.Size())
	assert.Equal(t, fyne.NewPos(50, 0), rect.Position())
}
