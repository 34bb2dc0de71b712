package timerwindow

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/progress"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/ui/dial"
)

// Controller receives the window's user actions.
type Controller interface {
	Toggle()
	Reset()
	SetMode(mode model.Mode)
}

// Window is the main timer window.
type Window struct {
	window       fyne.Window
	controller   Controller
	dial         *dial.Dial
	clockLabel   *canvas.Text
	modeSelect   *widget.Select
	toggleButton *widget.Button
	resetButton  *widget.Button
	settings     *widget.Button
	syncing      bool
}

const (
	windowWidth  = float32(340)
	windowHeight = float32(420)
	dialSide     = float32(220)
)

// New creates the timer window. onSettings opens the preferences window.
func New(app fyne.App, controller Controller, onSettings func()) *Window {
	window := app.NewWindow("Pomodoro")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	timerDial := dial.New(fyne.NewSize(dialSide, dialSide))

	clockLabel := canvas.NewText(progress.FormatClock(0), color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff})
	clockLabel.Alignment = fyne.TextAlignCenter
	clockLabel.TextStyle = fyne.TextStyle{Bold: true}
	clockLabel.TextSize = 40

	labels := make([]string, 0, len(model.Modes))
	for _, mode := range model.Modes {
		labels = append(labels, mode.Label())
	}

	timer := &Window{
		window:     window,
		controller: controller,
		dial:       timerDial,
		clockLabel: clockLabel,
	}

	timer.modeSelect = widget.NewSelect(labels, timer.handleModeSelected)
	timer.toggleButton = widget.NewButton("Start", controller.Toggle)
	timer.resetButton = widget.NewButton("Reset", controller.Reset)
	timer.settings = widget.NewButton("Durations…", func() {
		if onSettings != nil {
			onSettings()
		}
	})

	face := container.New(&squareLayout{}, container.NewStack(timerDial.Object(), container.NewCenter(clockLabel)))
	buttons := container.NewGridWithColumns(2, timer.toggleButton, timer.resetButton)
	content := container.NewBorder(nil, container.NewVBox(timer.modeSelect, buttons, timer.settings), nil, nil, face)

	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(windowWidth, windowHeight))
	window.SetCloseIntercept(window.Hide)

	return timer
}

// Render updates every widget from a timekeeper event.
func (timer *Window) Render(event timekeeper.Event) {
	timer.clockLabel.Text = event.Clock
	timer.clockLabel.Refresh()
	timer.dial.SetProgress(event.Remaining, event.Total)

	if event.Phase == timekeeper.PhaseRunning {
		timer.toggleButton.SetText("Pause")
	} else {
		timer.toggleButton.SetText("Start")
	}

	timer.syncing = true
	timer.modeSelect.SetSelected(event.Mode.Label())
	timer.syncing = false
}

// Show displays the window.
func (timer *Window) Show() {
	timer.window.Show()
	timer.window.RequestFocus()
}

// Hide hides the window; the tray keeps the app alive.
func (timer *Window) Hide() {
	timer.window.Hide()
}

// Window exposes the underlying fyne window.
func (timer *Window) Window() fyne.Window {
	return timer.window
}

func (timer *Window) handleModeSelected(label string) {
	if timer.syncing {
		return
	}
	if mode, ok := model.ParseMode(label); ok {
		timer.controller.SetMode(mode)
	}
}

// squareLayout centers its first object in the largest square that fits.
type squareLayout struct{}

func (layout *squareLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) == 0 {
		return
	}
	side := size.Width
	if size.Height < side {
		side = size.Height
	}
	if side < 0 {
		side = 0
	}
	objects[0].Move(fyne.NewPos((size.Width-side)/2, (size.Height-side)/2))
	objects[0].Resize(fyne.NewSize(side, side))
}

func (layout *squareLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) == 0 {
		return fyne.NewSize(0, 0)
	}
	minSize := objects[0].MinSize()
	side := minSize.Width
	if minSize.Height > side {
		side = minSize.Height
	}
	return fyne.NewSize(side, side)
}
