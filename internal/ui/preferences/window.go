package preferences

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/model"
)

// Window handles the preferences UI.
type Window struct {
	window       fyne.Window
	settings     Settings
	onSave       func(Settings)
	entries      map[model.Mode]*widget.Entry
	startHidden  *widget.Check
	saveButton   *widget.Button
	cancelButton *widget.Button
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Pomodoro Settings")

	entries := make(map[model.Mode]*widget.Entry, len(model.Modes))
	rows := []fyne.CanvasObject{
		widget.NewLabelWithStyle("Durations", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	}
	for _, mode := range model.Modes {
		entry := widget.NewEntry()
		entries[mode] = entry
		hint := fmt.Sprintf("min (%d-%d)", model.MinMinutes, model.MaxMinutes(mode))
		rows = append(rows, container.NewHBox(widget.NewLabel(mode.Label()+":"), entry, widget.NewLabel(hint)))
	}

	startHidden := widget.NewCheck("Start hidden in the system tray", nil)
	rows = append(rows, startHidden)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, container.NewVBox(rows...)))
	window.Resize(fyne.NewSize(360, 240))

	prefs := &Window{
		window:       window,
		onSave:       onSave,
		entries:      entries,
		startHidden:  startHidden,
		saveButton:   saveButton,
		cancelButton: cancelButton,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}
	window.SetCloseIntercept(cancelButton.OnTapped)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	durations := settings.Durations()
	for mode, entry := range prefs.entries {
		entry.SetText(strconv.Itoa(durations.Minutes(mode)))
	}
	prefs.startHidden.SetChecked(settings.StartHidden)
}

func (prefs *Window) handleSave() {
	current := prefs.settings.Durations()
	durations := current
	for mode, entry := range prefs.entries {
		durations = durations.With(mode, parseMinutes(mode, entry.Text, current.Minutes(mode)))
	}

	settings := FromDurations(durations)
	settings.StartHidden = prefs.startHidden.Checked

	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

// parseMinutes clamps numeric input and falls back on anything else.
func parseMinutes(mode model.Mode, value string, fallback int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return model.ClampMinutes(mode, parsed)
}
